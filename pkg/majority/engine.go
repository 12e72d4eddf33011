package majority

import (
	"io"
)

type ReadOperator func(source Source) (interface{}, error)
type RepairOperator func(args RepairArgs)

type RepairArgs struct {
	Value   interface{}
	Err     error
	Winners []Source
	Losers  []Source
}

type VotingMode int

var (
	VotingModeVoteOnNotFound     VotingMode = 0
	VotingModeSkipVoteOnNotFound VotingMode = 1
)

type Engine interface {
	io.Closer

	Read(sources []Source, votesRequired int,
		operator ReadOperator, repair RepairOperator, cmp ValueComparer,
		mode VotingMode) (interface{}, error)
}
