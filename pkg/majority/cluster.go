package majority

import (
	"io"
)

type Cluster interface {
	io.Closer

	Read(key string, consistency ConsistencyLevel) (ReadClusterView, error)
}

type ReadClusterView struct {
	Sources      []Source
	VoteRequired int
}
