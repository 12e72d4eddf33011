package majority

import (
	"context"
	"io"
)

type ConsistencyLevel int

const (
	ConsistencyLevel_DEFAULT  ConsistencyLevel = 0
	ConsistencyLevel_ONE      ConsistencyLevel = 1
	ConsistencyLevel_MAJORITY ConsistencyLevel = 2
	ConsistencyLevel_ALL      ConsistencyLevel = 3
)

type ReadOptions struct {
	Consistency ConsistencyLevel
}

type MajorityRequest struct {
	Key     string
	Options ReadOptions
}

type MajorityResponse struct {
	Position int
	Element  []byte
}

type LenRequest struct {
	Key     string
	Options ReadOptions
}

type LenResponse struct {
	Len int64
}

type IsMajorityRequest struct {
	Key     string
	Value   []byte
	Options ReadOptions
}

type IsMajorityResponse struct {
	IsMajority bool
}

type Service interface {
	io.Closer

	MajorityElement(ctx context.Context, request *MajorityRequest) (*MajorityResponse, error)
	MajorityVote(ctx context.Context, request *MajorityRequest) (*MajorityResponse, error)
	IsMajorityElement(ctx context.Context, request *IsMajorityRequest) (*IsMajorityResponse, error)
	SequenceLen(ctx context.Context, request *LenRequest) (*LenResponse, error)
}
