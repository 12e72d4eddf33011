package core

import (
	"bytes"
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/sirupsen/logrus"

	"github.com/cafebazaar/majority-vote/pkg/majority"
)

type coreService struct {
	cluster                majority.Cluster
	engine                 majority.Engine
	defaultReadConsistency majority.ConsistencyLevel
}

type Option func(s *coreService)

func New(cluster majority.Cluster,
	engine majority.Engine,
	options ...Option) majority.Service {

	result := &coreService{
		cluster:                cluster,
		engine:                 engine,
		defaultReadConsistency: majority.ConsistencyLevel_MAJORITY,
	}

	for _, option := range options {
		option(result)
	}

	return result
}

func WithDefaultReadConsistency(defaultReadConsistency majority.ConsistencyLevel) Option {
	return func(s *coreService) {
		s.defaultReadConsistency = defaultReadConsistency
	}
}

func (s *coreService) MajorityElement(ctx context.Context,
	request *majority.MajorityRequest) (*majority.MajorityResponse, error) {

	seq, err := s.fetchSequence(request.Key, request.Options)
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	pos := majority.MajorityElementFunc(seq, bytes.Equal)
	if pos == len(seq) {
		return nil, s.convertErrorToGRPC(majority.ErrNoMajority)
	}

	return &majority.MajorityResponse{
		Position: pos,
		Element:  seq[pos],
	}, nil
}

func (s *coreService) MajorityVote(ctx context.Context,
	request *majority.MajorityRequest) (*majority.MajorityResponse, error) {

	seq, err := s.fetchSequence(request.Key, request.Options)
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	pos := majority.MajorityVoteFunc(seq, bytes.Equal)
	if pos == len(seq) {
		return nil, s.convertErrorToGRPC(majority.ErrNoMajority)
	}

	return &majority.MajorityResponse{
		Position: pos,
		Element:  seq[pos],
	}, nil
}

func (s *coreService) IsMajorityElement(ctx context.Context,
	request *majority.IsMajorityRequest) (*majority.IsMajorityResponse, error) {

	// The stored sequence is expected to be sorted already. An unsorted
	// sequence yields an unspecified answer; it is never sorted here.
	seq, err := s.fetchSequence(request.Key, request.Options)
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	result := majority.IsMajorityElementFunc(seq, request.Value, s.lessBytes)

	return &majority.IsMajorityResponse{IsMajority: result}, nil
}

func (s *coreService) SequenceLen(ctx context.Context,
	request *majority.LenRequest) (*majority.LenResponse, error) {

	readOperator := func(source majority.Source) (interface{}, error) {
		return source.Len(request.Key)
	}

	consistency := s.readConsistency(request.Options)
	view, err := s.cluster.Read(request.Key, consistency)
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	rawResult, err := s.engine.Read(view.Sources, view.VoteRequired, readOperator,
		nil, s.int64Comparer, majority.VotingModeVoteOnNotFound)
	if err != nil {
		return nil, s.convertErrorToGRPC(err)
	}

	return &majority.LenResponse{Len: rawResult.(int64)}, nil
}

func (s *coreService) fetchSequence(key string,
	options majority.ReadOptions) ([][]byte, error) {

	readOperator := func(source majority.Source) (interface{}, error) {
		return source.Sequence(key)
	}

	repairOperator := func(args majority.RepairArgs) {
		for _, loser := range args.Losers {
			logrus.WithField("source", loser.Address()).Warn("source disagrees with quorum")
		}
	}

	consistency := s.readConsistency(options)
	view, err := s.cluster.Read(key, consistency)
	if err != nil {
		return nil, err
	}

	rawResult, err := s.engine.Read(view.Sources, view.VoteRequired, readOperator,
		repairOperator, s.sequenceComparer, majority.VotingModeVoteOnNotFound)
	if err != nil {
		return nil, err
	}

	return rawResult.([][]byte), nil
}

func (s *coreService) Close() error {
	lastErr := s.cluster.Close()
	if err := s.engine.Close(); err != nil {
		if lastErr != nil {
			logrus.WithError(lastErr).Error("unexpected error while closing core service")
		}

		lastErr = err
	}

	return lastErr
}

func (s *coreService) readConsistency(readOptions majority.ReadOptions) majority.ConsistencyLevel {
	if readOptions.Consistency == majority.ConsistencyLevel_DEFAULT {
		return s.defaultReadConsistency
	}

	return readOptions.Consistency
}

func (s *coreService) sequenceComparer(x, y interface{}) bool {
	left := x.([][]byte)
	right := y.([][]byte)

	if len(left) != len(right) {
		return false
	}

	for i := range left {
		if !bytes.Equal(left[i], right[i]) {
			return false
		}
	}

	return true
}

func (s *coreService) int64Comparer(x, y interface{}) bool {
	return x.(int64) == y.(int64)
}

func (s *coreService) lessBytes(x, y []byte) bool {
	return bytes.Compare(x, y) < 0
}

func (s *coreService) convertErrorToGRPC(err error) error {
	if err == nil {
		return nil
	}

	switch err {
	case majority.ErrNotFound:
		return status.Error(codes.NotFound, majority.ErrNotFound.Error())

	case majority.ErrNoMajority:
		return status.Error(codes.NotFound, majority.ErrNoMajority.Error())

	case majority.ErrConsistency:
		return status.Error(codes.Unavailable, majority.ErrConsistency.Error())

	case context.Canceled:
		return status.Error(codes.Canceled, context.Canceled.Error())

	case context.DeadlineExceeded:
		return status.Error(codes.DeadlineExceeded, context.DeadlineExceeded.Error())

	default:
		return status.Error(codes.Internal, err.Error())
	}
}
