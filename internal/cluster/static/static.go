package static

import (
	"math/rand"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/cafebazaar/majority-vote/pkg/majority"
)

type staticCluster struct {
	local   majority.Source
	sources []majority.Source
}

type Option func(s *staticCluster)

func WithLocal(local majority.Source) Option {
	return func(s *staticCluster) {
		s.local = local
	}
}

func New(sources []majority.Source, options ...Option) majority.Cluster {
	result := staticCluster{
		sources: sources,
	}

	for _, option := range options {
		option(&result)
	}

	return result
}

func (s staticCluster) Read(key string,
	consistency majority.ConsistencyLevel) (majority.ReadClusterView, error) {

	switch consistency {
	case majority.ConsistencyLevel_ALL:
		allSources := s.allSources()
		return majority.ReadClusterView{
			Sources:      allSources,
			VoteRequired: len(allSources),
		}, nil

	case majority.ConsistencyLevel_MAJORITY:
		allSources := s.allSources()
		return majority.ReadClusterView{
			Sources:      allSources,
			VoteRequired: s.majority(len(allSources)),
		}, nil

	case majority.ConsistencyLevel_ONE:
		return majority.ReadClusterView{
			Sources:      s.localSourceOrRandomSource(),
			VoteRequired: 1,
		}, nil

	default:
		return majority.ReadClusterView{}, errors.Errorf("unknown consistency level: %v", consistency)
	}
}

func (s staticCluster) Close() error {
	var lastErr error

	if s.local != nil {
		lastErr = s.local.Close()
	}

	for _, source := range s.sources {
		if err := source.Close(); err != nil {
			if lastErr != nil {
				logrus.WithError(err).Error("unexpected error while closing sources")
			}

			lastErr = err
		}
	}

	return lastErr
}

func (s staticCluster) localSourceOrRandomSource() []majority.Source {
	if s.local != nil {
		return []majority.Source{s.local}
	}

	return s.allSources()[:1]
}

func (s staticCluster) allSources() []majority.Source {
	return s.randomize(s.sources)
}

func (s staticCluster) randomize(sources []majority.Source) []majority.Source {
	result := append([]majority.Source{}, sources...)

	for i := 0; i < len(result); i++ {
		j := i + rand.Intn(len(result)-i)
		temp := result[i]
		result[i] = result[j]
		result[j] = temp
	}

	return result
}

func (s staticCluster) majority(count int) int {
	return (count / 2) + 1
}
