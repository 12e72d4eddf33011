package static_test

import (
	"testing"

	"github.com/cafebazaar/majority-vote/internal/cluster/static"
	"github.com/cafebazaar/majority-vote/pkg/majority"
	"github.com/stretchr/testify/suite"
)

type StaticClusterTestSuite struct {
	suite.Suite

	local   majority.Source
	source1 majority.Source
	source2 majority.Source
	source3 majority.Source
	source4 majority.Source
}

func TestStaticClusterTestSuite(t *testing.T) {
	suite.Run(t, new(StaticClusterTestSuite))
}

func (s *StaticClusterTestSuite) TestReadVoteShouldReturnNumberOfSourcesForConsistencyLevelAll() {
	view, err := s.makeCluster(3, false).Read("", majority.ConsistencyLevel_ALL)
	s.Nil(err)
	s.Equal(3, view.VoteRequired)
}

func (s *StaticClusterTestSuite) TestReadVoteShouldReturnMajorityWithOddSources() {
	view, err := s.makeCluster(3, false).Read("", majority.ConsistencyLevel_MAJORITY)
	s.Nil(err)
	s.Equal(2, view.VoteRequired)
}

func (s *StaticClusterTestSuite) TestReadVoteShouldReturnMajorityWithEvenSources() {
	view, err := s.makeCluster(4, false).Read("", majority.ConsistencyLevel_MAJORITY)
	s.Nil(err)
	s.Equal(3, view.VoteRequired)
}

func (s *StaticClusterTestSuite) TestReadVoteShouldReturnOneForConsistencyOne() {
	view, err := s.makeCluster(3, false).Read("", majority.ConsistencyLevel_ONE)
	s.Nil(err)
	s.Equal(1, view.VoteRequired)
}

func (s *StaticClusterTestSuite) TestReadShouldFailOnUnknownConsistencyLevel() {
	_, err := s.makeCluster(3, false).Read("", majority.ConsistencyLevel(42))
	s.NotNil(err)
}

func (s *StaticClusterTestSuite) TestReadSourcesShouldReturnAllSourcesInConsistencyAll() {
	view, err := s.makeCluster(3, false).Read("", majority.ConsistencyLevel_ALL)
	s.Nil(err)
	s.Equal(3, len(view.Sources))
	s.Subset(view.Sources, []majority.Source{s.source1, s.source2, s.source3})
}

func (s *StaticClusterTestSuite) TestReadSourcesShouldReturnAllSourcesInConsistencyMajority() {
	view, err := s.makeCluster(3, false).Read("", majority.ConsistencyLevel_MAJORITY)
	s.Nil(err)
	s.Equal(3, len(view.Sources))
	s.Subset(view.Sources, []majority.Source{s.source1, s.source2, s.source3})
}

func (s *StaticClusterTestSuite) TestReadSourcesShouldReturnSingleSourceInConsistencyOne() {
	view, err := s.makeCluster(3, false).Read("", majority.ConsistencyLevel_ONE)
	s.Nil(err)
	s.Equal(1, len(view.Sources))
	s.Subset([]majority.Source{s.source1, s.source2, s.source3}, view.Sources)
}

func (s *StaticClusterTestSuite) TestReadSourcesShouldPreferLocalConnectionInConsistencyOne() {
	view, err := s.makeCluster(3, true).Read("", majority.ConsistencyLevel_ONE)
	s.Nil(err)
	s.Equal(1, len(view.Sources))
	s.Equal(s.local, view.Sources[0])
}

func (s *StaticClusterTestSuite) TestReadSourcesShouldRandomizeSources() {
	b := s.makeCluster(3, false)
	firstView, err := b.Read("", majority.ConsistencyLevel_ALL)
	s.Nil(err)
	found := false
	for i := 0; i < 20; i++ {
		secondView, err := b.Read("", majority.ConsistencyLevel_ALL)
		s.Nil(err)
		if firstView.Sources[0] != secondView.Sources[0] {
			found = true
			break
		}
	}
	s.True(found)
}

func (s *StaticClusterTestSuite) TestCloseShouldCloseAllSources() {
	source := &majority.Mock_Source{}
	source.On("Close").Once().Return(nil)
	cluster := static.New([]majority.Source{source})
	err := cluster.Close()
	s.Nil(err)
	source.AssertExpectations(s.T())
}

func (s *StaticClusterTestSuite) TestCloseShouldCloseLocalConnectionIfProvided() {
	source := &majority.Mock_Source{}
	source.On("Close").Once().Return(nil)
	cluster := static.New(nil, static.WithLocal(source))
	err := cluster.Close()
	s.Nil(err)
	source.AssertExpectations(s.T())
}

func (s *StaticClusterTestSuite) makeCluster(sources int, local bool,
	clusterOptions ...static.Option) majority.Cluster {

	var options []static.Option

	if local {
		options = append(options, static.WithLocal(s.local))
	}

	options = append(options, clusterOptions...)

	all := []majority.Source{
		s.source1,
		s.source2,
		s.source3,
		s.source4,
	}

	return static.New(all[:sources], options...)
}

func (s *StaticClusterTestSuite) SetupTest() {
	s.local = &majority.Mock_Source{}
	s.source1 = &majority.Mock_Source{}
	s.source2 = &majority.Mock_Source{}
	s.source3 = &majority.Mock_Source{}
	s.source4 = &majority.Mock_Source{}
}
