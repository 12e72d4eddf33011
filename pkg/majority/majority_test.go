package majority_test

import (
	"strings"
	"testing"

	"github.com/cafebazaar/majority-vote/pkg/majority"
	"github.com/stretchr/testify/suite"
)

type MajorityTestSuite struct {
	suite.Suite
}

func TestMajorityTestSuite(t *testing.T) {
	suite.Run(t, new(MajorityTestSuite))
}

func (s *MajorityTestSuite) TestMajorityVoteShouldReturnSentinelOnEmptySequence() {
	seq := []int{}
	s.Equal(len(seq), majority.MajorityVote(seq))
}

func (s *MajorityTestSuite) TestMajorityVoteShouldReturnSingleElement() {
	pos := majority.MajorityVote([]int{7})
	s.Equal(0, pos)
}

func (s *MajorityTestSuite) TestMajorityVoteShouldSurviveTrueMajority() {
	seq := []int{3, 3, 4, 2, 3, 3, 4, 2, 3}
	pos := majority.MajorityVote(seq)
	s.Less(pos, len(seq))
	s.Equal(3, seq[pos])
}

func (s *MajorityTestSuite) TestMajorityVoteShouldReturnSomePositionWithoutMajority() {
	seq := []int{1, 2, 3, 4}
	pos := majority.MajorityVote(seq)
	s.GreaterOrEqual(pos, 0)
	s.Less(pos, len(seq))
}

func (s *MajorityTestSuite) TestMajorityElementShouldReturnSentinelOnEmptySequence() {
	seq := []int{}
	s.Equal(len(seq), majority.MajorityElement(seq))
}

func (s *MajorityTestSuite) TestMajorityElementShouldReturnSingleElement() {
	s.Equal(0, majority.MajorityElement([]int{7}))
}

func (s *MajorityTestSuite) TestMajorityElementShouldFindMajority() {
	seq := []int{3, 3, 4, 2, 3, 3, 4, 2, 3}
	pos := majority.MajorityElement(seq)
	s.Less(pos, len(seq))
	s.Equal(3, seq[pos])
}

func (s *MajorityTestSuite) TestMajorityElementShouldReturnSentinelWithoutMajority() {
	seq := []int{1, 2, 3, 4}
	s.Equal(len(seq), majority.MajorityElement(seq))
}

func (s *MajorityTestSuite) TestMajorityElementShouldRejectExactlyHalf() {
	seq := []int{1, 1, 2, 2}
	s.Equal(len(seq), majority.MajorityElement(seq))
}

func (s *MajorityTestSuite) TestMajorityElementShouldAcceptOddMajority() {
	seq := []int{2, 1, 2}
	pos := majority.MajorityElement(seq)
	s.Less(pos, len(seq))
	s.Equal(2, seq[pos])
}

func (s *MajorityTestSuite) TestMajorityElementShouldNotDependOnTraversalOrder() {
	seq := []int{3, 3, 4, 2, 3, 3, 4, 2, 3}
	permutations := [][]int{
		{3, 4, 3, 2, 3, 4, 3, 2, 3},
		{2, 2, 4, 4, 3, 3, 3, 3, 3},
		{3, 3, 3, 3, 3, 2, 2, 4, 4},
	}

	for _, permuted := range permutations {
		pos := majority.MajorityElement(permuted)
		s.Less(pos, len(permuted))
		s.Equal(3, permuted[pos])
	}

	pos := majority.MajorityElement(seq)
	s.Equal(3, seq[pos])
}

func (s *MajorityTestSuite) TestMajorityElementFuncShouldHonorComparator() {
	seq := []string{"A", "a", "b", "a", "A"}
	pos := majority.MajorityElementFunc(seq, func(x, y string) bool {
		return strings.EqualFold(x, y)
	})
	s.Less(pos, len(seq))
	s.Equal("a", strings.ToLower(seq[pos]))
}

func (s *MajorityTestSuite) TestMajorityElementFuncShouldAgreeWithDirectCount() {
	sequences := [][]int{
		{},
		{7},
		{1, 1},
		{1, 2},
		{1, 1, 2},
		{1, 2, 2, 2},
		{1, 2, 3, 4},
		{5, 5, 5, 5, 1, 2, 3},
		{3, 3, 4, 2, 3, 3, 4, 2, 3},
	}

	for _, seq := range sequences {
		pos := majority.MajorityElement(seq)
		if pos < len(seq) {
			s.Greater(s.count(seq, seq[pos]), len(seq)/2)
		} else {
			for _, x := range seq {
				s.LessOrEqual(s.count(seq, x), len(seq)/2)
			}
		}
	}
}

func (s *MajorityTestSuite) TestIsMajorityElementShouldAcceptStrictMajority() {
	s.True(majority.IsMajorityElement([]int{1, 1, 1, 2, 2}, 1))
}

func (s *MajorityTestSuite) TestIsMajorityElementShouldRejectExactlyHalf() {
	s.False(majority.IsMajorityElement([]int{1, 1, 2, 2, 2}, 1))
}

func (s *MajorityTestSuite) TestIsMajorityElementShouldRejectAbsentValue() {
	s.False(majority.IsMajorityElement([]int{1, 1, 1, 2, 2}, 3))
}

func (s *MajorityTestSuite) TestIsMajorityElementShouldRejectOnEmptySequence() {
	s.False(majority.IsMajorityElement([]int{}, 1))
}

func (s *MajorityTestSuite) TestIsMajorityElementShouldAcceptSingleElement() {
	s.True(majority.IsMajorityElement([]int{7}, 7))
}

func (s *MajorityTestSuite) TestIsMajorityElementShouldAgreeWithDirectCount() {
	sequences := [][]int{
		{},
		{7},
		{1, 1, 2, 2, 3},
		{1, 1, 1, 2, 2},
		{1, 1, 2, 2, 2},
		{2, 2, 2, 2, 2},
		{1, 2, 3, 4, 5},
	}

	for _, seq := range sequences {
		for x := 0; x < 8; x++ {
			expected := s.count(seq, x) > len(seq)/2
			s.Equal(expected, majority.IsMajorityElement(seq, x))
		}
	}
}

func (s *MajorityTestSuite) TestIsMajorityElementFuncShouldHonorComparator() {
	seq := []int{-1, 1, -1, 2}
	abs := func(x int) int {
		if x < 0 {
			return -x
		}
		return x
	}

	result := majority.IsMajorityElementFunc(seq, 1, func(x, y int) bool {
		return abs(x) < abs(y)
	})
	s.True(result)
}

func (s *MajorityTestSuite) TestMajorityElementShouldNotMutateInput() {
	seq := []int{3, 1, 3, 2, 3}
	expected := []int{3, 1, 3, 2, 3}
	majority.MajorityElement(seq)
	s.Equal(expected, seq)
}

func (s *MajorityTestSuite) count(seq []int, x int) int {
	result := 0
	for _, e := range seq {
		if e == x {
			result++
		}
	}

	return result
}
