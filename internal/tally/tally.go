package tally

import (
	"github.com/cafebazaar/majority-vote/pkg/majority"
)

type tally struct {
	candidates []*candidate
	comparer   majority.ValueComparer
}

type candidate struct {
	value interface{}
	vote  int
	data  []interface{}
}

func New(comparer majority.ValueComparer) majority.Tally {
	return &tally{comparer: comparer}
}

func (t *tally) Add(value interface{}, data interface{}, weight int) int {
	if existing := t.find(value); existing != nil {
		existing.vote = existing.vote + weight
		existing.data = append(existing.data, data)
		return existing.vote
	}

	t.candidates = append(t.candidates, &candidate{
		value: value,
		vote:  weight,
		data:  []interface{}{data},
	})

	return weight
}

func (t *tally) Empty() bool {
	return len(t.candidates) == 0
}

func (t *tally) Winners() []interface{} {
	leader := t.leader()
	if leader == nil {
		return nil
	}

	return leader.data
}

func (t *tally) Losers() []interface{} {
	leader := t.leader()
	if leader == nil {
		return nil
	}

	var result []interface{}

	for _, c := range t.candidates {
		if c.vote != leader.vote {
			result = append(result, c.data...)
		}
	}

	return result
}

func (t *tally) MaxVote() (interface{}, int) {
	leader := t.leader()
	if leader == nil {
		return nil, 0
	}

	return leader.value, leader.vote
}

func (t *tally) find(value interface{}) *candidate {
	for _, c := range t.candidates {
		if t.comparer(value, c.value) {
			return c
		}
	}

	return nil
}

func (t *tally) leader() *candidate {
	var result *candidate
	vote := 0

	for _, c := range t.candidates {
		if c.vote > vote {
			vote = c.vote
			result = c
		}
	}

	return result
}
