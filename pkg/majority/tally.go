package majority

type ValueComparer func(x, y interface{}) bool

type Tally interface {
	Add(value interface{}, data interface{}, weight int) int
	Empty() bool
	Losers() []interface{}
	Winners() []interface{}
	MaxVote() (interface{}, int)
}

type TallyFactory func(cmp ValueComparer) Tally
