package engine

import (
	"sync"

	"github.com/cafebazaar/majority-vote/pkg/majority"
	"github.com/sirupsen/logrus"
)

type quorumEngine struct {
	tallyFactory majority.TallyFactory
	operating    sync.WaitGroup
	closed       chan struct{}
	mutex        sync.Mutex
}

func New(tallyFactory majority.TallyFactory) majority.Engine {
	return &quorumEngine{
		tallyFactory: tallyFactory,
		closed:       make(chan struct{}),
	}
}

type asyncReadResult struct {
	value  interface{}
	err    error
	source majority.Source
}

type voteItem struct {
	notFound bool
	value    interface{}
}

func (e *quorumEngine) Read(sources []majority.Source,
	votesRequired int,
	operator majority.ReadOperator,
	repair majority.RepairOperator,
	cmp majority.ValueComparer,
	mode majority.VotingMode) (interface{}, error) {

	e.operating.Add(1)
	defer e.operating.Done()

	if e.isClosed() {
		return nil, majority.ErrClosed
	}

	var wg sync.WaitGroup
	resultChannel := make(chan asyncReadResult, len(sources))

	e.startReadOperatorOnMultipleSources(sources, operator, &wg, resultChannel)
	voteChannel := e.startReadVote(&wg, resultChannel, cmp, votesRequired, repair, mode)

	vote := <-voteChannel
	return vote.value, vote.err
}

func (e *quorumEngine) startReadVote(wg *sync.WaitGroup,
	resultChannel chan asyncReadResult,
	comparer majority.ValueComparer,
	requiredVotes int,
	repair majority.RepairOperator,
	mode majority.VotingMode) chan asyncReadResult {

	ch := make(chan asyncReadResult, 1)
	e.operating.Add(1)
	go e.waitForReadVote(wg, resultChannel, comparer, requiredVotes, repair, mode, ch)

	return ch
}

func (e *quorumEngine) waitForReadVote(wg *sync.WaitGroup,
	everySourceResultChannel chan asyncReadResult,
	cmp majority.ValueComparer,
	requiredVotes int,
	repair majority.RepairOperator,
	mode majority.VotingMode,
	finalResultChannel chan asyncReadResult) {

	defer e.operating.Done()

	var lastErr error
	sawNotFound := false
	done := e.beginWaitGroupMonitor(wg)
	votes := e.tallyFactory(e.makeVoteComparer(cmp))

	for {
		select {
		case <-done:
			close(everySourceResultChannel)
			done = nil

		case result, ok := <-everySourceResultChannel:
			if !ok {
				if finalResultChannel == nil {
					losers := votes.Losers()

					if len(losers) > 0 && repair != nil {
						maxVoteValue, _ := votes.MaxVote()
						maxVoteItem := maxVoteValue.(voteItem)

						winners := votes.Winners()

						var args majority.RepairArgs
						if maxVoteItem.notFound {
							args.Err = majority.ErrNotFound
						} else {
							args.Value = maxVoteItem.value
						}

						for _, winner := range winners {
							args.Winners = append(args.Winners, winner.(majority.Source))
						}

						for _, loser := range losers {
							args.Losers = append(args.Losers, loser.(majority.Source))
						}

						repair(args)
					}
				} else {
					_, maxVotes := votes.MaxVote()

					var err error
					switch {
					case votes.Empty() && lastErr != nil:
						err = lastErr
					case maxVotes == 0 && sawNotFound:
						// Every answering source reported an absent key, but
						// none of the votes carried weight.
						err = majority.ErrNotFound
					default:
						err = majority.ErrConsistency
					}

					finalResultChannel <- asyncReadResult{err: err}
					close(finalResultChannel)
				}

				return
			} else if result.err != nil {
				if result.err == majority.ErrNotFound {
					sawNotFound = true

					var weight int

					switch mode {
					case majority.VotingModeSkipVoteOnNotFound:
						weight = 0
					default:
						weight = 1
					}

					if votes.Add(voteItem{notFound: true}, result.source, weight) >= requiredVotes && finalResultChannel != nil {
						finalResultChannel <- asyncReadResult{err: majority.ErrNotFound}
						close(finalResultChannel)
						finalResultChannel = nil
					}
				} else {
					if lastErr != nil {
						e.logError(lastErr)
					}

					lastErr = result.err
				}
			} else {
				if votes.Add(voteItem{value: result.value}, result.source, 1) >= requiredVotes && finalResultChannel != nil {
					finalResultChannel <- asyncReadResult{value: result.value}
					close(finalResultChannel)
					finalResultChannel = nil
				}
			}
		}
	}
}

func (e *quorumEngine) startReadOperatorOnMultipleSources(sources []majority.Source,
	operator majority.ReadOperator,
	wg *sync.WaitGroup,
	resultChannel chan asyncReadResult) {

	for _, source := range sources {
		wg.Add(1)
		e.operating.Add(1)
		go e.performReadOperatorOnSingleSource(source, operator, wg, resultChannel)
	}
}

func (e *quorumEngine) performReadOperatorOnSingleSource(source majority.Source,
	operator majority.ReadOperator,
	wg *sync.WaitGroup,
	resultChannel chan asyncReadResult) {

	defer wg.Done()
	defer e.operating.Done()

	value, err := operator(source)
	resultChannel <- asyncReadResult{
		value:  value,
		err:    err,
		source: source,
	}
}

func (e *quorumEngine) Close() error {
	if closed := e.setClosed(); !closed {
		return nil
	}

	e.operating.Wait()

	return nil
}

func (e *quorumEngine) setClosed() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	if e.isClosedWithoutLock() {
		return false
	}

	close(e.closed)
	return true
}

func (e *quorumEngine) isClosed() bool {
	e.mutex.Lock()
	defer e.mutex.Unlock()

	return e.isClosedWithoutLock()
}

func (e *quorumEngine) isClosedWithoutLock() bool {
	select {
	case <-e.closed:
		return true

	default:
		return false
	}
}

func (e *quorumEngine) beginWaitGroupMonitor(wg *sync.WaitGroup) chan struct{} {
	result := make(chan struct{})
	e.operating.Add(1)
	go func() {
		defer e.operating.Done()

		wg.Wait()
		close(result)
	}()

	return result
}

func (e *quorumEngine) logError(err error) {
	logrus.WithError(err).Error("source error")
}

func (e *quorumEngine) makeVoteComparer(cmp majority.ValueComparer) majority.ValueComparer {
	return func(x, y interface{}) bool {
		left := x.(voteItem)
		right := y.(voteItem)

		if left.notFound != right.notFound {
			return false
		}

		if left.notFound {
			return true
		}

		return cmp(left.value, right.value)
	}
}
