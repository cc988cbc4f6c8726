package banker

import "github.com/sirupsen/logrus"

// RemovedConsumerName tags a terminated consumer. Its index stays valid so
// other indices never shift; the zeroed Need row makes it trivially
// satisfiable and otherwise inert.
const RemovedConsumerName = "(removed)"

// Terminate forcibly finishes a consumer: all held units return to
// Available, its Maximum/Allocation/Need rows are zeroed, and its name is
// replaced with RemovedConsumerName. Intended to break a detected deadlock;
// no safety check runs here, so the caller re-checks safety and cycles
// afterward.
func Terminate(s *State, consumer int) error {
	if err := s.checkConsumer(consumer); err != nil {
		return err
	}
	for j := 0; j < s.NumResources(); j++ {
		s.Available[j] += s.Allocation[consumer][j]
		s.Allocation[consumer][j] = 0
		s.Maximum[consumer][j] = 0
		s.Need[consumer][j] = 0
	}
	logrus.Warnf("consumer %d (%s) terminated, holdings released", consumer, s.ConsumerNames[consumer])
	s.ConsumerNames[consumer] = RemovedConsumerName
	return nil
}

// Preempt forcibly takes units back from a consumer. For each resource j it
// removes min(preempt[j], Allocation[consumer][j]) units (clamped at zero:
// never negative, never more than held) and returns them to Available, then
// rederives the consumer's Need from its declared Maximum — need grows by
// exactly what was taken. Like Terminate, it runs no safety check.
func Preempt(s *State, consumer int, preempt []int) error {
	if err := s.checkConsumer(consumer); err != nil {
		return err
	}
	if len(preempt) != s.NumResources() {
		return ErrVectorLength
	}
	taken := 0
	for j := range preempt {
		take := preempt[j]
		if take < 0 {
			take = 0
		}
		if take > s.Allocation[consumer][j] {
			take = s.Allocation[consumer][j]
		}
		s.Allocation[consumer][j] -= take
		s.Available[j] += take
		taken += take
	}
	s.RecomputeNeed()
	logrus.Warnf("preempted %d units from consumer %d (%s)", taken, consumer, s.ConsumerNames[consumer])
	return nil
}
