package banker

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// Decision is the outcome of a resource request. A denial is an expected
// result, not an error: Reason explains which precondition or safety check
// failed, for display only.
type Decision struct {
	Granted bool
	Reason  string
}

func granted() Decision { return Decision{Granted: true} }
func denied(format string, args ...any) Decision {
	return Decision{Granted: false, Reason: fmt.Sprintf(format, args...)}
}

// Request arbitrates a single resource request for one consumer using the
// tentative-allocate / check-safety / commit-or-rollback protocol.
// Preconditions are checked in order, short-circuiting on the first failure;
// every failure produces a Denied decision and leaves s bit-identical to its
// pre-call value:
//
//  1. consumer index in range,
//  2. request does not exceed the consumer's remaining Need,
//  3. request does not exceed Available,
//  4. the tentatively applied request leaves the system safe (IsSafe).
//
// Only a safe tentative allocation is retained. A request may be denied even
// though enough units are free: the Banker's check rejects any grant that
// opens the possibility of total standstill. An all-zero request is always
// granted without changing state.
func Request(s *State, consumer int, request []int) Decision {
	if err := s.checkConsumer(consumer); err != nil {
		return denied("consumer %d out of range", consumer)
	}
	m := s.NumResources()
	if len(request) != m {
		return denied("request vector has %d entries, want %d", len(request), m)
	}
	for j := 0; j < m; j++ {
		if request[j] < 0 {
			return denied("negative request for %s", s.ResourceNames[j])
		}
		if request[j] > s.Need[consumer][j] {
			return denied("request %d exceeds remaining need %d for %s",
				request[j], s.Need[consumer][j], s.ResourceNames[j])
		}
	}
	for j := 0; j < m; j++ {
		if request[j] > s.Available[j] {
			return denied("request %d exceeds available %d for %s",
				request[j], s.Available[j], s.ResourceNames[j])
		}
	}
	if allZero(request) {
		// A no-op request cannot change safety either way; grant it even
		// when the state is already unsafe.
		return granted()
	}

	// Tentatively allocate, then ask the safety checker whether every
	// consumer can still run to completion from the resulting state.
	applyRequest(s, consumer, request, +1)
	safe, _ := IsSafe(s)
	if !safe {
		applyRequest(s, consumer, request, -1)
		logrus.Infof("request by %s denied: resulting state unsafe", s.ConsumerNames[consumer])
		return denied("granting would leave the system unsafe")
	}

	logrus.Infof("request by %s granted", s.ConsumerNames[consumer])
	return granted()
}

func allZero(v []int) bool {
	for _, x := range v {
		if x != 0 {
			return false
		}
	}
	return true
}

// applyRequest moves request units between available and consumer's row.
// sign +1 grants, sign -1 is the exact inverse used for rollback.
func applyRequest(s *State, consumer int, request []int, sign int) {
	for j := range request {
		s.Available[j] -= sign * request[j]
		s.Allocation[consumer][j] += sign * request[j]
		s.Need[consumer][j] -= sign * request[j]
	}
}
