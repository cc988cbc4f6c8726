package banker

import (
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultCheckpointSlots is the pool capacity used when none is configured.
const DefaultCheckpointSlots = 16

// checkpoint is one slot of the store: a deep copy of a State plus a label
// and a creation sequence number. Slots are independently valid; restoring
// one consumes it.
type checkpoint struct {
	state *State
	label string
	seq   uint64
	valid bool
}

// CheckpointInfo describes a live slot for listing, without exposing the
// stored state.
type CheckpointInfo struct {
	Slot  int
	Label string
	Seq   uint64
}

// CheckpointStore is a fixed-capacity pool of single-use State snapshots.
// It owns deep copies: neither saving nor restoring aliases the live state,
// so slots are independent of each other and of later mutations. There is no
// eviction; a full store rejects saves until a slot is consumed by restore.
type CheckpointStore struct {
	slots []checkpoint
	seq   uint64
}

// NewCheckpointStore creates a store with the given slot capacity.
// Non-positive capacity falls back to DefaultCheckpointSlots.
func NewCheckpointStore(capacity int) *CheckpointStore {
	if capacity <= 0 {
		capacity = DefaultCheckpointSlots
	}
	return &CheckpointStore{slots: make([]checkpoint, capacity)}
}

// Save copies s into the first free slot and returns the slot id, or
// ErrStoreFull when every slot is occupied. An empty label defaults to
// "checkpoint".
func (cs *CheckpointStore) Save(s *State, label string) (int, error) {
	if label == "" {
		label = "checkpoint"
	}
	for i := range cs.slots {
		if cs.slots[i].valid {
			continue
		}
		cs.seq++
		cs.slots[i] = checkpoint{state: s.Clone(), label: label, seq: cs.seq, valid: true}
		logrus.Debugf("checkpoint %q saved to slot %d", label, i)
		return i, nil
	}
	return -1, fmt.Errorf("%w: all %d slots in use", ErrStoreFull, len(cs.slots))
}

// Restore returns the state stored in slot id and invalidates the slot:
// restore is single-use, not a repeatable snapshot. Fails with
// ErrCheckpointNotFound for an out-of-range or already consumed slot.
func (cs *CheckpointStore) Restore(id int) (*State, error) {
	if id < 0 || id >= len(cs.slots) || !cs.slots[id].valid {
		return nil, fmt.Errorf("%w: slot %d", ErrCheckpointNotFound, id)
	}
	st := cs.slots[id].state
	cs.slots[id] = checkpoint{}
	logrus.Debugf("checkpoint slot %d restored", id)
	return st, nil
}

// List returns the live slots in ascending slot order.
func (cs *CheckpointStore) List() []CheckpointInfo {
	var out []CheckpointInfo
	for i, slot := range cs.slots {
		if slot.valid {
			out = append(out, CheckpointInfo{Slot: i, Label: slot.label, Seq: slot.seq})
		}
	}
	return out
}

// Capacity returns the fixed slot count.
func (cs *CheckpointStore) Capacity() int { return len(cs.slots) }
