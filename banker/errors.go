package banker

import "errors"

// Sentinel errors returned by the engine. All are recoverable by the caller;
// none should abort the process. Wrap with fmt.Errorf("...: %w", err) when
// adding call-site context, and match with errors.Is.
var (
	// ErrBadDimensions reports consumer/resource counts outside
	// [1, MaxConsumers] / [1, MaxResources] at construction.
	ErrBadDimensions = errors.New("banker: consumer/resource count out of range")

	// ErrIndexOutOfRange reports a consumer or resource index outside the
	// state's dimensions.
	ErrIndexOutOfRange = errors.New("banker: index out of range")

	// ErrVectorLength reports a request/preempt vector whose length does not
	// match the state's resource count.
	ErrVectorLength = errors.New("banker: vector length does not match resource count")

	// ErrStoreFull reports a checkpoint save with no free slot.
	ErrStoreFull = errors.New("banker: no free checkpoint slot")

	// ErrCheckpointNotFound reports a restore of an out-of-range or already
	// consumed checkpoint slot.
	ErrCheckpointNotFound = errors.New("banker: checkpoint slot invalid or out of range")
)
