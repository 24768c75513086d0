package loader

import "fmt"

// RetryPolicy controls what a Handle does when a previous load attempt
// failed and the module is requested again.
type RetryPolicy int

const (
	// RetryOnFailure re-attempts the load on the next call. This is the
	// default: a failed load is often a transient or fixable external
	// condition (e.g. a dependency installed after process start in a
	// long-lived worker).
	RetryOnFailure RetryPolicy = iota

	// FailPermanently caches the first failure and returns it for every
	// subsequent call without re-attempting the load.
	FailPermanently
)

// String implements fmt.Stringer.
func (p RetryPolicy) String() string {
	switch p {
	case RetryOnFailure:
		return "retry"
	case FailPermanently:
		return "permanent"
	default:
		return fmt.Sprintf("RetryPolicy(%d)", int(p))
	}
}

// ParseRetryPolicy converts the CLI/config representation of a policy.
func ParseRetryPolicy(s string) (RetryPolicy, error) {
	switch s {
	case "retry":
		return RetryOnFailure, nil
	case "permanent":
		return FailPermanently, nil
	default:
		return 0, fmt.Errorf("invalid retry policy %q: must be 'retry' or 'permanent'", s)
	}
}
