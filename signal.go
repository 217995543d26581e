package decimal

import "context"

// cmpSignal is the reserved sentinel result returned by compare (and
// anything built on it) when polling ctx observes cancellation mid-scan,
// letting callers distinguish "aborted" from any real ordering. Grounded
// on bc's BC_NUM_CMP_SIGNAL.
const cmpSignal = 1<<31 - 1

// aborted reports whether ctx has been canceled, the Go realization of
// polling bc's process-global SIG flag (spec.md §5, §9). Every inner
// loop this package's algorithms run — digit-array add/sub/mul/div,
// compare, Karatsuba recursion entry, long-division loops, Newton
// iteration, square-and-multiply, and parse/print character loops —
// calls this at its head.
func aborted(ctx context.Context) bool {
	select {
	case <-ctx.Done():
		return true
	default:
		return false
	}
}
