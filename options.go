package parallelhash

import "runtime"

// An Option configures a Hasher.
type Option func(*Hasher)

// WithConcurrency sets the maximum number of goroutines used to compute the leaf digests of the complete blocks passed
// to a single Write. If n <= 0, runtime.GOMAXPROCS(0) is used. The default is 1, which computes every leaf digest on
// the calling goroutine.
//
// The digest does not depend on this setting.
func WithConcurrency(n int) Option {
	return func(h *Hasher) {
		if n <= 0 {
			h.workers = runtime.GOMAXPROCS(0)
		} else {
			h.workers = n
		}
	}
}
