// Package rank computes influence scores over a match graph.
package rank

// Option applies a configuration option to the Ranker.
type Option func(*Ranker)

// WithDamping sets the damping factor alpha. Values outside (0,1) are ignored.
func WithDamping(alpha float64) Option {
	return func(r *Ranker) {
		if alpha > 0 && alpha < 1 {
			r.damping = alpha
		}
	}
}

// WithTolerance sets the per-node L1 convergence tolerance.
func WithTolerance(tol float64) Option {
	return func(r *Ranker) {
		if tol > 0 {
			r.tolerance = tol
		}
	}
}

// WithMaxIterations bounds the power iteration.
func WithMaxIterations(n int) Option {
	return func(r *Ranker) {
		if n > 0 {
			r.maxIter = n
		}
	}
}
