// Package graph builds a directed weighted graph from match outcomes.
package graph

import (
	"fmt"
	"strings"
)

// DrawPolicy selects how a drawn match contributes edges.
type DrawPolicy int

const (
	// DrawBidirectionalHalfWeight adds half-weight edges in both directions.
	// Used by the global ranking.
	DrawBidirectionalHalfWeight DrawPolicy = iota

	// DrawIgnored adds no edge for a draw. Used by the season-partitioned
	// ranking. The divergence from the global policy is deliberate and kept
	// visible here rather than duplicated in two builders.
	DrawIgnored
)

// String returns the config spelling of the policy.
func (p DrawPolicy) String() string {
	switch p {
	case DrawBidirectionalHalfWeight:
		return "bidirectional"
	case DrawIgnored:
		return "ignored"
	default:
		return fmt.Sprintf("unknown(%d)", int(p))
	}
}

// ParsePolicy maps a config spelling to its DrawPolicy.
func ParsePolicy(s string) (DrawPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bidirectional":
		return DrawBidirectionalHalfWeight, nil
	case "ignored":
		return DrawIgnored, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPolicy, s)
	}
}

type buildConfig struct {
	policy DrawPolicy
}

// Option applies a configuration option to Build.
type Option func(*buildConfig)

// WithDrawPolicy sets how drawn matches contribute edges.
func WithDrawPolicy(policy DrawPolicy) Option {
	return func(c *buildConfig) {
		c.policy = policy
	}
}
