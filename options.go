// Copyright (c) 2025 Karl Gaissmaier
// SPDX-License-Identifier: MIT

package prefixtree

import (
	"fmt"
	"log/slog"
)

// NestedPolicy decides how keys that are a strict prefix of
// another key in the same table are handled.
type NestedPolicy uint8

const (
	// NestedReject refuses tables with nested keys, the default.
	NestedReject NestedPolicy = iota

	// NestedLongest matches the longest key that is a prefix of the input.
	NestedLongest

	// NestedShortest matches the shortest key that is a prefix of the input,
	// longer keys sharing that prefix are unreachable.
	NestedShortest
)

var policyNames = [...]string{
	NestedReject:   "reject",
	NestedLongest:  "longest",
	NestedShortest: "shortest",
}

func (p NestedPolicy) String() string {
	if int(p) < len(policyNames) {
		return policyNames[p]
	}
	return fmt.Sprintf("NestedPolicy(%d)", uint8(p))
}

// ParseNestedPolicy parses "reject", "longest" or "shortest".
func ParseNestedPolicy(s string) (NestedPolicy, error) {
	for p, name := range policyNames {
		if s == name {
			return NestedPolicy(p), nil
		}
	}
	return NestedReject, fmt.Errorf("unknown nested key policy %q", s)
}

// Option configures the construction of an [Index] or [Table].
type Option func(*config)

type config struct {
	nested NestedPolicy
	dense  bool
	logger *slog.Logger
}

func newConfig(opts []Option) config {
	cfg := config{
		logger: slog.New(slog.DiscardHandler),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNestedKeys sets the policy for keys that are a strict prefix
// of another key. The default is NestedReject.
func WithNestedKeys(p NestedPolicy) Option {
	return func(c *config) {
		c.nested = p
	}
}

// WithDenseDispatch selects 256 wide child arrays for fanout nodes,
// trading memory for one popcount less per fanout step.
// By default the dispatch is popcount compressed.
func WithDenseDispatch(enabled bool) Option {
	return func(c *config) {
		c.dense = enabled
	}
}

// WithLogger sets the logger for construction statistics, logged at
// debug level. A nil logger disables logging, the default.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger == nil {
			logger = slog.New(slog.DiscardHandler)
		}
		c.logger = logger
	}
}
