package chudnovsky

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/pidigits/split"
)

// Evaluator selects how the term range is folded.
//
//   - Recursive - split.Split, native recursion (default).
//   - Stack     - split.SplitStack, explicit worklist; bounded goroutine stack
//     for very large term counts.
type Evaluator int

const (
	// Recursive evaluates with split.Split.
	Recursive Evaluator = iota

	// Stack evaluates with split.SplitStack.
	Stack
)

// String returns the lower-case evaluator name used in configuration files.
func (e Evaluator) String() string {
	switch e {
	case Recursive:
		return "recursive"
	case Stack:
		return "stack"
	default:
		return fmt.Sprintf("Evaluator(%d)", int(e))
	}
}

// ParseEvaluator maps a configuration name back to an Evaluator.
// The empty string selects Recursive.
func ParseEvaluator(s string) (Evaluator, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "recursive":
		return Recursive, nil
	case "stack":
		return Stack, nil
	default:
		return Recursive, fmt.Errorf("chudnovsky: unknown evaluator %q", s)
	}
}

// fn returns the split function behind e.
func (e Evaluator) fn() func(a, b uint32) (split.Triple, error) {
	if e == Stack {
		return split.SplitStack
	}

	return split.Split
}

// Option customizes a Compute call.
type Option func(*engineConfig)

// engineConfig holds the resolved knobs of one call. Built fresh per call.
type engineConfig struct {
	logger     *zap.Logger
	guardTerms uint32
	evaluator  Evaluator
}

// WithLogger attaches a zap logger for debug tracing. Panics on nil.
func WithLogger(l *zap.Logger) Option {
	if l == nil {
		panic("chudnovsky: WithLogger(nil)")
	}
	return func(c *engineConfig) {
		c.logger = l
	}
}

// WithGuardTerms sets how many series terms are evaluated beyond
// ⌈digits / DigitsPerTerm⌉. Zero reproduces the bare asymptotic count.
// A count whose sum with the asymptotic count overflows uint32 is rejected
// by Plan and Compute with ErrInvalidArgument.
func WithGuardTerms(k uint32) Option {
	return func(c *engineConfig) {
		c.guardTerms = k
	}
}

// WithEvaluator selects the splitting strategy. Panics on unknown values.
func WithEvaluator(e Evaluator) Option {
	if e != Recursive && e != Stack {
		panic(fmt.Sprintf("chudnovsky: WithEvaluator(%d)", int(e)))
	}
	return func(c *engineConfig) {
		c.evaluator = e
	}
}

// newEngineConfig applies opts over the defaults; last option wins.
func newEngineConfig(opts ...Option) engineConfig {
	cfg := engineConfig{
		logger:     zap.NewNop(),
		guardTerms: DefaultGuardTerms,
		evaluator:  Recursive,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
