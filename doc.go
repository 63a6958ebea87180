// Package pidigits computes decimal digits of pi: the Chudnovsky series,
// evaluated exactly by binary splitting, finished with a single
// arbitrary-precision square root.
//
// 🚀 What is pidigits?
//
//	A small, pure-Go library plus service that brings together:
//		• split:      exact (P, Q, R) binary splitting over term ranges
//		• chudnovsky: validation, precision/term derivation, final combination
//		• service:    HTTP endpoint with worker limit, prefix cache, metrics
//		• cli:        `pidigits compute | serve | version`
//
// ✨ Why binary splitting?
//
//   - Exact – every step but the square root is big.Int arithmetic
//   - Fast – sub-quadratic, the cost sits in the few root multiplications
//   - Pure – no shared state, any number of concurrent callers
//
// Layout:
//
//	split/       - Leaf, Combine, Split, SplitAt, SplitStack
//	chudnovsky/  - Compute, Plan, options (logger, guard terms, evaluator)
//	config/      - YAML configuration
//	service/     - /pidigits/, /healthz, /metrics
//	cli/         - cobra commands
//	cmd/pidigits - main
//
// Quick example:
//
//	s, _ := chudnovsky.Compute(20)
//	// s == "3.14159265358979323846"
//
//	go get github.com/katalvlaran/pidigits
package pidigits
