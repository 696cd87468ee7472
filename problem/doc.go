// Package problem reads max-flow and matching problems from YAML or TOML
// files and turns them into a *core.Graph or a matching.Instance.
//
// A max-flow problem:
//
//	kind: maxflow
//	name: logistics
//	source: S
//	sink: T
//	edges:
//	  - {from: S, to: A, capacity: 15}
//	  - {from: A, to: T, capacity: 15}
//
// A matching problem:
//
//	kind: matching
//	left: [A1, A2]
//	right: [J1, J2]
//	pairs: [[A1, J1], [A2, J1]]
//
// The same keys are used in TOML. Unknown keys are rejected. Every
// structural error wraps ErrBadProblem.
package problem
