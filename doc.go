// Package flowcut turns maximum-flow / minimum-cut computation into a
// linear-programming exercise: model a capacitated network, emit the
// flow LP, solve it with any LP backend, and read the minimum cut back
// two independent ways.
//
// 🚀 What is flowcut?
//
//	A small, deterministic kernel that brings together:
//		• Network model: validated directed capacitated graphs with
//		  bound source & sink and O(degree) adjacency access
//		• Flow LP builder: one variable per arc, conservation per node,
//		  maximize the flow leaving the source
//		• Cut extraction: residual-graph reachability AND a dual LP
//		  whose relaxation is provably integral
//		• Solver abstraction: a narrow Solve(ctx, problem) interface
//		  with an in-process simplex backend built on gonum
//
// ✨ Why choose flowcut?
//
//   - Verified results – capacity bounds, conservation and strong
//     duality (max-flow == min-cut) are checked before anything is
//     returned
//   - Deterministic – identical inputs produce identical problems,
//     solutions and reports
//   - Pure Go – the bundled simplex backend needs no cgo solver
//   - Swappable – bring your own lp.Solver and the kernel never knows
//
// Under the hood, everything is organized under five subpackages:
//
//	network/ — immutable capacitated network, validation, adjacency
//	lp/      — LP problem model, Solution, Status, the Solver interface
//	simplex/ — lp.Solver on gonum.org/v1/gonum/optimize/convex/lp
//	flow/    — flow LP builder, residual cut, dual-LP cut, verification
//	netio/   — YAML network files for tools and fixtures
//
// Quick ASCII example:
//
//	    ┌──100──▶ A ───90──▶ C ──140──┐
//	    s       120│        120│      ▼
//	    └──150──▶ B ──110──▶ D ──90──▶ t
//
//	a six-node network whose maximum flow (and minimum cut) is 180.
//
// Dive into cmd/flowcut for a runnable report over YAML network files.
//
//	go get github.com/katalvlaran/flowcut
package flowcut
