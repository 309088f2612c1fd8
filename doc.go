// Package steinerweb connects the dots — literally: given a weighted
// graph and a set of must-reach vertices, it grows an approximate
// Steiner tree joining them at low total weight.
//
// 🚀 What is steinerweb?
//
//	A deterministic, pure-Go heuristic for the (NP-hard) Steiner tree
//	problem, built from three pieces:
//		• core/    — order-preserving Graph, Vertex & Edge primitives
//		• steiner/ — the multi-source frontier search and its Tree() entry point
//		• repair/  — a pluggable collaborator that bridges leftover islands
//
// ✨ Why choose steinerweb?
//
//   - Deterministic – output is a pure function of supply order, no randomness
//   - Minimal API – one call: steiner.Tree(g, terminals, ...opts)
//   - Pure Go – no cgo, no runtime deps
//   - Extensible – swap in your own connectivity-repair collaborator
//
// Quick ASCII example:
//
//	    A──2──B──3──C
//	           │
//	           9
//	           │
//	           D
//
//	with terminals {A, C}, the tree is {A—B, B—C}; D stays out.
//
// Dive into the steiner package documentation for the algorithm, its
// approximation trade-offs, and the repair collaborator contract.
//
//	go get github.com/katalvlaran/steinerweb
package steinerweb
