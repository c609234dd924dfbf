// Package tsp computes near-optimal closed tours over a distance matrix with
// stochastic local search and variable neighbourhood search (VNS).
//
// Building blocks, leaves first:
//
//   - DistanceMatrix: immutable N×N cost table addressed by 1-based city ids.
//     Asymmetric matrices are fine; nothing assumes the triangle inequality.
//
//   - Tour: closed cycle of length N+1 with Tour[0] == Tour[N].
//
//   - TotalDistance: sum of all arcs including the closing one (O(N)).
//
//   - SeedTour: uniformly random closed tour (O(N)).
//
//   - Stochastic2Opt: reverse a random segment (O(N)).
//
//   - ThreeOpt: one improving 3-segment reconnection, first- or
//     best-improvement (O(N³), cancellable per outer index).
//
//   - LocalSearch: stochastic hill-climbing with a no-improvement budget.
//
//   - RunContext.Search: the VNS loop (shake, LocalSearch, ThreeOpt on a
//     cadence, keep the best, report progress, honour cancellation).
//
// Determinism: every random draw comes from the RunContext's own generator.
// A fixed Options.Seed reproduces a run; Seed==0 selects a fixed default.
//
// Cancellation is cooperative through context.Context and is a normal
// terminal state (StatusCancelled) that still returns the best tour found.
//
// Numeric policy: distances are summed in float64 and stabilized to 1e-9.
// NaN or negative weights are not rejected by the engine; validating them is
// the caller's job (matrix.LoadTSV does it at ingestion).
package tsp
