// Package tourvns finds short closed tours over a fixed set of cities with
// Variable Neighbourhood Search (VNS): random shaking, stochastic 2-opt local
// search and a deterministic 3-opt polish.
//
// What is inside?
//
//   - Distance tables: load label-framed TSV files into a gonum-backed matrix,
//     optionally closing them under shortest paths.
//   - Tour engine: seed tours, 2-opt and 3-opt moves, local search and the
//     VNS driver, all reproducible from a single int64 seed.
//   - Run control: one background run at a time, cooperative Stop, strictly
//     decreasing progress callbacks.
//   - Reporting: per-leg tables with summary statistics.
//
// Everything is organized under these packages:
//
//	matrix/          Matrix interface, Dense storage, TSV loader, MetricClosure
//	tsp/             DistanceMatrix, Tour, 2-opt, 3-opt, LocalSearch, VNS
//	runner/          Start / Stop / Wait around a single run, slog logging
//	render/          TourString and per-leg Report
//	internal/config/ .env, TOURVNS_* environment and flag layering
//	cmd/tourvns/     the command-line front end
//
// Quick ASCII example:
//
//	    A──1──B
//	    │ ╲10╱│
//	    1  ╳  1
//	    │ ╱10╲│
//	    D──1──C
//
//	the ring A→B→C→D→A (length 4) is the tour VNS settles on.
//
//	go install github.com/katalvlaran/tourvns/cmd/tourvns@latest
package tourvns
