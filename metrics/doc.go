// Package metrics exports search driver activity to Prometheus.
//
// A Collector is a search.Observer: pass it to search.WithObserver and every
// push, pop, expansion, dominance drop and cutoff is counted by mode and kind.
// Finished runs are counted by mode and terminal status, and the number of
// expansions per run is recorded in a histogram.
//
// One Collector may be shared by any number of concurrent runs; the
// underlying Prometheus vectors are safe for concurrent use.
//
//	reg := prometheus.NewRegistry()
//	c := metrics.NewCollector(reg)
//	res, err := search.Optimum[*myState, myKey, int](start, search.WithObserver(c))
package metrics
