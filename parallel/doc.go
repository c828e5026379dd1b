// Package parallel provides the fork-join layer shared by every solver phase.
//
// One abstraction, four backends:
//
//	serial runs the whole range inline on the caller (one unit)
//	loop   one goroutine per partition per call, joined by a WaitGroup
//	       (the data-parallel loop annotation shape)
//	pool   a fixed set of long-lived worker goroutines fed through per-unit
//	       channels; rows are split manually and each unit always receives
//	       the same partition index (the explicit thread-pool shape)
//	group  partitions dispatched through golang.org/x/sync/errgroup with
//	       SetLimit(units) (the parallel-for abstraction layer shape)
//
// Every backend splits [lo, hi) with Partition, so the work each unit sees for
// a given range is identical across backends, and every For call is a full
// barrier: it returns only after all partitions have finished. A panic inside
// a body is captured on the worker and re-raised on the caller after the
// barrier as a *PanicError.
//
// Executors are not reentrant: a body must not call For on the executor that
// is running it, and For must not be called from two goroutines at once.
package parallel
