// Package async provides a minimal futures API for running functions
// concurrently and collecting their results in a type-safe way.
//
// A Future is created with Async, which starts the given function in its own
// goroutine and returns immediately. The result is retrieved with Await, which
// blocks until the function completes, or inspected without blocking via
// IsComplete. WaitAll gathers the results of a batch of futures in the order
// they were created, which keeps fan-out output deterministic regardless of
// completion order.
//
// # Usage
//
//	future := async.Async(ctx, "John Doe", func(ctx context.Context, name string) ([]string, error) {
//	    return generate(ctx, name)
//	})
//
//	handles, err := future.Await()
//	if err != nil {
//	    // Handle error
//	}
//
// Fan out a batch and collect in input order:
//
//	futures := make([]*async.Future[[]string], len(names))
//	for i, name := range names {
//	    futures[i] = async.Async(ctx, name, worker)
//	}
//	results, err := async.WaitAll(futures...)
//
// # Error Handling
//
// Errors returned by the asynchronous function are stored in the Future and
// returned from Await. A context that is already canceled when Async is called
// short-circuits the work and surfaces ctx.Err. WaitAll returns the first
// error it encounters together with the results collected up to that point.
//
// # Performance Considerations
//
// Async spawns one goroutine per call. Callers that need bounded concurrency
// should gate the work inside the function, for example with a buffered
// channel used as a semaphore.
package async
