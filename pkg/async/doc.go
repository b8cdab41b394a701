// Package async provides a small future abstraction for fire-and-forget
// background work.
//
// Exec runs a function on its own goroutine and returns a Future that can be
// awaited, polled, or awaited with a timeout:
//
//	f := async.Exec(ctx, func(ctx context.Context) error {
//	    return ingest(ctx)
//	})
//
//	// later
//	if err := f.Await(); err != nil {
//	    log.Error("ingestion failed", "error", err)
//	}
//
// A context canceled before the function starts resolves the future with the
// context's error without running the function.
package async
