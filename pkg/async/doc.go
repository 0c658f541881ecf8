// Package async runs error-returning functions in the background and lets
// callers wait for them.
//
//	future := async.Exec(ctx, values, submit)
//
//	// Do other work...
//
//	if err := future.AwaitWithTimeout(5 * time.Second); errors.Is(err, async.ErrTimeout) {
//		log.Println("submit still running")
//	}
//
// ExecAll waits for every future and returns the first error in argument order.
// ExecAny returns as soon as one future finishes.
//
// # Errors
//
//   - ErrTimeout: returned when AwaitWithTimeout exceeds its duration
//   - ErrNoFutures: returned when ExecAny is called with no futures
package async
