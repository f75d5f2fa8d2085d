// Package async provides utilities for asynchronous programming with Go generics.
//
// This package implements a Future pattern for non-blocking operations with timeout support
// and continuation chaining.
//
// # Core Types
//
// Future[U] represents the result of an asynchronous computation. It provides methods
// to wait for completion (Await), check status without blocking (IsComplete), and
// handle timeouts (AwaitWithTimeout).
//
// # Usage
//
// Basic asynchronous operation:
//
//	func fetchUser(ctx context.Context, userID int) (User, error) {
//		// Simulate database call
//		time.Sleep(100 * time.Millisecond)
//		return User{ID: userID, Name: "John"}, nil
//	}
//
//	// Execute asynchronously
//	future := async.Async(ctx, 123, fetchUser)
//
//	// Do other work...
//
//	// Wait for result
//	user, err := future.Await()
//	if err != nil {
//		log.Fatal(err)
//	}
//
// Using timeout:
//
//	user, err := future.AwaitWithTimeout(50 * time.Millisecond)
//	if errors.Is(err, async.ErrTimeout) {
//		log.Println("Operation timed out")
//	}
//
// # Continuations
//
// Then runs a function after a future succeeds, Settle runs it whatever the outcome:
//
//	greeting := async.Then(ctx, future, func(ctx context.Context, u User) (string, error) {
//		return "hello " + u.Name, nil
//	})
//
// Resolved and Rejected build futures that are already complete, which lets
// synchronous values take part in the same continuation chains.
//
// # Error Handling
//
//   - ErrTimeout: returned when AwaitWithTimeout exceeds its duration
//   - ErrPanic: wraps the value recovered from a panicking function
//
// # Concurrency Safety
//
// All operations are safe for concurrent use. Completion is guarded by sync.Once.
//
// # Context Support
//
// If a context is cancelled before the async function begins execution,
// the future completes immediately with the context's error.
package async
