// Package future provides the pending computations awaited by
// result.AsyncIfOk.
//
// A Promise resolves its Future once; every Await, from any goroutine,
// then observes the same value:
//
//	promise, fut := future.New[int]()
//	go func() {
//		promise.Fulfill(work())
//	}()
//	return fut
//
// Helpers:
// - Resolved: a Future that already holds its value
// - Go: run a function in a goroutine and return its Future
// - Then: transform a Future's value once it arrives
// - Awaitable: anything with a blocking Wait, satisfied by every Future
package future
