// Package future runs a Result producer off the calling goroutine and
// hands back a channel that resolves to exactly one Result.
//
// The single suspension point of the library lives here: combinator chains
// are pure and synchronous, only Async crosses a goroutine boundary. At
// that boundary failure must remain observable as data, so panics and
// cancellation are converted into generic failures instead of propagating.
//
// Common usage:
//
//	fut := future.Async(ctx, loadUser)
//	res := future.Await(ctx, fut)
package future
