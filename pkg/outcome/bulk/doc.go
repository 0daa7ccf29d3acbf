// Package bulk combines sequences of Results into a single Result.
//
// Combine scans in order and returns the first failure it meets; it never
// collects multiple errors. All fans suppliers out on goroutines and feeds
// their outcomes to Combine in argument order.
package bulk
