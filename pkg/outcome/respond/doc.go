// Package respond translates a completed Result into the wire response
// shape and its fixed category-to-status mapping. It is the boundary
// collaborator of the core: by the time a Result reaches this package both
// observers have already run.
package respond
