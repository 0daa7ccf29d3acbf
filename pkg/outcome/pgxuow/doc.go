// Package pgxuow implements the ambient unit-of-work contract over a pgx
// transaction. The environment begins the transaction, attaches the Guard
// to the request context via observe.WithUnitOfWork and concludes it after
// the wrapped operation returns.
package pgxuow
