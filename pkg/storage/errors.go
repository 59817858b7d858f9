package storage

import "errors"

var (
	// ErrAlreadyInTx is returned by Begin, and by operations that must run on
	// the pool such as migrations, when the storage is already a transaction.
	ErrAlreadyInTx = errors.New("storage: already in a transaction")
	// ErrNotInTx is returned by Commit and Rollback outside a transaction.
	ErrNotInTx = errors.New("storage: not in a transaction")
	// ErrDuplicate is returned when an insert violates a uniqueness
	// constraint, e.g. a second material with the same code.
	ErrDuplicate = errors.New("storage: duplicate")
)
