// Package storage defines the persistence interfaces of the estimator and
// the transaction handling around them. Backends live in subpackages.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"estimator/pkg/docstore"
)

// AllStorage groups every domain-specific capability.
type AllStorage interface {
	MaterialStorage
	PartStorage
	AnalysisJobStorage
	JobStorage
	docstore.Store
}

// TxStorage is a storage handle bound to a database transaction.
// Implementations become unusable after Commit or Rollback.
type TxStorage interface {
	AllStorage

	Commit() error
	Rollback() error
}

// Storage is a non-transactional storage handle able to start transactions.
type Storage interface {
	AllStorage

	// Close releases the underlying connection pool.
	Close() error

	// Begin starts a new transaction.
	Begin(ctx context.Context) (TxStorage, error)
	// WithTx runs cb inside a transaction, committing when cb returns nil and
	// rolling back otherwise.
	WithTx(ctx context.Context, cb func(storage AllStorage) error) error
}
