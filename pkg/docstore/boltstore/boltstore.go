// Package boltstore implements docstore.Store on a local bbolt file. Each
// collection is a bucket; each document is a CBOR record keyed by its ID.
package boltstore

import (
	"context"
	"errors"
	"estimator/pkg/docstore"
	"estimator/pkg/serrors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"
)

// Store is a bbolt-backed document store. It is safe for concurrent use.
type Store struct {
	db  *bolt.DB
	now func() time.Time
}

var _ docstore.Store = (*Store)(nil)

// Open opens or creates the database file at path. The parent directory is
// created when missing.
func Open(path string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return nil, fmt.Errorf("could not create directory for %s: %w", path, err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("could not open bolt db %s: %w", path, err)
	}

	return &Store{db: db, now: time.Now}, nil
}

// Close releases the database file lock.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) GetAll(ctx context.Context, collection string) ([]docstore.Document, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	var docs []docstore.Document
	err := s.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return nil
		}

		return b.ForEach(func(_, v []byte) error {
			r, err := unmarshalRecord(v)
			if err != nil {
				return err
			}
			docs = append(docs, docstore.Document{ID: r.ID, CreatedAt: r.CreatedAt, Fields: r.Fields})

			return nil
		})
	})
	if err != nil {
		return nil, fmt.Errorf("could not read collection %s: %w", collection, err)
	}

	return docs, nil
}

func (s *Store) AddDoc(ctx context.Context, collection string, fields map[string]any) (string, error) {
	id := uuid.NewString()
	if err := s.put(ctx, collection, id, fields); err != nil {
		return "", err
	}

	return id, nil
}

func (s *Store) PutDoc(ctx context.Context, collection, id string, fields map[string]any) error {
	return s.put(ctx, collection, id, fields)
}

func (s *Store) put(ctx context.Context, collection, id string, fields map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(collection))
		if err != nil {
			return err
		}

		created := s.now().UTC()
		if existing := b.Get([]byte(id)); existing != nil {
			if r, err := unmarshalRecord(existing); err == nil {
				created = r.CreatedAt
			}
		}

		data, err := marshalRecord(record{ID: id, CreatedAt: created, Fields: fields})
		if err != nil {
			return err
		}

		return b.Put([]byte(id), data)
	})
	if err != nil {
		return fmt.Errorf("could not store document %s/%s: %w", collection, id, err)
	}

	return nil
}

func (s *Store) UpdateDoc(ctx context.Context, collection, id string, patch map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil {
			return serrors.With(serrors.ErrNotFound, "document %s/%s not found", collection, id)
		}
		existing := b.Get([]byte(id))
		if existing == nil {
			return serrors.With(serrors.ErrNotFound, "document %s/%s not found", collection, id)
		}

		r, err := unmarshalRecord(existing)
		if err != nil {
			return fmt.Errorf("could not decode document %s/%s: %w", collection, id, err)
		}
		r.Fields = docstore.Merge(r.Fields, patch)

		data, err := marshalRecord(r)
		if err != nil {
			return fmt.Errorf("could not encode document %s/%s: %w", collection, id, err)
		}

		return b.Put([]byte(id), data)
	})
}

func (s *Store) DeleteDoc(ctx context.Context, collection, id string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(collection))
		if b == nil || b.Get([]byte(id)) == nil {
			return serrors.With(serrors.ErrNotFound, "document %s/%s not found", collection, id)
		}

		return b.Delete([]byte(id))
	})
}

func (s *Store) DropCollection(ctx context.Context, collection string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	err := s.db.Update(func(tx *bolt.Tx) error {
		err := tx.DeleteBucket([]byte(collection))
		if errors.Is(err, bolt.ErrBucketNotFound) {
			return nil
		}

		return err
	})
	if err != nil {
		return fmt.Errorf("could not drop collection %s: %w", collection, err)
	}

	return nil
}
