// Package blobstore stores uploaded CAD files and generated preview models.
//
//go:generate mockgen -package mockblobstore -source=blobstore.go -destination=mock/mockblobstore.go *
package blobstore

import (
	"context"
	"encoding/hex"

	"github.com/zeebo/blake3"
)

// Object is a stored blob.
type Object struct {
	Data        []byte
	ContentType string
	// ContentEncoding is "zstd" for objects written through Zstd.
	ContentEncoding string
}

// Store reads and writes objects by bucket and key. Get of a missing object
// returns serrors.ErrNotFound.
type Store interface {
	Put(ctx context.Context, bucket, key string, obj Object) error
	Get(ctx context.Context, bucket, key string) (*Object, error)
	Delete(ctx context.Context, bucket, key string) error
	// EnsureBucket creates bucket when it does not exist yet.
	EnsureBucket(ctx context.Context, bucket string) error
}

// ContentHash returns the hex BLAKE3-256 digest of data.
func ContentHash(data []byte) string {
	sum := blake3.Sum256(data)

	return hex.EncodeToString(sum[:])
}
