package blobstore_test

import (
	"bytes"
	"context"
	"estimator/pkg/blobstore"
	"estimator/pkg/serrors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestContentHash(t *testing.T) {
	// BLAKE3 of the empty input.
	require.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", blobstore.ContentHash(nil))
	require.Len(t, blobstore.ContentHash([]byte("ISO-10303-21;")), 64)
	require.NotEqual(t, blobstore.ContentHash([]byte("a")), blobstore.ContentHash([]byte("b")))
}

func TestMemory(t *testing.T) {
	ctx := context.Background()
	m := blobstore.NewMemory()

	_, err := m.Get(ctx, "raw", "p/a.step")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	require.NoError(t, m.Put(ctx, "raw", "p/a.step", blobstore.Object{Data: []byte("solid"), ContentType: "application/step"}))
	obj, err := m.Get(ctx, "raw", "p/a.step")
	require.NoError(t, err)
	require.Equal(t, []byte("solid"), obj.Data)
	require.Equal(t, []string{"p/a.step"}, m.Keys("raw"))

	require.NoError(t, m.Delete(ctx, "raw", "p/a.step"))
	require.Empty(t, m.Keys("raw"))
}

func TestZstd_RoundTrip(t *testing.T) {
	ctx := context.Background()
	inner := blobstore.NewMemory()
	z := blobstore.NewZstd(inner)

	payload := bytes.Repeat([]byte("CARTESIAN_POINT('',(0.,0.,0.));\n"), 200)
	require.NoError(t, z.Put(ctx, "raw", "p/part.step", blobstore.Object{Data: payload, ContentType: "application/step"}))

	stored, err := inner.Get(ctx, "raw", "p/part.step")
	require.NoError(t, err)
	require.Equal(t, blobstore.EncodingZstd, stored.ContentEncoding)
	require.Less(t, len(stored.Data), len(payload))

	obj, err := z.Get(ctx, "raw", "p/part.step")
	require.NoError(t, err)
	require.Equal(t, payload, obj.Data)
	require.Equal(t, "application/step", obj.ContentType)
	require.Empty(t, obj.ContentEncoding)
}

func TestZstd_PassesPlainObjects(t *testing.T) {
	ctx := context.Background()
	inner := blobstore.NewMemory()
	require.NoError(t, inner.Put(ctx, "models", "p/preview.gltf", blobstore.Object{Data: []byte("{}")}))

	obj, err := blobstore.NewZstd(inner).Get(ctx, "models", "p/preview.gltf")
	require.NoError(t, err)
	require.Equal(t, []byte("{}"), obj.Data)

	_, err = blobstore.NewZstd(inner).Get(ctx, "models", "missing")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
