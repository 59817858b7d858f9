package s3store_test

import (
	"context"
	"estimator/pkg/blobstore"
	"estimator/pkg/blobstore/s3store"
	"estimator/pkg/serrors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	testAccessKey = "minioadmin"
	testSecretKey = "minioadmin"
)

func setupStore(t *testing.T) *s3store.Store {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: testcontainers.ContainerRequest{
			Image:        "minio/minio:latest",
			ExposedPorts: []string{"9000"},
			Env: map[string]string{
				"MINIO_ROOT_USER":     testAccessKey,
				"MINIO_ROOT_PASSWORD": testSecretKey,
			},
			Cmd:        []string{"server", "/data"},
			WaitingFor: wait.ForHTTP("/minio/health/live").WithPort("9000"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = container.Terminate(context.Background())
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "9000")
	require.NoError(t, err)

	store, err := s3store.New(ctx, s3store.Options{
		Endpoint:        fmt.Sprintf("%s:%d", host, port.Int()),
		AccessKeyID:     testAccessKey,
		SecretAccessKey: testSecretKey,
	})
	require.NoError(t, err)

	return store
}

func TestStore(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	store := setupStore(t)
	ctx := context.Background()

	require.NoError(t, store.EnsureBucket(ctx, "cad-raw"))
	require.NoError(t, store.EnsureBucket(ctx, "cad-raw"))
	require.NoError(t, store.Ping(ctx, "cad-raw"))

	_, err := store.Get(ctx, "cad-raw", "missing.step")
	require.ErrorIs(t, err, serrors.ErrNotFound)

	z := blobstore.NewZstd(store)
	payload := []byte("ISO-10303-21;\nHEADER;\nENDSEC;\n")
	require.NoError(t, z.Put(ctx, "cad-raw", "p-1/shaft.step", blobstore.Object{Data: payload, ContentType: "application/step"}))

	obj, err := z.Get(ctx, "cad-raw", "p-1/shaft.step")
	require.NoError(t, err)
	require.Equal(t, payload, obj.Data)
	require.Equal(t, "application/step", obj.ContentType)

	require.NoError(t, store.Delete(ctx, "cad-raw", "p-1/shaft.step"))
	_, err = store.Get(ctx, "cad-raw", "p-1/shaft.step")
	require.ErrorIs(t, err, serrors.ErrNotFound)
}
