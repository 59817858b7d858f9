package docstore_test

import (
	"estimator/pkg/docstore"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type order struct {
	ID        string    `json:"id"`
	Customer  string    `json:"customer"`
	Qty       int       `json:"qty"`
	CreatedAt time.Time `json:"createdAt"`
}

func TestEncodeStripsMetadata(t *testing.T) {
	fields, err := docstore.Encode(order{ID: "o-1", Customer: "Acme", Qty: 4, CreatedAt: time.Now()})
	require.NoError(t, err)
	require.Equal(t, map[string]any{"customer": "Acme", "qty": float64(4)}, fields)
}

func TestDecodeFillsMetadata(t *testing.T) {
	created := time.Date(2025, 6, 1, 8, 30, 0, 0, time.UTC)
	doc := docstore.Document{
		ID:        "o-2",
		CreatedAt: created,
		// Integer types vary per backend; all must decode.
		Fields: map[string]any{"customer": "Acme", "qty": uint64(7)},
	}

	var o order
	require.NoError(t, docstore.Decode(doc, &o))
	require.Equal(t, order{ID: "o-2", Customer: "Acme", Qty: 7, CreatedAt: created}, o)
}

func TestMerge(t *testing.T) {
	base := map[string]any{"status": "Open", "qty": 1}
	merged := docstore.Merge(base, map[string]any{"status": "Completed"})

	require.Equal(t, map[string]any{"status": "Completed", "qty": 1}, merged)
	require.Equal(t, "Open", base["status"])
}
