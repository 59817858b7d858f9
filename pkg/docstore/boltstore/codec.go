package boltstore

import (
	"reflect"
	"time"

	"github.com/fxamacker/cbor/v2"
)

// record is the value stored under each document key.
type record struct {
	ID        string         `cbor:"id"`
	CreatedAt time.Time      `cbor:"created_at"`
	Fields    map[string]any `cbor:"fields"`
}

// nolint: gochecknoglobals
var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error

	encOptions := cbor.CoreDetEncOptions()
	encOptions.Time = cbor.TimeRFC3339Nano
	encMode, err = encOptions.EncMode()
	if err != nil {
		panic("boltstore: CBOR encoder initialization failed: " + err.Error())
	}

	decMode, err = cbor.DecOptions{
		// Nested objects inside Fields must decode as map[string]any so they
		// round-trip through encoding/json.
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("boltstore: CBOR decoder initialization failed: " + err.Error())
	}
}

func marshalRecord(r record) ([]byte, error) {
	return encMode.Marshal(r)
}

func unmarshalRecord(data []byte) (record, error) {
	var r record
	err := decMode.Unmarshal(data, &r)

	return r, err
}
