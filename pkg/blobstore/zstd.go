package blobstore

import (
	"context"
	"fmt"

	"github.com/klauspost/compress/zstd"
)

// EncodingZstd marks zstd-compressed objects.
const EncodingZstd = "zstd"

// nolint: gochecknoglobals
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("blobstore: zstd encoder initialization failed: " + err.Error())
	}

	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("blobstore: zstd decoder initialization failed: " + err.Error())
	}
}

// Zstd compresses objects on Put and transparently decompresses them on Get.
// Objects written without compression are returned unchanged, so the
// wrapper can be enabled on a bucket that already holds plain objects.
type Zstd struct {
	Store
}

// NewZstd wraps inner.
func NewZstd(inner Store) *Zstd {
	return &Zstd{Store: inner}
}

func (z *Zstd) Put(ctx context.Context, bucket, key string, obj Object) error {
	obj.Data = zstdEncoder.EncodeAll(obj.Data, nil)
	obj.ContentEncoding = EncodingZstd

	return z.Store.Put(ctx, bucket, key, obj)
}

func (z *Zstd) Get(ctx context.Context, bucket, key string) (*Object, error) {
	obj, err := z.Store.Get(ctx, bucket, key)
	if err != nil {
		return nil, err
	}
	if obj.ContentEncoding != EncodingZstd {
		return obj, nil
	}

	data, err := zstdDecoder.DecodeAll(obj.Data, nil)
	if err != nil {
		return nil, fmt.Errorf("could not decompress %s/%s: %w", bucket, key, err)
	}

	return &Object{Data: data, ContentType: obj.ContentType}, nil
}
