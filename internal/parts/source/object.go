package source

import (
	"context"
	"io"

	"parts_api/internal/parts/repository"
	"parts_api/platform/apperr"
	"parts_api/platform/validator"
)

// ObjectReader downloads objects from S3-compatible storage.
type ObjectReader interface {
	DownloadFile(ctx context.Context, bucket, fileKey string) (io.ReadCloser, error)
}

// Object reads the catalog document from object storage.
type Object struct {
	store  ObjectReader
	bucket string
	key    string
	val    *validator.Validator
}

// NewObject creates an object-storage-backed source.
func NewObject(store ObjectReader, bucket, key string, val *validator.Validator) *Object {
	return &Object{store: store, bucket: bucket, key: key, val: val}
}

// Name implements Source.
func (o *Object) Name() string { return "object:" + o.bucket + "/" + o.key }

// Load implements Source.
func (o *Object) Load(ctx context.Context) ([]repository.Part, error) {
	body, err := o.store.DownloadFile(ctx, o.bucket, o.key)
	if err != nil {
		return nil, apperr.Wrap(apperr.KindUnavailable, "download catalog object", err).WithOp("source.Object.Load")
	}
	defer body.Close()

	return Decode(body, o.val)
}
