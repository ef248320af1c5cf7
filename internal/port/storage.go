package port

import "context"

// ObjectStorage archives rendered invoice PDFs.
type ObjectStorage interface {
	Put(ctx context.Context, key, contentType string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
	Delete(ctx context.Context, key string) error
}
