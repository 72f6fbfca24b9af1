package object

import "context"

// BlobStore defines the contract for saving and retrieving binary snapshots by key.
type BlobStore interface {
	Put(ctx context.Context, key string, data []byte) error
	Get(ctx context.Context, key string) ([]byte, error)
}
