package output

import "context"

// StoragePort is a string key-value persistence sink.
type StoragePort interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
	Close() error
}
