package blobstore

import (
	"context"

	"golang.org/x/time/rate"
)

// ThrottledStore wraps a BlobStore and limits transferred bytes per second.
//
// Large snapshot uploads share the limiter, so batch saves do not saturate
// the link to a remote store.
type ThrottledStore struct {
	inner   BlobStore
	limiter *rate.Limiter
}

// NewThrottledStore creates a ThrottledStore.
// If bytesPerSec <= 0, the store is not limited.
func NewThrottledStore(inner BlobStore, bytesPerSec int) *ThrottledStore {
	s := &ThrottledStore{inner: inner}
	if bytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(bytesPerSec), bytesPerSec)
	}
	return s
}

// wait blocks until n bytes may pass. Requests larger than the burst are
// split into burst-sized chunks.
func (s *ThrottledStore) wait(ctx context.Context, n int) error {
	if s.limiter == nil {
		return nil
	}
	burst := s.limiter.Burst()
	for n > 0 {
		chunk := min(n, burst)
		if err := s.limiter.WaitN(ctx, chunk); err != nil {
			return err
		}
		n -= chunk
	}
	return nil
}

// Get reads a blob, charging its size against the limit.
func (s *ThrottledStore) Get(ctx context.Context, name string) ([]byte, error) {
	data, err := s.inner.Get(ctx, name)
	if err != nil {
		return nil, err
	}
	if err := s.wait(ctx, len(data)); err != nil {
		return nil, err
	}
	return data, nil
}

// Put writes a blob once the limiter admits its size.
func (s *ThrottledStore) Put(ctx context.Context, name string, data []byte) error {
	if err := s.wait(ctx, len(data)); err != nil {
		return err
	}
	return s.inner.Put(ctx, name, data)
}

// Delete removes a blob.
func (s *ThrottledStore) Delete(ctx context.Context, name string) error {
	return s.inner.Delete(ctx, name)
}

// List returns all blobs matching the prefix.
func (s *ThrottledStore) List(ctx context.Context, prefix string) ([]string, error) {
	return s.inner.List(ctx, prefix)
}
