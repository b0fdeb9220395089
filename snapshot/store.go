package snapshot

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/hupe1980/pointgen/blobstore"
	"github.com/hupe1980/pointgen/codec"
)

const (
	pointerName = "CURRENT"
	extension   = ".snap"
)

var (
	// ErrNotFound is returned when a dataset or version does not exist.
	ErrNotFound = errors.New("snapshot: not found")
	// ErrInvalidName is returned for empty names or names containing a path separator.
	ErrInvalidName = errors.New("snapshot: invalid name")
)

// Store saves and loads snapshots through a blob store.
type Store struct {
	blobs       blobstore.BlobStore
	codec       codec.Codec
	compression Compression
	concurrency int
	now         func() time.Time
}

// StoreOption configures a Store.
type StoreOption func(*Store)

// WithCodec sets the payload codec. Default: codec.Default.
func WithCodec(c codec.Codec) StoreOption {
	return func(s *Store) {
		s.codec = c
	}
}

// WithCompression sets the payload compression. Default: CompressionNone.
func WithCompression(c Compression) StoreOption {
	return func(s *Store) {
		s.compression = c
	}
}

// WithConcurrency bounds the number of parallel writes in SaveAll.
func WithConcurrency(n int) StoreOption {
	return func(s *Store) {
		s.concurrency = n
	}
}

// NewStore creates a snapshot store over blobs.
func NewStore(blobs blobstore.BlobStore, opts ...StoreOption) *Store {
	s := &Store{
		blobs:       blobs,
		codec:       codec.Default,
		concurrency: 4,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func validateName(name string) error {
	if name == "" || strings.ContainsAny(name, "/\\") || name == "." || name == ".." {
		return fmt.Errorf("%w: %q", ErrInvalidName, name)
	}
	return nil
}

func versionPath(name, id string) string {
	return path.Join(name, id+extension)
}

func pointerPath(name string) string {
	return path.Join(name, pointerName)
}

// Save writes snap as a new version of its dataset and moves the dataset's
// CURRENT pointer to it. A missing ID or CreatedAt is filled in on snap.
func (s *Store) Save(ctx context.Context, snap *Snapshot) error {
	if err := validateName(snap.Name); err != nil {
		return err
	}
	if snap.ID == "" {
		snap.ID = NewID()
	}
	if err := validateName(snap.ID); err != nil {
		return err
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = s.now().UTC()
	}

	data, err := Encode(snap, EncodeOptions{Codec: s.codec, Compression: s.compression})
	if err != nil {
		return err
	}

	if err := s.blobs.Put(ctx, versionPath(snap.Name, snap.ID), data); err != nil {
		return fmt.Errorf("write snapshot %s/%s: %w", snap.Name, snap.ID, err)
	}
	if err := s.blobs.Put(ctx, pointerPath(snap.Name), []byte(snap.ID)); err != nil {
		return fmt.Errorf("update pointer for %s: %w", snap.Name, err)
	}
	return nil
}

// SaveAll saves snapshots concurrently. Snapshots sharing a name race for
// the CURRENT pointer; the last write wins.
func (s *Store) SaveAll(ctx context.Context, snaps []*Snapshot) error {
	g, ctx := errgroup.WithContext(ctx)
	if s.concurrency > 0 {
		g.SetLimit(s.concurrency)
	}

	for _, snap := range snaps {
		g.Go(func() error {
			return s.Save(ctx, snap)
		})
	}

	return g.Wait()
}

// Current returns the ID the dataset's CURRENT pointer names.
func (s *Store) Current(ctx context.Context, name string) (string, error) {
	if err := validateName(name); err != nil {
		return "", err
	}

	data, err := s.blobs.Get(ctx, pointerPath(name))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return "", fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

// Load reads the current version of a dataset.
func (s *Store) Load(ctx context.Context, name string) (*Snapshot, error) {
	id, err := s.Current(ctx, name)
	if err != nil {
		return nil, err
	}
	return s.LoadVersion(ctx, name, id)
}

// LoadVersion reads a specific version of a dataset.
func (s *Store) LoadVersion(ctx context.Context, name, id string) (*Snapshot, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}
	if err := validateName(id); err != nil {
		return nil, err
	}

	data, err := s.blobs.Get(ctx, versionPath(name, id))
	if err != nil {
		if errors.Is(err, blobstore.ErrNotFound) {
			return nil, fmt.Errorf("%w: %s/%s", ErrNotFound, name, id)
		}
		return nil, err
	}

	snap, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("decode %s/%s: %w", name, id, err)
	}
	return snap, nil
}

// Versions returns the saved version IDs of a dataset, oldest first.
func (s *Store) Versions(ctx context.Context, name string) ([]string, error) {
	if err := validateName(name); err != nil {
		return nil, err
	}

	names, err := s.blobs.List(ctx, name+"/")
	if err != nil {
		return nil, err
	}

	var ids []string
	for _, n := range names {
		if path.Dir(n) != name || !strings.HasSuffix(n, extension) {
			continue
		}
		ids = append(ids, strings.TrimSuffix(path.Base(n), extension))
	}
	return ids, nil
}

// Delete removes one version. When it was current, the pointer moves to the
// newest remaining version, or is removed when none is left.
func (s *Store) Delete(ctx context.Context, name, id string) error {
	if err := validateName(name); err != nil {
		return err
	}
	if err := validateName(id); err != nil {
		return err
	}

	if err := s.blobs.Delete(ctx, versionPath(name, id)); err != nil {
		return err
	}

	current, err := s.Current(ctx, name)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil
		}
		return err
	}
	if current != id {
		return nil
	}

	ids, err := s.Versions(ctx, name)
	if err != nil {
		return err
	}
	if len(ids) == 0 {
		return s.blobs.Delete(ctx, pointerPath(name))
	}
	return s.blobs.Put(ctx, pointerPath(name), []byte(ids[len(ids)-1]))
}
