package blobstore

import (
	"bytes"
	"context"
	"io"
	"sync"
)

// MemoryStore keeps feature files in memory. It is used by tests and by
// callers that already hold the file contents.
type MemoryStore struct {
	mu    sync.RWMutex
	blobs map[string][]byte
}

var _ Downloader = (*MemoryStore)(nil)

// NewMemoryStore creates an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{blobs: make(map[string][]byte)}
}

// Put stores a copy of data under name, replacing any previous blob.
func (m *MemoryStore) Put(_ context.Context, name string, data []byte) error {
	m.mu.Lock()
	m.blobs[name] = bytes.Clone(data)
	m.mu.Unlock()
	return nil
}

func (m *MemoryStore) get(name string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	data, ok := m.blobs[name]
	if !ok {
		return nil, ErrNotFound
	}
	return data, nil
}

// Open implements BlobStore. Stored slices are never modified, so the blob
// stays valid after a later Put of the same name.
func (m *MemoryStore) Open(_ context.Context, name string) (Blob, error) {
	data, err := m.get(name)
	if err != nil {
		return nil, err
	}
	return &memoryBlob{r: bytes.NewReader(data)}, nil
}

// Download implements Downloader and returns a copy of the blob.
func (m *MemoryStore) Download(_ context.Context, name string) ([]byte, error) {
	data, err := m.get(name)
	if err != nil {
		return nil, err
	}
	return bytes.Clone(data), nil
}

type memoryBlob struct {
	r *bytes.Reader
}

func (b *memoryBlob) ReadAt(_ context.Context, p []byte, off int64) (int, error) {
	return b.r.ReadAt(p, off)
}

func (b *memoryBlob) ReadRange(_ context.Context, off, length int64) (io.ReadCloser, error) {
	return io.NopCloser(io.NewSectionReader(b.r, off, max(length, 0))), nil
}

func (b *memoryBlob) Size() int64 { return b.r.Size() }

func (b *memoryBlob) Close() error { return nil }
