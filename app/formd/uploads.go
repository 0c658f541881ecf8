package formd

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path"
	"sync"

	"github.com/emmydush/businessos/core/sanitizer"
	"github.com/emmydush/businessos/integration/storage/s3"
)

// UploadStore keeps validated attachments. *s3.Storage satisfies it.
type UploadStore interface {
	Save(ctx context.Context, fh *multipart.FileHeader, dir string) (*s3.Object, error)
	Delete(ctx context.Context, key string) error
}

// MemoryUploads is an UploadStore holding content in memory.
type MemoryUploads struct {
	mu      sync.RWMutex
	objects map[string][]byte
}

// NewMemoryUploads returns an empty MemoryUploads.
func NewMemoryUploads() *MemoryUploads {
	return &MemoryUploads{objects: make(map[string][]byte)}
}

func (m *MemoryUploads) Save(ctx context.Context, fh *multipart.FileHeader, dir string) (*s3.Object, error) {
	if fh == nil {
		return nil, s3.ErrNilFileHeader
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	src, err := fh.Open()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", s3.ErrFailedToOpenFile, err)
	}
	defer func() { _ = src.Close() }()

	data, err := io.ReadAll(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", s3.ErrFailedToOpenFile, err)
	}

	filename := sanitizer.SanitizeFilename(fh.Filename)
	key := path.Join(dir, filename)

	m.mu.Lock()
	m.objects[key] = data
	m.mu.Unlock()

	return &s3.Object{
		Key:         key,
		Filename:    filename,
		Size:        int64(len(data)),
		ContentType: fh.Header.Get("Content-Type"),
		URL:         "memory://" + key,
	}, nil
}

func (m *MemoryUploads) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.objects[key]; !ok {
		return s3.ErrFileNotFound
	}
	delete(m.objects, key)
	return nil
}

// Get returns the stored content of key.
func (m *MemoryUploads) Get(key string) ([]byte, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	data, ok := m.objects[key]
	return data, ok
}

// Len returns the number of stored objects.
func (m *MemoryUploads) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.objects)
}
