// Package memory keeps stored objects in process memory.
package memory

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/dtroode/staffhub-server/internal/model"
)

type object struct {
	data        []byte
	contentType string
}

var _ model.Storage = (*Bucket)(nil)

// Bucket is an in-memory Storage used with the memory database driver.
type Bucket struct {
	mu      sync.RWMutex
	objects map[string]object
}

func NewBucket() *Bucket {
	return &Bucket{objects: make(map[string]object)}
}

func (b *Bucket) Upload(ctx context.Context, key string, reader io.Reader, size int64, contentType string) error {
	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("failed to read object: %w", err)
	}
	if size >= 0 && int64(len(data)) != size {
		return fmt.Errorf("failed to upload object: read %d bytes, expected %d", len(data), size)
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = object{data: data, contentType: contentType}
	return nil
}

func (b *Bucket) Download(ctx context.Context, key string) (io.ReadCloser, model.ObjectInfo, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()

	obj, ok := b.objects[key]
	if !ok {
		return nil, model.ObjectInfo{}, model.ErrNotFound
	}
	info := model.ObjectInfo{Size: int64(len(obj.data)), ContentType: obj.contentType}
	return io.NopCloser(bytes.NewReader(obj.data)), info, nil
}

func (b *Bucket) Delete(ctx context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	return nil
}

func (b *Bucket) Exists(ctx context.Context, key string) (bool, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	_, ok := b.objects[key]
	return ok, nil
}

// Ping always succeeds.
func (b *Bucket) Ping(ctx context.Context) error { return nil }
