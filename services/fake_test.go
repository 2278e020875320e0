package services

import (
	"context"
	"errors"
	"io"
	"sync"

	"github.com/Dosada05/cricket-tournament/models"
	"github.com/Dosada05/cricket-tournament/repositories"
	"github.com/Dosada05/cricket-tournament/storage"
)

var errStoreDown = errors.New("connection refused")

// FakeNotifier records every published event.
type FakeNotifier struct {
	mu     sync.Mutex
	events []models.ChangeEvent
}

func (f *FakeNotifier) Publish(_ context.Context, event models.ChangeEvent) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.events = append(f.events, event)
}

func (f *FakeNotifier) Events() []models.ChangeEvent {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]models.ChangeEvent(nil), f.events...)
}

// FailingRepository wraps a real repository and fails every call once Down is set.
type FailingRepository[T models.Entity] struct {
	repositories.Repository[T]
	Down bool
}

func (f *FailingRepository[T]) List(ctx context.Context) ([]T, error) {
	if f.Down {
		return nil, errStoreDown
	}
	return f.Repository.List(ctx)
}

func (f *FailingRepository[T]) Create(ctx context.Context, entity T) error {
	if f.Down {
		return errStoreDown
	}
	return f.Repository.Create(ctx, entity)
}

func (f *FailingRepository[T]) Delete(ctx context.Context, id int64) error {
	if f.Down {
		return errStoreDown
	}
	return f.Repository.Delete(ctx, id)
}

func (f *FailingRepository[T]) Count(ctx context.Context, filter map[string]any) (int, error) {
	if f.Down {
		return 0, errStoreDown
	}
	return f.Repository.Count(ctx, filter)
}

// FakeUploader keeps uploaded objects in memory.
type FakeUploader struct {
	Objects map[string][]byte
	Err     error
}

func (f *FakeUploader) Upload(_ context.Context, key string, _ string, reader io.Reader) (*storage.UploadResult, error) {
	if f.Err != nil {
		return nil, f.Err
	}
	body, err := io.ReadAll(reader)
	if err != nil {
		return nil, err
	}
	if f.Objects == nil {
		f.Objects = make(map[string][]byte)
	}
	f.Objects[key] = body
	return &storage.UploadResult{Key: key, Location: f.GetPublicURL(key)}, nil
}

func (f *FakeUploader) GetPublicURL(key string) string {
	return "https://cdn.example.com/" + key
}
