package store

import (
	"context"
	"sort"
	"sync"

	"github.com/MKhiriev/go-mempass/models"
)

type memoryAttachmentStorage struct {
	mu    sync.RWMutex
	items map[string]models.Attachment
}

// NewMemoryAttachmentStorage returns an [AttachmentStorage] that lives only
// as long as the process.
func NewMemoryAttachmentStorage() AttachmentStorage {
	return &memoryAttachmentStorage{items: make(map[string]models.Attachment)}
}

func (s *memoryAttachmentStorage) PutAttachment(_ context.Context, att models.Attachment) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	att.EntryID = models.NormalizeEntryID(att.EntryID.String())
	s.items[att.ID] = att
	return nil
}

func (s *memoryAttachmentStorage) GetAttachment(_ context.Context, id string) (models.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	att, ok := s.items[id]
	if !ok {
		return models.Attachment{}, ErrAttachmentNotFound
	}
	return att, nil
}

func (s *memoryAttachmentStorage) ListAttachments(_ context.Context, entryID models.EntryID) ([]models.Attachment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	entryID = models.NormalizeEntryID(entryID.String())
	out := make([]models.Attachment, 0)
	for _, att := range s.items {
		if att.EntryID == entryID {
			out = append(out, att)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out, nil
}

func (s *memoryAttachmentStorage) DeleteAttachment(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.items[id]; !ok {
		return ErrAttachmentNotFound
	}
	delete(s.items, id)
	return nil
}

func (s *memoryAttachmentStorage) DeleteEntryAttachments(_ context.Context, entryID models.EntryID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	entryID = models.NormalizeEntryID(entryID.String())
	for id, att := range s.items {
		if att.EntryID == entryID {
			delete(s.items, id)
		}
	}
	return nil
}

func (s *memoryAttachmentStorage) Wipe(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.items = make(map[string]models.Attachment)
	return nil
}

func (s *memoryAttachmentStorage) Close() error { return nil }
