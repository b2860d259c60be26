// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/MKhiriev/go-mempass/models"
)

// Bucket names
var (
	// attachmentsBucket maps attachment ID to the JSON encoded attachment.
	attachmentsBucket = []byte("attachments")
	// entryIndexBucket holds one nested bucket per entry listing the IDs of
	// its attachments.
	entryIndexBucket = []byte("entry_index")
)

// boltAttachmentStorage keeps encrypted attachments in a bbolt file.
type boltAttachmentStorage struct {
	db *bolt.DB
}

// NewBoltAttachmentStorage opens or creates the bbolt file at path.
func NewBoltAttachmentStorage(path string) (AttachmentStorage, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o700); err != nil {
			return nil, fmt.Errorf("failed to create attachments directory: %w", err)
		}
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open attachments database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{attachmentsBucket, entryIndexBucket} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
	if err != nil {
		_ = db.Close()
		return nil, err
	}

	return &boltAttachmentStorage{db: db}, nil
}

func (s *boltAttachmentStorage) PutAttachment(_ context.Context, att models.Attachment) error {
	att.EntryID = models.NormalizeEntryID(att.EntryID.String())

	data, err := json.Marshal(att)
	if err != nil {
		return fmt.Errorf("failed to marshal attachment: %w", err)
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(attachmentsBucket).Put([]byte(att.ID), data); err != nil {
			return err
		}
		idx, err := tx.Bucket(entryIndexBucket).CreateBucketIfNotExists([]byte(att.EntryID))
		if err != nil {
			return err
		}
		return idx.Put([]byte(att.ID), nil)
	})
}

func (s *boltAttachmentStorage) GetAttachment(_ context.Context, id string) (models.Attachment, error) {
	var att models.Attachment
	err := s.db.View(func(tx *bolt.Tx) error {
		data := tx.Bucket(attachmentsBucket).Get([]byte(id))
		if data == nil {
			return ErrAttachmentNotFound
		}
		// data is only valid during the transaction; Unmarshal copies it
		if err := json.Unmarshal(data, &att); err != nil {
			return fmt.Errorf("%w: attachment %s: %w", ErrCorruptState, id, err)
		}
		return nil
	})
	return att, err
}

func (s *boltAttachmentStorage) ListAttachments(_ context.Context, entryID models.EntryID) ([]models.Attachment, error) {
	entryID = models.NormalizeEntryID(entryID.String())
	out := make([]models.Attachment, 0)

	err := s.db.View(func(tx *bolt.Tx) error {
		idx := tx.Bucket(entryIndexBucket).Bucket([]byte(entryID))
		if idx == nil {
			return nil
		}
		atts := tx.Bucket(attachmentsBucket)

		return idx.ForEach(func(k, _ []byte) error {
			data := atts.Get(k)
			if data == nil {
				return nil
			}
			var att models.Attachment
			if err := json.Unmarshal(data, &att); err != nil {
				return fmt.Errorf("%w: attachment %s: %w", ErrCorruptState, k, err)
			}
			out = append(out, att)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].Created.Before(out[j].Created) })
	return out, nil
}

func (s *boltAttachmentStorage) DeleteAttachment(_ context.Context, id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		atts := tx.Bucket(attachmentsBucket)
		data := atts.Get([]byte(id))
		if data == nil {
			return ErrAttachmentNotFound
		}

		var att models.Attachment
		if err := json.Unmarshal(data, &att); err == nil {
			if idx := tx.Bucket(entryIndexBucket).Bucket([]byte(att.EntryID)); idx != nil {
				if err := idx.Delete([]byte(id)); err != nil {
					return err
				}
			}
		}
		return atts.Delete([]byte(id))
	})
}

func (s *boltAttachmentStorage) DeleteEntryAttachments(_ context.Context, entryID models.EntryID) error {
	entryID = models.NormalizeEntryID(entryID.String())

	return s.db.Update(func(tx *bolt.Tx) error {
		index := tx.Bucket(entryIndexBucket)
		idx := index.Bucket([]byte(entryID))
		if idx == nil {
			return nil
		}

		atts := tx.Bucket(attachmentsBucket)
		err := idx.ForEach(func(k, _ []byte) error {
			return atts.Delete(k)
		})
		if err != nil {
			return err
		}
		return index.DeleteBucket([]byte(entryID))
	})
}

func (s *boltAttachmentStorage) Wipe(_ context.Context) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{attachmentsBucket, entryIndexBucket} {
			if err := tx.DeleteBucket(bucket); err != nil {
				return fmt.Errorf("failed to delete bucket %s: %w", bucket, err)
			}
			if _, err := tx.CreateBucket(bucket); err != nil {
				return fmt.Errorf("failed to create bucket %s: %w", bucket, err)
			}
		}
		return nil
	})
}

func (s *boltAttachmentStorage) Close() error {
	return s.db.Close()
}
