package models

import "time"

// Attachment is a file sealed under the session key and linked to an entry.
// Blob holds the encrypted file contents; Name and Size are stored in the
// clear.
type Attachment struct {
	ID      string         `json:"id"`
	EntryID EntryID        `json:"entryId"`
	Name    string         `json:"name"`
	Size    int            `json:"size"`
	Created time.Time      `json:"created"`
	Blob    EncryptedField `json:"blob"`
}
