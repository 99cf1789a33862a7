// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package annotate

import (
	"fmt"
	"io"

	"github.com/google/uuid"
)

// Attachments holds the contents of attached files for the session,
// under opaque handles of the form "blob:<uuid>".
type Attachments struct {
	blobs map[string]Attachment
}

// Attachment is one stored file.
type Attachment struct {
	Name string
	Data []byte
}

// NewAttachments returns a new empty store.
func NewAttachments() *Attachments {
	return &Attachments{blobs: make(map[string]Attachment)}
}

// Add reads the blob and stores it, returning its handle.
func (at *Attachments) Add(b Blob) (string, error) {
	rc, err := b.Open()
	if err != nil {
		return "", fmt.Errorf("annotate.Attachments Add %q: %w", b.Name(), err)
	}
	defer rc.Close()
	data, err := io.ReadAll(rc)
	if err != nil {
		return "", fmt.Errorf("annotate.Attachments Add %q: %w", b.Name(), err)
	}
	if at.blobs == nil {
		at.blobs = make(map[string]Attachment)
	}
	handle := "blob:" + uuid.NewString()
	at.blobs[handle] = Attachment{Name: b.Name(), Data: data}
	return handle, nil
}

// Get returns the attachment stored under the handle.
func (at *Attachments) Get(handle string) (Attachment, bool) {
	a, ok := at.blobs[handle]
	return a, ok
}

// Len returns the number of stored attachments.
func (at *Attachments) Len() int {
	return len(at.blobs)
}
