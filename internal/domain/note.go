package domain

import (
	"fmt"
	"time"
)

// DefaultMimeType is used when an attachment's type cannot be determined.
const DefaultMimeType = "application/octet-stream"

type Note struct {
	ID          string
	GoalID      string
	Content     string
	Attachments []AttachmentRef
	Type        NoteType
	Impact      NoteImpact
	CreatedAt   time.Time
}

// AttachmentRef is metadata only. The payload lives in a blob store under ID.
type AttachmentRef struct {
	ID          string
	Name        string
	MimeType    string
	SizeDisplay string
	CreatedAt   time.Time
}

func NewNote(goalID, content string, attachments []AttachmentRef, noteType NoteType, impact NoteImpact, now time.Time) Note {
	if noteType == "" {
		noteType = NoteReflection
	}
	if impact == "" {
		impact = ImpactNeutral
	}
	var atts []AttachmentRef
	if len(attachments) > 0 {
		atts = append([]AttachmentRef(nil), attachments...)
	}
	return Note{
		ID:          NewID(),
		GoalID:      goalID,
		Content:     content,
		Attachments: atts,
		Type:        noteType,
		Impact:      impact,
		CreatedAt:   now.UTC(),
	}
}

// NewAttachmentRef builds metadata for a payload already stored under id.
func NewAttachmentRef(id, name, mimeType string, size int64, now time.Time) AttachmentRef {
	if mimeType == "" {
		mimeType = DefaultMimeType
	}
	return AttachmentRef{
		ID:          id,
		Name:        name,
		MimeType:    mimeType,
		SizeDisplay: FormatSize(size),
		CreatedAt:   now.UTC(),
	}
}

// FormatSize renders a byte count in kilobytes with two decimals.
func FormatSize(size int64) string {
	return fmt.Sprintf("%.2f KB", float64(size)/1024)
}
