package storage

import "time"

// Note is the persisted shape of a note. Fields missing from older files
// decode to their zero values. Only richTextData is omitted when empty.
type Note struct {
	ID           string    `json:"id"`
	Title        string    `json:"title"`
	Content      string    `json:"content"`
	CreatedDate  time.Time `json:"createdDate"`
	RichTextData []byte    `json:"richTextData,omitempty"`
	Tags         []string  `json:"tags"`
	IsPinned     bool      `json:"isPinned"`
	Color        string    `json:"color"`
}
