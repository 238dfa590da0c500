package richtext

import (
	"bytes"
	"errors"
	"unicode/utf8"
)

var ErrInvalidDocument = errors.New("richtext: invalid document data")

// Codec converts documents to and from the opaque blob stored on a note.
type Codec interface {
	Encode(Document) ([]byte, error)
	Decode([]byte) (Document, error)
}

// MarkdownCodec stores the markdown source as UTF-8 behind a format header, so
// even an empty document produces a non-empty blob.
type MarkdownCodec struct{}

var markdownHeader = []byte("noted-markdown/1\n")

func (MarkdownCodec) Encode(doc Document) ([]byte, error) {
	if !utf8.ValidString(doc.Source) {
		return nil, ErrInvalidDocument
	}
	out := make([]byte, 0, len(markdownHeader)+len(doc.Source))
	out = append(out, markdownHeader...)
	return append(out, doc.Source...), nil
}

// Decode also accepts headerless blobs and reads them as raw markdown.
func (MarkdownCodec) Decode(data []byte) (Document, error) {
	if !utf8.Valid(data) {
		return Document{}, ErrInvalidDocument
	}
	return Document{Source: string(bytes.TrimPrefix(data, markdownHeader))}, nil
}
