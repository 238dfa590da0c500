package store

import (
	"github.com/sandeepkv93/noted/internal/model"
	"github.com/sandeepkv93/noted/internal/storage"
)

func fromRecord(rec storage.Note) model.Note {
	n := model.Note{
		ID:        rec.ID,
		Title:     rec.Title,
		Content:   rec.Content,
		CreatedAt: rec.CreatedDate,
		Tags:      rec.Tags,
		Pinned:    rec.IsPinned,
		Color:     model.Color(rec.Color),
	}
	if len(rec.RichTextData) > 0 {
		n.RichText = rec.RichTextData
	}
	return n
}

func toRecord(n model.Note) storage.Note {
	rec := storage.Note{
		ID:           n.ID,
		Title:        n.Title,
		Content:      n.Content,
		CreatedDate:  n.CreatedAt,
		RichTextData: n.RichText,
		Tags:         n.Tags,
		IsPinned:     n.Pinned,
		Color:        string(n.Color),
	}
	return rec
}
