// Package richtext holds the formatted variant of a note body. A Document is
// markdown source; its plain projection keeps one output line per source line
// so checkbox addressing by line index works on both.
package richtext

import (
	"bytes"
	"strings"

	"github.com/sandeepkv93/noted/internal/model"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

type Document struct {
	Source string
}

func FromPlain(content string) Document {
	return Document{Source: content}
}

var parser = goldmark.New().Parser()

// Plain returns the text a reader sees, without markdown syntax.
func (d Document) Plain() string {
	lines := strings.Split(d.Source, "\n")
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = projectLine(line)
	}
	return strings.Join(out, "\n")
}

func projectLine(line string) string {
	for _, marker := range []string{model.CheckboxUnchecked, model.CheckboxChecked, model.BulletMarker} {
		if strings.HasPrefix(line, marker) {
			return marker + projectInline(strings.TrimPrefix(line, marker))
		}
	}
	return projectInline(line)
}

func projectInline(line string) string {
	if strings.TrimSpace(line) == "" {
		return ""
	}
	src := []byte(line)
	root := parser.Parse(text.NewReader(src))
	var b bytes.Buffer
	_ = ast.Walk(root, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch node := n.(type) {
		case *ast.Text:
			b.Write(node.Segment.Value(src))
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(src))
			return ast.WalkSkipChildren, nil
		case *ast.CodeBlock, *ast.FencedCodeBlock, *ast.HTMLBlock:
			segments := n.Lines()
			for i := 0; i < segments.Len(); i++ {
				seg := segments.At(i)
				b.Write(bytes.TrimRight(seg.Value(src), "\n"))
			}
			return ast.WalkSkipChildren, nil
		case *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	return b.String()
}

// ToggleSourceLine flips the first checkbox marker on the given source line.
func ToggleSourceLine(source string, lineIndex int) (string, bool) {
	lines := strings.Split(source, "\n")
	if lineIndex < 0 || lineIndex >= len(lines) {
		return source, false
	}
	line := lines[lineIndex]
	open := strings.Index(line, model.CheckboxUnchecked)
	done := strings.Index(line, model.CheckboxChecked)
	switch {
	case open >= 0 && (done < 0 || open < done):
		lines[lineIndex] = line[:open] + model.CheckboxChecked + line[open+len(model.CheckboxUnchecked):]
	case done >= 0:
		lines[lineIndex] = line[:done] + model.CheckboxUnchecked + line[done+len(model.CheckboxChecked):]
	default:
		return source, false
	}
	return strings.Join(lines, "\n"), true
}
