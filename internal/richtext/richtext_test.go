package richtext

import (
	"errors"
	"strings"
	"testing"
)

func TestPlainKeepsLineCount(t *testing.T) {
	doc := Document{Source: "# Shopping\n☐ **fresh** milk\n\n- item with `code`\n☑ done _today_"}
	want := "Shopping\n☐ fresh milk\n\nitem with code\n☑ done today"
	if got := doc.Plain(); got != want {
		t.Fatalf("unexpected plain text:\n got %q\nwant %q", got, want)
	}
}

func TestPlainKeepsMarkerSpacing(t *testing.T) {
	doc := Document{Source: "☐ \n• "}
	if got := doc.Plain(); got != "☐ \n• " {
		t.Fatalf("expected marker spacing kept, got %q", got)
	}
}

func TestToggleSourceLine(t *testing.T) {
	src := "intro\n- ☐ **bold** task\nplain"
	got, ok := ToggleSourceLine(src, 1)
	if !ok || got != "intro\n- ☑ **bold** task\nplain" {
		t.Fatalf("unexpected toggle: ok=%v %q", ok, got)
	}

	back, ok := ToggleSourceLine(got, 1)
	if !ok || back != src {
		t.Fatalf("expected toggle back to original, ok=%v %q", ok, back)
	}

	if _, ok := ToggleSourceLine(src, 2); ok {
		t.Fatal("line without a checkbox should not toggle")
	}
	if _, ok := ToggleSourceLine(src, 9); ok {
		t.Fatal("out of range line should not toggle")
	}
}

func TestMarkdownCodecRoundTrip(t *testing.T) {
	var codec Codec = MarkdownCodec{}
	for _, src := range []string{"", "☐ a\n*b*", "\n\n"} {
		data, err := codec.Encode(Document{Source: src})
		if err != nil {
			t.Fatalf("encode %q: %v", src, err)
		}
		if len(data) == 0 {
			t.Fatalf("encode %q produced no bytes", src)
		}

		doc, err := codec.Decode(data)
		if err != nil {
			t.Fatalf("decode %q: %v", src, err)
		}
		if doc.Source != src {
			t.Fatalf("round trip changed source: %q -> %q", src, doc.Source)
		}
	}
}

func TestMarkdownCodecRejectsInvalidUTF8(t *testing.T) {
	if _, err := (MarkdownCodec{}).Decode([]byte{0xff, 0xfe}); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument on decode, got %v", err)
	}
	if _, err := (MarkdownCodec{}).Encode(Document{Source: string([]byte{0xff})}); !errors.Is(err, ErrInvalidDocument) {
		t.Fatalf("expected ErrInvalidDocument on encode, got %v", err)
	}
}

func TestDecodeHeaderlessBlob(t *testing.T) {
	doc, err := MarkdownCodec{}.Decode([]byte("**hi**"))
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if got := doc.Plain(); got != "hi" {
		t.Fatalf("unexpected plain text %q", got)
	}
}

func TestRenderFallsBackOnEmpty(t *testing.T) {
	if got := Render(Document{Source: "  "}, "dark", 40); got != "" {
		t.Fatalf("expected empty render, got %q", got)
	}
	if got := Render(Document{Source: "hello"}, "notty", 40); !strings.Contains(got, "hello") {
		t.Fatalf("expected rendered text to contain hello, got %q", got)
	}
}
