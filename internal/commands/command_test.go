package commands

import (
	"errors"
	"testing"
)

func TestParseSupportedCommands(t *testing.T) {
	cases := []struct {
		in       string
		typeWant Type
	}{
		{"/new buy milk", TypeNew},
		{"/new", TypeNew},
		{"delete", TypeDelete},
		{"tag #work", TypeTag},
		{"/untag work", TypeUntag},
		{"color Green", TypeColor},
		{"pin", TypePin},
		{"rich off", TypeRich},
		{"mode task", TypeMode},
		{"/copy", TypeCopy},
	}

	for _, tc := range cases {
		cmd, err := Parse(tc.in)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.in, err)
		}
		if cmd.Type != tc.typeWant {
			t.Fatalf("parse %q type = %s, want %s", tc.in, cmd.Type, tc.typeWant)
		}
	}
}

func TestParseArguments(t *testing.T) {
	cmd, err := Parse("tag #work")
	if err != nil || cmd.Tag.Tag != "work" {
		t.Fatalf("unexpected tag parse: %+v (%v)", cmd.Tag, err)
	}
	cmd, err = Parse("color Green")
	if err != nil || cmd.Color.Color != "green" {
		t.Fatalf("unexpected color parse: %+v (%v)", cmd.Color, err)
	}
	cmd, err = Parse("pin")
	if err != nil || !cmd.Pin.Toggle {
		t.Fatalf("bare pin should toggle: %+v (%v)", cmd.Pin, err)
	}
	cmd, err = Parse("rich on")
	if err != nil || cmd.Rich.Toggle || !cmd.Rich.On {
		t.Fatalf("unexpected rich parse: %+v (%v)", cmd.Rich, err)
	}
	cmd, err = Parse("/new  call   mom ")
	if err != nil || cmd.New.Text != "call mom" {
		t.Fatalf("unexpected new parse: %+v (%v)", cmd.New, err)
	}
}

func TestParseErrors(t *testing.T) {
	cases := map[string]ErrorCode{
		"":            ErrCodeEmptyInput,
		"/":           ErrCodeEmptyInput,
		"/unknown x":  ErrCodeUnknownCommand,
		"tag":         ErrCodeInvalidArgument,
		"color":       ErrCodeInvalidArgument,
		"pin maybe":   ErrCodeInvalidArgument,
		"mode":        ErrCodeInvalidArgument,
		"mode a b":    ErrCodeInvalidArgument,
		"color red x": ErrCodeInvalidArgument,
	}
	for in, code := range cases {
		_, err := Parse(in)
		var ce *CommandError
		if !errors.As(err, &ce) || ce.Code != code {
			t.Fatalf("parse %q: expected %s, got %v", in, code, err)
		}
	}
}

func TestExecuteDispatch(t *testing.T) {
	cmd, err := Parse("/tag errands")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}

	called := false
	res, err := Execute(cmd, Handlers{
		Tag: func(a TagArgs) (Result, error) {
			called = true
			if a.Tag != "errands" {
				t.Fatalf("unexpected tag: %q", a.Tag)
			}
			return Result{Message: "ok"}, nil
		},
	})
	if err != nil {
		t.Fatalf("execute failed: %v", err)
	}
	if !called || res.Message != "ok" {
		t.Fatalf("dispatch failed, called=%v res=%+v", called, res)
	}
}

func TestExecuteMissingHandler(t *testing.T) {
	cmd, err := Parse("delete")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	_, err = Execute(cmd, Handlers{})
	if err == nil {
		t.Fatal("expected error")
	}
	var ce *CommandError
	if !errors.As(err, &ce) || ce.Code != ErrCodeHandlerMissing {
		t.Fatalf("expected missing handler error, got %v", err)
	}
}
