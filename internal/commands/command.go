package commands

import (
	"fmt"
	"strings"
)

type Type string

const (
	TypeNew    Type = "new"
	TypeDelete Type = "delete"
	TypeTag    Type = "tag"
	TypeUntag  Type = "untag"
	TypeColor  Type = "color"
	TypePin    Type = "pin"
	TypeMode   Type = "mode"
	TypeRich   Type = "rich"
	TypeCopy   Type = "copy"
)

type ErrorCode string

const (
	ErrCodeEmptyInput      ErrorCode = "empty_input"
	ErrCodeUnknownCommand  ErrorCode = "unknown_command"
	ErrCodeInvalidArgument ErrorCode = "invalid_argument"
	ErrCodeHandlerMissing  ErrorCode = "handler_missing"
)

type CommandError struct {
	Code    ErrorCode
	Message string
}

func (e *CommandError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

type NewArgs struct {
	Text string
}

type TagArgs struct {
	Tag string
}

type ColorArgs struct {
	Color string
}

// Toggle is set when no explicit on/off was given.
type SwitchArgs struct {
	On     bool
	Toggle bool
}

type ModeArgs struct {
	Mode string
}

type Command struct {
	Type  Type
	Raw   string
	New   *NewArgs
	Tag   *TagArgs
	Color *ColorArgs
	Pin   *SwitchArgs
	Rich  *SwitchArgs
	Mode  *ModeArgs
}

func Parse(input string) (Command, error) {
	raw := strings.TrimSpace(input)
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}
	if strings.HasPrefix(raw, "/") {
		raw = strings.TrimSpace(strings.TrimPrefix(raw, "/"))
	}
	if raw == "" {
		return Command{}, &CommandError{Code: ErrCodeEmptyInput, Message: "command is empty"}
	}

	parts := strings.Fields(raw)
	head := strings.ToLower(parts[0])
	args := parts[1:]

	switch Type(head) {
	case TypeNew:
		return Command{Type: TypeNew, Raw: input, New: &NewArgs{Text: strings.Join(args, " ")}}, nil
	case TypeDelete, TypeCopy:
		return Command{Type: Type(head), Raw: input}, nil
	case TypeTag, TypeUntag:
		return parseTag(input, Type(head), args)
	case TypeColor:
		return parseColor(input, args)
	case TypePin, TypeRich:
		return parseSwitch(input, Type(head), args)
	case TypeMode:
		return parseMode(input, args)
	default:
		return Command{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unsupported command: %s", head)}
	}
}

func parseTag(raw string, typ Type, args []string) (Command, error) {
	tag := strings.TrimSpace(strings.Join(args, " "))
	if tag == "" {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s requires a tag", typ)}
	}
	return Command{Type: typ, Raw: raw, Tag: &TagArgs{Tag: strings.TrimPrefix(tag, "#")}}, nil
}

func parseColor(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "color requires one palette key"}
	}
	return Command{Type: TypeColor, Raw: raw, Color: &ColorArgs{Color: strings.ToLower(args[0])}}, nil
}

func parseSwitch(raw string, typ Type, args []string) (Command, error) {
	sw := SwitchArgs{Toggle: true}
	if len(args) > 0 {
		switch strings.ToLower(args[0]) {
		case "on", "yes", "true":
			sw = SwitchArgs{On: true}
		case "off", "no", "false":
			sw = SwitchArgs{On: false}
		default:
			return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: fmt.Sprintf("%s accepts on or off", typ)}
		}
	}
	cmd := Command{Type: typ, Raw: raw}
	if typ == TypePin {
		cmd.Pin = &sw
	} else {
		cmd.Rich = &sw
	}
	return cmd, nil
}

func parseMode(raw string, args []string) (Command, error) {
	if len(args) != 1 {
		return Command{}, &CommandError{Code: ErrCodeInvalidArgument, Message: "mode requires bullet, task or none"}
	}
	return Command{Type: TypeMode, Raw: raw, Mode: &ModeArgs{Mode: strings.ToLower(args[0])}}, nil
}
