package commands

import "fmt"

type Result struct {
	Message string
}

type Handlers struct {
	New    func(NewArgs) (Result, error)
	Delete func() (Result, error)
	Tag    func(TagArgs) (Result, error)
	Untag  func(TagArgs) (Result, error)
	Color  func(ColorArgs) (Result, error)
	Pin    func(SwitchArgs) (Result, error)
	Rich   func(SwitchArgs) (Result, error)
	Mode   func(ModeArgs) (Result, error)
	Copy   func() (Result, error)
}

func missing(t Type) error {
	return &CommandError{Code: ErrCodeHandlerMissing, Message: fmt.Sprintf("%s handler not configured", t)}
}

func Execute(cmd Command, handlers Handlers) (Result, error) {
	switch cmd.Type {
	case TypeNew:
		if handlers.New == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.New(*cmd.New)
	case TypeDelete:
		if handlers.Delete == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Delete()
	case TypeTag:
		if handlers.Tag == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Tag(*cmd.Tag)
	case TypeUntag:
		if handlers.Untag == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Untag(*cmd.Tag)
	case TypeColor:
		if handlers.Color == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Color(*cmd.Color)
	case TypePin:
		if handlers.Pin == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Pin(*cmd.Pin)
	case TypeRich:
		if handlers.Rich == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Rich(*cmd.Rich)
	case TypeMode:
		if handlers.Mode == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Mode(*cmd.Mode)
	case TypeCopy:
		if handlers.Copy == nil {
			return Result{}, missing(cmd.Type)
		}
		return handlers.Copy()
	default:
		return Result{}, &CommandError{Code: ErrCodeUnknownCommand, Message: fmt.Sprintf("unknown command type: %s", cmd.Type)}
	}
}
