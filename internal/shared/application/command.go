package application

import "context"

// Command mutates system state. Implementations name themselves for
// logging and event metadata.
type Command interface {
	CommandName() string
}

// CommandHandler handles one command type.
type CommandHandler[C Command] interface {
	Handle(ctx context.Context, cmd C) error
}
