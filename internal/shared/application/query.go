package application

import "context"

// Query reads system state without mutating it. Implementations name
// themselves for logging and cache keys.
type Query interface {
	QueryName() string
}

// QueryHandler handles one query type and produces its read model.
type QueryHandler[Q Query, R any] interface {
	Handle(ctx context.Context, query Q) (R, error)
}
