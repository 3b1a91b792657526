// Package sync coordinates schedule mutations against the cached read
// path. A controller tracks in-flight state per operation kind, refuses
// duplicate concurrent submissions of the same kind, and schedules a
// background refetch of the owner's schedule after each success.
package sync

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	gosync "sync"

	"github.com/felixgeelhaar/sangam/internal/schedule/application/commands"
	"github.com/felixgeelhaar/sangam/internal/schedule/application/queries"
)

// ErrMutationInFlight is returned when a mutation of the same kind is
// already pending. The duplicate submission is suppressed, not queued.
var ErrMutationInFlight = errors.New("mutation already in flight")

// OpKind is a logical mutation kind. Different kinds may be in flight
// concurrently; duplicates of the same kind are rejected.
type OpKind string

const (
	OpAdd    OpKind = "add"
	OpUpdate OpKind = "update"
	OpDelete OpKind = "delete"
)

// State is the controller's per-kind submission state.
type State string

const (
	StateIdle    State = "idle"
	StatePending State = "pending"
)

type adder interface {
	Handle(ctx context.Context, cmd commands.AddScheduleItemCommand) (*commands.AddScheduleItemResult, error)
}

type updater interface {
	Handle(ctx context.Context, cmd commands.UpdateScheduleItemCommand) error
}

type remover interface {
	Handle(ctx context.Context, cmd commands.RemoveScheduleItemCommand) error
}

type refresher interface {
	Refresh(ctx context.Context, userID string) ([]queries.ScheduleItemDTO, error)
}

// Controller mediates between callers and the schedule write path.
type Controller struct {
	add     adder
	update  updater
	remove  remover
	refresh refresher
	logger  *slog.Logger

	mu      gosync.Mutex
	pending map[OpKind]bool

	refetches gosync.WaitGroup
}

// NewController creates a new controller.
func NewController(add adder, update updater, remove remover, refresh refresher, logger *slog.Logger) *Controller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Controller{
		add:     add,
		update:  update,
		remove:  remove,
		refresh: refresh,
		logger:  logger,
		pending: make(map[OpKind]bool),
	}
}

// State returns the submission state for an operation kind.
func (c *Controller) State(kind OpKind) State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending[kind] {
		return StatePending
	}
	return StateIdle
}

// SubmitAdd adds an item to the user's schedule. On success the cached
// list has already been invalidated and a background refetch is running.
func (c *Controller) SubmitAdd(ctx context.Context, cmd commands.AddScheduleItemCommand) (*commands.AddScheduleItemResult, error) {
	if err := c.begin(OpAdd); err != nil {
		return nil, err
	}
	defer c.end(OpAdd)

	result, err := c.add.Handle(ctx, cmd)
	if err != nil {
		return nil, err
	}
	c.scheduleRefetch(ctx, cmd.UserID)
	return result, nil
}

// SubmitUpdate replaces an item's fields.
func (c *Controller) SubmitUpdate(ctx context.Context, cmd commands.UpdateScheduleItemCommand) error {
	if err := c.begin(OpUpdate); err != nil {
		return err
	}
	defer c.end(OpUpdate)

	if err := c.update.Handle(ctx, cmd); err != nil {
		return err
	}
	c.scheduleRefetch(ctx, cmd.UserID)
	return nil
}

// SubmitDelete removes an item from the user's schedule.
func (c *Controller) SubmitDelete(ctx context.Context, cmd commands.RemoveScheduleItemCommand) error {
	if err := c.begin(OpDelete); err != nil {
		return err
	}
	defer c.end(OpDelete)

	if err := c.remove.Handle(ctx, cmd); err != nil {
		return err
	}
	c.scheduleRefetch(ctx, cmd.UserID)
	return nil
}

// Wait blocks until all background refetches have finished.
func (c *Controller) Wait() {
	c.refetches.Wait()
}

func (c *Controller) begin(kind OpKind) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.pending[kind] {
		return fmt.Errorf("%w: %s", ErrMutationInFlight, kind)
	}
	c.pending[kind] = true
	return nil
}

func (c *Controller) end(kind OpKind) {
	c.mu.Lock()
	c.pending[kind] = false
	c.mu.Unlock()
}

// scheduleRefetch repopulates the owner's cached list in the background.
// The refetch outlives the caller's context; the generation guard in the
// cache discards its result if another invalidation lands first.
func (c *Controller) scheduleRefetch(ctx context.Context, userID string) {
	refetchCtx := context.WithoutCancel(ctx)
	c.refetches.Add(1)
	go func() {
		defer c.refetches.Done()
		if _, err := c.refresh.Refresh(refetchCtx, userID); err != nil {
			c.logger.Warn("schedule refetch failed", "error", err)
		}
	}()
}
