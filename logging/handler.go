package logging

import (
	"context"
	"log/slog"
)

type puzzleKey struct{}

// WithPuzzle returns a context whose log records carry a "puzzle" attribute.
func WithPuzzle(ctx context.Context, label string) context.Context {
	return context.WithValue(ctx, puzzleKey{}, label)
}

// PuzzleFrom returns the label stored by WithPuzzle.
func PuzzleFrom(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(puzzleKey{}).(string)
	return v, ok
}

// Handler adds context-carried attributes to every record.
type Handler struct {
	slog.Handler
}

// Handle adds the puzzle label from ctx, if any, and forwards the record.
func (h *Handler) Handle(ctx context.Context, record slog.Record) error {
	if label, ok := PuzzleFrom(ctx); ok {
		record.Add("puzzle", label)
	}
	return h.Handler.Handle(ctx, record)
}

// WithAttrs returns a Handler whose inner handler carries attrs.
func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Handler{Handler: h.Handler.WithAttrs(attrs)}
}

// WithGroup returns a Handler whose inner handler opens group name.
func (h *Handler) WithGroup(name string) slog.Handler {
	return &Handler{Handler: h.Handler.WithGroup(name)}
}
