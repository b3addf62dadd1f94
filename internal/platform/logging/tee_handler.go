package logging

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
)

// teeHandler writes each record to the terminal handler and to the rolling
// JSON file. The two sinks may run at different levels.
type teeHandler struct {
	terminal slog.Handler
	file     slog.Handler
}

func newTeeHandler(terminal, file slog.Handler) *teeHandler {
	return &teeHandler{terminal: terminal, file: file}
}

func (t *teeHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return t.terminal.Enabled(ctx, level) || t.file.Enabled(ctx, level)
}

// Handle writes r to both sinks even if one fails; errors are joined and
// labelled by sink.
func (t *teeHandler) Handle(ctx context.Context, r slog.Record) error { //nolint:gocritic // slog.Handler takes Record by value
	var termErr, fileErr error

	if t.terminal.Enabled(ctx, r.Level) {
		if err := t.terminal.Handle(ctx, r.Clone()); err != nil {
			termErr = fmt.Errorf("terminal log: %w", err)
		}
	}

	if t.file.Enabled(ctx, r.Level) {
		if err := t.file.Handle(ctx, r); err != nil {
			fileErr = fmt.Errorf("log file: %w", err)
		}
	}

	return errors.Join(termErr, fileErr)
}

func (t *teeHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	return newTeeHandler(t.terminal.WithAttrs(attrs), t.file.WithAttrs(attrs))
}

func (t *teeHandler) WithGroup(name string) slog.Handler {
	return newTeeHandler(t.terminal.WithGroup(name), t.file.WithGroup(name))
}
