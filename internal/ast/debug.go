package ast

import (
	"log/slog"
	"os"
)

// logger emits Debug-level traces of pattern parsing only when
// CLIPAT_DEBUG is set, following the teacher's DEVCMD_DEBUG_PARSER
// convention in cli/internal/parser/parser.go.
var logger = newDebugLogger()

func newDebugLogger() *slog.Logger {
	level := slog.LevelInfo
	if os.Getenv("CLIPAT_DEBUG") != "" {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey {
				return slog.Attr{}
			}
			return a
		},
	}))
}
