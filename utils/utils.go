package utils

import (
	"log/slog"
)

// Loge logs a non-nil error at error level with optional key/value context.
func Loge(e error, args ...any) {
	if e != nil {
		slog.Error("", append([]any{"error", e}, args...)...)
	}
}

func Logwe(e error, args ...any) {
	if e != nil {
		slog.Warn("", append([]any{"error", e}, args...)...)
	}
}

func Logde(e error, args ...any) {
	if e != nil {
		slog.Debug("", append([]any{"error", e}, args...)...)
	}
}
