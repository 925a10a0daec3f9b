package logger

import "log/slog"

// Error creates an attribute for a single error under the key "error".
// If err is nil, it returns an empty Attr.
func Error(err error) slog.Attr {
	if err == nil {
		return slog.Attr{}
	}
	return slog.Any("error", err)
}

// Role records the acting role code under the key "role".
func Role(code string) slog.Attr {
	return slog.String("role", code)
}

// Check records a check correlation identifier under the key "check_id".
// If id is nil, it returns an empty Attr.
func Check(id any) slog.Attr {
	if id == nil {
		return slog.Attr{}
	}
	return slog.Any("check_id", id)
}

// Status records a verdict status under the key "status".
func Status(status string) slog.Attr {
	return slog.String("status", status)
}
