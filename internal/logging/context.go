package logging

import "context"

type logDataKey struct{}

// LogDataContextKey is the context key middleware uses to attach a LogData
// through APIs that take the key as a value, such as huma.WithValue.
var LogDataContextKey = logDataKey{}

// WithLogData stores a LogData on the context for downstream handlers.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, logDataKey{}, logData)
}

// GetLogData returns the LogData stored on the context, or nil when no
// middleware attached one. Callers must nil-check before use.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(logDataKey{}).(*LogData)
	return logData
}
