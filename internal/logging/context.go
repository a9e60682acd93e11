package logging

import "context"

type contextKey struct{}

// WithLogData attaches a LogData to the context so handlers deeper in the
// request can add timings and fields to the final access log line.
func WithLogData(ctx context.Context, logData *LogData) context.Context {
	return context.WithValue(ctx, contextKey{}, logData)
}

// GetLogData returns the LogData attached to the context, or nil when the
// request did not pass through the logging middleware.
func GetLogData(ctx context.Context) *LogData {
	logData, _ := ctx.Value(contextKey{}).(*LogData)
	return logData
}
