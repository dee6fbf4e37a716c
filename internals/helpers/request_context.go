package helper

type ctxKey string

// RequestIDKey: key context.Context untuk request id (diteruskan ke solver).
const RequestIDKey ctxKey = "request_id"
