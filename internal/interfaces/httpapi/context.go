package httpapi

import "context"

type requestInfoKey struct{}

// requestInfo is attached once by RequestID and read by logging, panic
// recovery and handlers that record who asked.
type requestInfo struct {
	ID       string
	ClientIP string
	Country  string
}

func withRequestInfo(ctx context.Context, info requestInfo) context.Context {
	return context.WithValue(ctx, requestInfoKey{}, info)
}

func requestInfoFromContext(ctx context.Context) requestInfo {
	info, _ := ctx.Value(requestInfoKey{}).(requestInfo)
	return info
}

func requestIDFromContext(ctx context.Context) string {
	return requestInfoFromContext(ctx).ID
}
