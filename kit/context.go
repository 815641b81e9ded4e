package kit

import "context"

type contextKey string

const (
	ToolNameKey  contextKey = "kit_tool_name"
	RequestIDKey contextKey = "kit_request_id"
	TransportKey contextKey = "kit_transport" // "stdio", "inmemory"
)

func WithToolName(ctx context.Context, name string) context.Context {
	return context.WithValue(ctx, ToolNameKey, name)
}
func GetToolName(ctx context.Context) string {
	v, _ := ctx.Value(ToolNameKey).(string)
	return v
}

func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, RequestIDKey, id)
}
func GetRequestID(ctx context.Context) string {
	v, _ := ctx.Value(RequestIDKey).(string)
	return v
}

func WithTransport(ctx context.Context, t string) context.Context {
	return context.WithValue(ctx, TransportKey, t)
}
func GetTransport(ctx context.Context) string {
	if v, ok := ctx.Value(TransportKey).(string); ok {
		return v
	}
	return "stdio"
}
