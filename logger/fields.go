package logger

import (
	"time"

	"go.uber.org/zap"
)

// zapField wraps a zap.Field and implements the Field interface.
type zapField struct {
	field zap.Field
}

func (f zapField) Key() string { return f.field.Key }

func (f zapField) Value() any {
	switch {
	case f.field.Interface != nil:
		return f.field.Interface
	case f.field.String != "":
		return f.field.String
	default:
		return f.field.Integer
	}
}

func (f zapField) ZapField() zap.Field { return f.field }

func wrap(field zap.Field) Field { return zapField{field: field} }

// String creates a string field.
func String(key, value string) Field { return wrap(zap.String(key, value)) }

// Int creates an int field.
func Int(key string, value int) Field { return wrap(zap.Int(key, value)) }

// Bool creates a bool field.
func Bool(key string, value bool) Field { return wrap(zap.Bool(key, value)) }

// Duration creates a duration field.
func Duration(key string, value time.Duration) Field { return wrap(zap.Duration(key, value)) }

// Error creates an error field under the "error" key.
func Error(err error) Field { return wrap(zap.Error(err)) }

// Any creates a field from an arbitrary value.
func Any(key string, value any) Field { return wrap(zap.Any(key, value)) }

// Stack captures the current stack trace.
func Stack(key string) Field { return wrap(zap.Stack(key)) }

// HTTP fields

func HTTPMethod(method string) Field { return String("http.method", method) }

func HTTPPath(path string) Field { return String("http.path", path) }

func HTTPStatus(status int) Field { return Int("http.status", status) }

func HTTPUserAgent(ua string) Field { return String("http.user_agent", ua) }

// RequestID creates the request correlation field.
func RequestID(id string) Field { return String("request_id", id) }

// HTTPRequestFields groups the access-log fields for one request.
func HTTPRequestFields(method, path, userAgent string, status int, elapsed time.Duration) []Field {
	return []Field{
		HTTPMethod(method),
		HTTPPath(path),
		HTTPUserAgent(userAgent),
		HTTPStatus(status),
		Duration("duration", elapsed),
	}
}
