package logger

import (
	"time"

	"go.uber.org/zap"
)

// Field type alias for convenience
type Field = zap.Field

// String constructs a field with the given key and value
func String(key string, val string) Field {
	return zap.String(key, val)
}

// Int constructs a field with the given key and value
func Int(key string, val int) Field {
	return zap.Int(key, val)
}

// Error constructs a field that lazily stores err.Error() under the key "error"
func Error(err error) Field {
	return zap.Error(err)
}

// Call fields

// Operation constructs a field for the service operation name
func Operation(name string) Field {
	return String("operation", name)
}

// RequestID constructs a field for the service-assigned request id
func RequestID(id string) Field {
	return String("request_id", id)
}

// StatusCode constructs a field for the HTTP status code of a response
func StatusCode(code int) Field {
	return Int("status_code", code)
}

// Latency constructs a field for call latency
func Latency(d time.Duration) Field {
	return zap.Duration("latency", d)
}

// BodySize constructs a field for payload size in bytes
func BodySize(size int) Field {
	return Int("body_size", size)
}

// Endpoint constructs a field for the service endpoint URL
func Endpoint(url string) Field {
	return String("endpoint", url)
}

// Region constructs a field for the service region
func Region(region string) Field {
	return String("region", region)
}

// ErrorKind constructs a field for the kind of a service fault
func ErrorKind(kind string) Field {
	return String("error_kind", kind)
}

// Component constructs a field for component name
func Component(name string) Field {
	return String("component", name)
}

// Resource fields

// Repository constructs a field for repository name
func Repository(name string) Field {
	return String("repository", name)
}

// Branch constructs a field for branch name
func Branch(name string) Field {
	return String("branch", name)
}

// Commit constructs a field for commit id
func Commit(id string) Field {
	return String("commit", id)
}

// PullRequest constructs a field for pull request id
func PullRequest(id string) Field {
	return String("pull_request", id)
}
