package logger

// Accepted LOG_FORMAT values
const (
	FormatJSON = "json"
	FormatText = "text"
)

// Attribute keys stamped on every record
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)

// levelAliases are accepted on top of the names slog parses itself
var levelAliases = map[string]string{
	"warning": "warn",
	"err":     "error",
	"trace":   "debug",
}
