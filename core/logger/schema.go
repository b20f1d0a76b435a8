package logger

import "strings"

const (
	// LevelDebug represents the debug severity level name.
	LevelDebug = "DEBUG"
	// LevelInfo represents the info severity level name.
	LevelInfo = "INFO"
	// LevelWarn represents the warning severity level name.
	LevelWarn = "WARN"
	// LevelError represents the error severity level name.
	LevelError = "ERROR"
)

var allowedLevels = map[string]string{
	"debug":   LevelDebug,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"warning": LevelWarn,
	"error":   LevelError,
}

var allowedStatus = map[string]string{
	"ok":           "ok",
	"fail":         "fail",
	"skip":         "skip",
	"retry":        "retry",
	"rate_limited": "rate_limited",
	"cancelled":    "cancelled",
}

var allowedOutcome = map[string]string{
	"ok":        "ok",
	"fail":      "fail",
	"ignored":   "ignored",
	"rejected":  "rejected",
	"cancelled": "cancelled",
}

func normalizeLevel(level string) string {
	if level == "" {
		return LevelInfo
	}
	if mapped, ok := allowedLevels[strings.ToLower(level)]; ok {
		return mapped
	}
	return strings.ToUpper(level)
}

func normalizeStatus(status string) (string, bool) {
	status = strings.ToLower(strings.TrimSpace(status))
	if status == "" {
		return "", false
	}
	if mapped, ok := allowedStatus[status]; ok {
		return mapped, true
	}
	return status, false
}

func normalizeOutcome(outcome string) (string, bool) {
	outcome = strings.ToLower(strings.TrimSpace(outcome))
	if outcome == "" {
		return "", false
	}
	val, ok := allowedOutcome[outcome]
	return val, ok
}

var defaultKeyOrder = []string{
	"ts",
	"level",
	"component",
	"event",
	"status",
	"rid",
	"rid_full",
	"ts_unix_nano",
	"update_id",
	"user_id",
	"chat_id",
	"chat_type",
	"handler",
	"operation",
	"outcome",
	"duration_ms",
	"messages",
	"kb",
	"items",
	"item",
	"item_status",
	"active",
	"workflow",
	"submitted",
	"driver",
	"path",
	"mode",
	"listen",
	"public_url",
	"db",
	"host",
	"port",
	"payload",
	"username",
	"lang",
	"err",
	"err_code",
	"cause",
	"attempts",
	"backoff_ms",
	"rate_limited",
}
