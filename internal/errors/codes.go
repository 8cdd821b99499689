package errors

// Common error codes
const (
	// System errors
	ErrInternal        ErrorCode = "internal_error"
	ErrInvalidArgument ErrorCode = "invalid_argument"
	ErrUnavailable     ErrorCode = "unavailable"

	// Configuration errors
	ErrInvalidConfig   ErrorCode = "invalid_configuration"
	ErrReadConfig      ErrorCode = "read_config_failed"
	ErrBindFlags       ErrorCode = "bind_flags_failed"
	ErrInvalidLogLevel ErrorCode = "invalid_log_level"

	// Sysfs errors
	ErrNodeAbsent       ErrorCode = "sysfs_node_absent"
	ErrPermissionDenied ErrorCode = "sysfs_permission_denied"
	ErrMalformedValue   ErrorCode = "sysfs_malformed_value"
	ErrWriteFailed      ErrorCode = "sysfs_write_failed"
)

// Common error messages
var errorMessages = map[ErrorCode]string{
	ErrInternal:         "Internal error occurred",
	ErrInvalidArgument:  "Invalid argument provided",
	ErrUnavailable:      "Hardware surface unavailable",
	ErrInvalidConfig:    "Invalid configuration",
	ErrReadConfig:       "Failed to read configuration",
	ErrBindFlags:        "Failed to bind flags",
	ErrInvalidLogLevel:  "Invalid log level",
	ErrNodeAbsent:       "Sysfs node does not exist",
	ErrPermissionDenied: "Permission denied accessing sysfs node",
	ErrMalformedValue:   "Malformed value in sysfs node",
	ErrWriteFailed:      "Failed to write sysfs node",
}

// GetErrorMessage returns the message for a given error code
func GetErrorMessage(code ErrorCode) string {
	if msg, ok := errorMessages[code]; ok {
		return msg
	}

	return string(code)
}
