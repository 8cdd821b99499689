package fancontrol

import "github.com/omen-linux/omenctl/internal/errors"

const (
	ErrProfileUnavailable = errors.ErrorCode("platform_profile_unavailable")
	ErrProfileUnsupported = errors.ErrorCode("profile_not_supported")
	ErrSetProfileFailed   = errors.ErrorCode("set_profile_failed")
	ErrBoostUnavailable   = errors.ErrorCode("boost_unavailable")
	ErrSetBoostFailed     = errors.ErrorCode("set_boost_failed")
)
