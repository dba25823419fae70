package settings

import "errors"

var (
	ErrSettingsNotFound = errors.New("attendance settings have not been configured")
)
