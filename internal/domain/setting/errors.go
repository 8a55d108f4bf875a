package setting

import "errors"

var ErrSettingNotFound = errors.New("system setting not found")
