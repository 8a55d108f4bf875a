package setting

import "context"

// SystemSettingRepository defines data access to the key-value settings
// store. A missing key is reported as ErrSettingNotFound; callers decide
// what the fallback value is.
type SystemSettingRepository interface {
	GetSystemSetting(ctx context.Context, key string) (string, error)
}
