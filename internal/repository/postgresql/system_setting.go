package postgresql

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/setting"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/database"
)

type systemSettingRepositoryImpl struct {
	db *database.DB
}

// GetSystemSetting implements setting.SystemSettingRepository.
func (s *systemSettingRepositoryImpl) GetSystemSetting(ctx context.Context, key string) (string, error) {
	q := GetQuerier(ctx, s.db)

	var value string
	err := q.QueryRow(ctx, `SELECT value FROM system_settings WHERE key = $1`, key).Scan(&value)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", setting.ErrSettingNotFound
		}
		return "", fmt.Errorf("failed to get system setting %q: %w", key, err)
	}

	return value, nil
}

func NewSystemSettingRepository(db *database.DB) setting.SystemSettingRepository {
	return &systemSettingRepositoryImpl{db: db}
}
