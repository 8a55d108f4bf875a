package postgresql

import (
	"context"
	"fmt"

	"github.com/kedai-hq/backoffice-backend-go/internal/domain/holiday"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/database"
)

type holidayRepositoryImpl struct {
	db *database.DB
}

// IsHoliday implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) IsHoliday(ctx context.Context, date string) (bool, error) {
	q := GetQuerier(ctx, h.db)

	var exists bool
	err := q.QueryRow(ctx, `
		SELECT EXISTS (SELECT 1 FROM holidays WHERE holiday_date = $1::date)
	`, date).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check holiday %q: %w", date, err)
	}

	return exists, nil
}

// ListByYear implements holiday.HolidayRepository.
func (h *holidayRepositoryImpl) ListByYear(ctx context.Context, year int) ([]holiday.Holiday, error) {
	q := GetQuerier(ctx, h.db)
	query := `
		SELECT id, to_char(holiday_date, 'YYYY-MM-DD'), name
		FROM holidays
		WHERE EXTRACT(YEAR FROM holiday_date) = $1
		ORDER BY holiday_date
	`

	rows, err := q.Query(ctx, query, year)
	if err != nil {
		return nil, fmt.Errorf("failed to list holidays: %w", err)
	}
	defer rows.Close()

	var holidays []holiday.Holiday
	for rows.Next() {
		var entry holiday.Holiday
		if err := rows.Scan(&entry.ID, &entry.Date, &entry.Name); err != nil {
			return nil, fmt.Errorf("failed to scan holiday: %w", err)
		}
		holidays = append(holidays, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read holidays: %w", err)
	}

	return holidays, nil
}

func NewHolidayRepository(db *database.DB) holiday.HolidayRepository {
	return &holidayRepositoryImpl{db: db}
}
