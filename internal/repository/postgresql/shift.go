package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/kedai-hq/backoffice-backend-go/internal/domain/shift"
	"github.com/kedai-hq/backoffice-backend-go/internal/pkg/database"
)

type shiftRepositoryImpl struct {
	db *database.DB
}

// FetchStaffShifts implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) FetchStaffShifts(ctx context.Context, staffID string) ([]shift.StaffShiftAssignment, error) {
	q := GetQuerier(ctx, s.db)
	query := `
		SELECT ssa.id, ssa.staff_id, ssa.day_of_week, ssa.is_off_day,
			   sd.id, sd.code, sd.name,
			   to_char(sd.start_time, 'HH24:MI'),
			   to_char(sd.end_time, 'HH24:MI')
		FROM staff_shift_assignments ssa
		LEFT JOIN shift_definitions sd ON sd.id = ssa.shift_id
		WHERE ssa.staff_id = $1
		ORDER BY ssa.day_of_week
	`

	rows, err := q.Query(ctx, query, staffID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch staff shifts: %w", err)
	}
	defer rows.Close()

	var assignments []shift.StaffShiftAssignment
	for rows.Next() {
		var assignment shift.StaffShiftAssignment
		var shiftID, code, name, startTime, endTime *string

		if err := rows.Scan(
			&assignment.ID, &assignment.StaffID, &assignment.DayOfWeek, &assignment.IsOffDay,
			&shiftID, &code, &name, &startTime, &endTime,
		); err != nil {
			return nil, fmt.Errorf("failed to scan staff shift: %w", err)
		}

		if shiftID != nil {
			assignment.Shift = &shift.ShiftDefinition{
				ID:        *shiftID,
				Code:      *code,
				Name:      *name,
				StartTime: *startTime,
				EndTime:   *endTime,
			}
		}
		assignments = append(assignments, assignment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read staff shifts: %w", err)
	}

	return assignments, nil
}

// FetchShiftDefinitions implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) FetchShiftDefinitions(ctx context.Context) ([]shift.ShiftDefinition, error) {
	q := GetQuerier(ctx, s.db)
	query := `
		SELECT id, code, name,
			   to_char(start_time, 'HH24:MI'),
			   to_char(end_time, 'HH24:MI')
		FROM shift_definitions
		ORDER BY start_time, code
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch shift definitions: %w", err)
	}
	defer rows.Close()

	var definitions []shift.ShiftDefinition
	for rows.Next() {
		var def shift.ShiftDefinition
		if err := rows.Scan(&def.ID, &def.Code, &def.Name, &def.StartTime, &def.EndTime); err != nil {
			return nil, fmt.Errorf("failed to scan shift definition: %w", err)
		}
		definitions = append(definitions, def)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read shift definitions: %w", err)
	}

	return definitions, nil
}

// ListStaffIDsForDay implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) ListStaffIDsForDay(ctx context.Context, dayOfWeek int) ([]string, error) {
	q := GetQuerier(ctx, s.db)
	query := `
		SELECT staff_id
		FROM staff_shift_assignments
		WHERE day_of_week = $1 AND is_off_day = FALSE AND shift_id IS NOT NULL
		ORDER BY staff_id
	`

	rows, err := q.Query(ctx, query, dayOfWeek)
	if err != nil {
		return nil, fmt.Errorf("failed to list staff for day: %w", err)
	}
	defer rows.Close()

	var staffIDs []string
	for rows.Next() {
		var staffID string
		if err := rows.Scan(&staffID); err != nil {
			return nil, fmt.Errorf("failed to scan staff ID: %w", err)
		}
		staffIDs = append(staffIDs, staffID)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read staff IDs: %w", err)
	}

	return staffIDs, nil
}

// EnsureDefaultDefinitions implements shift.ShiftRepository.
func (s *shiftRepositoryImpl) EnsureDefaultDefinitions(ctx context.Context, defaults []shift.ShiftDefinition) error {
	return WithTransaction(ctx, s.db, func(tx pgx.Tx) error {
		var count int
		if err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM shift_definitions`).Scan(&count); err != nil {
			return fmt.Errorf("failed to count shift definitions: %w", err)
		}
		if count > 0 {
			return nil
		}

		for _, def := range defaults {
			_, err := tx.Exec(ctx, `
				INSERT INTO shift_definitions (id, code, name, start_time, end_time, created_at, updated_at)
				VALUES ($1, $2, $3, $4::time, $5::time, NOW(), NOW())
			`, def.ID, def.Code, def.Name, def.StartTime, def.EndTime)
			if err != nil {
				return fmt.Errorf("failed to seed shift definition %s: %w", def.Code, err)
			}
		}
		return nil
	})
}

func NewShiftRepository(db *database.DB) shift.ShiftRepository {
	return &shiftRepositoryImpl{db: db}
}
