package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"pixel_bistro/internal/models"
)

type SaveSQLite struct {
	db *sql.DB
}

func NewSaveSQLite(db *sql.DB) *SaveSQLite {
	return &SaveSQLite{db: db}
}

const (
	saveSlotRowID = 1

	upsertSaveSQL = `
		INSERT INTO save_game (id, money, hygiene, score, day, daily_target, game_mode, saved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			money=excluded.money,
			hygiene=excluded.hygiene,
			score=excluded.score,
			day=excluded.day,
			daily_target=excluded.daily_target,
			game_mode=excluded.game_mode,
			saved_at=excluded.saved_at
	`

	selectSaveSQL = `
		SELECT money, hygiene, score, day, daily_target, game_mode, saved_at
		FROM save_game WHERE id=?
	`

	deleteSaveSQL = `DELETE FROM save_game WHERE id=?`
)

// Save writes the slot. Only solo runs are saved, so the mode is forced.
func (r *SaveSQLite) Save(ctx context.Context, s models.SaveData) error {
	ts := s.SavedAt
	if ts.IsZero() {
		ts = time.Now().UTC()
	} else {
		ts = ts.UTC()
	}

	_, err := r.db.ExecContext(ctx, upsertSaveSQL,
		saveSlotRowID,
		s.Money,
		s.Hygiene,
		s.Score,
		s.Day,
		s.DailyTarget,
		string(models.ModeSolo),
		ts,
	)
	if err != nil {
		return fmt.Errorf("save game: %w", err)
	}
	return nil
}

// Load reads the slot. The bool is false when nothing is saved.
func (r *SaveSQLite) Load(ctx context.Context) (models.SaveData, bool, error) {
	var (
		s    models.SaveData
		mode string
	)
	err := r.db.QueryRowContext(ctx, selectSaveSQL, saveSlotRowID).Scan(
		&s.Money,
		&s.Hygiene,
		&s.Score,
		&s.Day,
		&s.DailyTarget,
		&mode,
		&s.SavedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.SaveData{}, false, nil
		}
		return models.SaveData{}, false, fmt.Errorf("load game: %w", err)
	}
	s.GameMode = models.GameMode(mode)
	s.SavedAt = s.SavedAt.UTC()
	return s, true, nil
}

// Clear removes the slot. Clearing an empty slot is not an error.
func (r *SaveSQLite) Clear(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, deleteSaveSQL, saveSlotRowID); err != nil {
		return fmt.Errorf("clear save: %w", err)
	}
	return nil
}
