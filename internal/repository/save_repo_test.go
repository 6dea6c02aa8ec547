package repository_test

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"pixel_bistro/internal/models"
	"pixel_bistro/internal/repository"

	"github.com/DATA-DOG/go-sqlmock"
)

func newSaveRepo(t *testing.T) (*repository.SaveSQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New(): %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return repository.NewSaveSQLite(db), mock
}

func TestSaveSQLite_Save_ForcesSoloAndStampsUTC(t *testing.T) {
	repo, mock := newSaveRepo(t)

	isUTCRecent := sqlmockArgumentFunc(func(v driver.Value) bool {
		tm, ok := v.(time.Time)
		if !ok || tm.Location() != time.UTC {
			return false
		}
		now := time.Now().UTC()
		return !tm.Before(now.Add(-5*time.Second)) && !tm.After(now.Add(5*time.Second))
	})

	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO save_game")).
		WithArgs(1, 62, 80.5, 32, 2, 240, "SOLO", isUTCRecent).
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Save(context.Background(), models.SaveData{
		Money: 62, Hygiene: 80.5, Score: 32, Day: 2, DailyTarget: 240, GameMode: models.ModeHost,
	})
	if err != nil {
		t.Fatalf("Save() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestSaveSQLite_Save_ExecErrorIsWrapped(t *testing.T) {
	repo, mock := newSaveRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("INSERT INTO save_game")).
		WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), models.SaveData{Day: 1})
	if err == nil || !regexp.MustCompile("save game: disk full").MatchString(err.Error()) {
		t.Fatalf("expected wrapped error, got %v", err)
	}
}

func TestSaveSQLite_Load(t *testing.T) {
	cols := []string{"money", "hygiene", "score", "day", "daily_target", "game_mode", "saved_at"}
	saved := time.Date(2025, 3, 1, 9, 0, 0, 0, time.FixedZone("X", 3600))

	t.Run("empty slot", func(t *testing.T) {
		repo, mock := newSaveRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT money, hygiene, score, day, daily_target, game_mode, saved_at")).
			WithArgs(1).
			WillReturnError(sql.ErrNoRows)

		got, ok, err := repo.Load(context.Background())
		if err != nil || ok {
			t.Fatalf("expected no save, got ok=%v err=%v", ok, err)
		}
		if got != (models.SaveData{}) {
			t.Fatalf("expected zero value, got %+v", got)
		}
	})

	t.Run("present", func(t *testing.T) {
		repo, mock := newSaveRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT money, hygiene, score, day, daily_target, game_mode, saved_at")).
			WithArgs(1).
			WillReturnRows(sqlmock.NewRows(cols).AddRow(62, 80.5, 32, 2, 240, "SOLO", saved))

		got, ok, err := repo.Load(context.Background())
		if err != nil || !ok {
			t.Fatalf("Load() ok=%v err=%v", ok, err)
		}
		if got.Money != 62 || got.Hygiene != 80.5 || got.Score != 32 || got.Day != 2 || got.DailyTarget != 240 || got.GameMode != models.ModeSolo {
			t.Fatalf("unexpected save: %+v", got)
		}
		if got.SavedAt.Location() != time.UTC || !got.SavedAt.Equal(saved) {
			t.Fatalf("saved_at not normalised to UTC: %v", got.SavedAt)
		}
	})

	t.Run("query error", func(t *testing.T) {
		repo, mock := newSaveRepo(t)
		mock.ExpectQuery(regexp.QuoteMeta("SELECT money")).
			WillReturnError(errors.New("locked"))

		if _, ok, err := repo.Load(context.Background()); err == nil || ok {
			t.Fatalf("expected error, got ok=%v err=%v", ok, err)
		}
	})
}

func TestSaveSQLite_Clear(t *testing.T) {
	repo, mock := newSaveRepo(t)
	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM save_game WHERE id=?")).
		WithArgs(1).
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Clear(context.Background()); err != nil {
		t.Fatalf("Clear() error = %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

// Helpers

type sqlmockArgumentFunc func(v driver.Value) bool

func (f sqlmockArgumentFunc) Match(v driver.Value) bool {
	return f(v)
}
