package repository

import (
	"errors"
	"regexp"
	"testing"
	"time"

	"pixel_bistro/internal/models"

	"github.com/DATA-DOG/go-sqlmock"
)

func newRankingRepo(t *testing.T) (*RankingSQLite, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() {
		if err := mock.ExpectationsWereMet(); err != nil {
			t.Errorf("unmet sqlmock expectations: %v", err)
		}
		_ = db.Close()
	})
	return NewRankingSQLite(db), mock
}

func TestRanking_Record(t *testing.T) {
	t.Run("blank chef becomes anonymous", func(t *testing.T) {
		repo, mock := newRankingRepo(t)
		at := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)
		mock.ExpectExec(regexp.QuoteMeta(insertRankSQL)).
			WithArgs("anonymous", 320, 4, "SOLO", at).
			WillReturnResult(sqlmock.NewResult(9, 1))

		id, err := repo.Record(ctx(t), models.RankEntry{Chef: "  ", Score: 320, Day: 4, Mode: models.ModeSolo, RecordedAt: at})
		if err != nil || id != 9 {
			t.Fatalf("Record() id=%d err=%v", id, err)
		}
	})

	t.Run("exec error", func(t *testing.T) {
		repo, mock := newRankingRepo(t)
		mock.ExpectExec(regexp.QuoteMeta(insertRankSQL)).
			WithArgs("Remy & Linguini", 10, 1, "HOST", sqlmock.AnyArg()).
			WillReturnError(errors.New("readonly"))

		if _, err := repo.Record(ctx(t), models.RankEntry{Chef: "Remy & Linguini", Score: 10, Day: 1, Mode: models.ModeHost}); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestRanking_Top(t *testing.T) {
	repo, mock := newRankingRepo(t)
	at := time.Date(2025, 5, 1, 20, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"id", "chef", "score", "day", "mode", "recorded_at"}).
		AddRow(2, "Colette", 900, 7, "SOLO", at).
		AddRow(1, "Remy", 450, 3, "HOST", at.Add(-time.Hour))

	mock.ExpectQuery(regexp.QuoteMeta(selectTopSQL)).
		WithArgs(6).
		WillReturnRows(rows)

	got, err := repo.Top(ctx(t), 6)
	if err != nil {
		t.Fatalf("Top() error = %v", err)
	}
	if len(got) != 2 || got[0].Chef != "Colette" || got[1].Mode != models.ModeHost {
		t.Fatalf("unexpected ranking: %+v", got)
	}
}

func TestRanking_TopQueryError(t *testing.T) {
	repo, mock := newRankingRepo(t)
	mock.ExpectQuery(regexp.QuoteMeta(selectTopSQL)).
		WithArgs(3).
		WillReturnError(errors.New("gone"))

	if _, err := repo.Top(ctx(t), 3); err == nil {
		t.Fatalf("expected error")
	}
}
