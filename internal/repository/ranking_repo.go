package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"pixel_bistro/internal/models"
)

type RankingSQLite struct {
	db *sql.DB
}

func NewRankingSQLite(db *sql.DB) *RankingSQLite { return &RankingSQLite{db: db} }

const (
	insertRankSQL = `INSERT INTO ranking (chef, score, day, mode, recorded_at) VALUES (?, ?, ?, ?, ?)`
	selectTopSQL  = `SELECT id, chef, score, day, mode, recorded_at FROM ranking ORDER BY score DESC, recorded_at ASC LIMIT ?`
)

// Record stores a finished run and returns its id.
func (r *RankingSQLite) Record(ctx context.Context, e models.RankEntry) (int, error) {
	chef := strings.TrimSpace(e.Chef)
	if chef == "" {
		chef = "anonymous"
	}
	ts := e.RecordedAt
	if ts.IsZero() {
		ts = time.Now()
	}

	res, err := r.db.ExecContext(ctx, insertRankSQL, chef, e.Score, e.Day, string(e.Mode), ts.UTC())
	if err != nil {
		return 0, fmt.Errorf("record ranking for %q: %w", chef, err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("get last insert id for ranking: %w", err)
	}
	return int(id), nil
}

// Top returns the best runs by score; ties go to the earlier run.
func (r *RankingSQLite) Top(ctx context.Context, limit int) ([]models.RankEntry, error) {
	rows, err := r.db.QueryContext(ctx, selectTopSQL, limit)
	if err != nil {
		return nil, fmt.Errorf("select ranking: %w", err)
	}
	defer rows.Close()

	out := make([]models.RankEntry, 0, max(limit, 0))
	for rows.Next() {
		var (
			e    models.RankEntry
			mode string
		)
		if err := rows.Scan(&e.ID, &e.Chef, &e.Score, &e.Day, &mode, &e.RecordedAt); err != nil {
			return nil, fmt.Errorf("scan ranking: %w", err)
		}
		e.Mode = models.GameMode(mode)
		e.RecordedAt = e.RecordedAt.UTC()
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
