package repository

import (
	"context"
	"database/sql"
	"time"

	"pixel_bistro/internal/models"
)

type Authorization interface {
	Create(username, hash string) (int, error)
	GetByUsername(username string) (*models.Chef, error)
}

// SaveRepo holds the single solo save slot.
type SaveRepo interface {
	Save(ctx context.Context, s models.SaveData) error
	Load(ctx context.Context) (models.SaveData, bool, error)
	Clear(ctx context.Context) error
}

type EventRepo interface {
	Append(ctx context.Context, e models.KitchenEvent) error
	List(ctx context.Context, from, to time.Time, typ string) ([]models.KitchenEvent, error)
}

type RankingRepo interface {
	Record(ctx context.Context, e models.RankEntry) (int, error)
	Top(ctx context.Context, limit int) ([]models.RankEntry, error)
}

type Repository struct {
	SaveRepo    SaveRepo
	EventRepo   EventRepo
	RankingRepo RankingRepo
	Auth        Authorization
}

func NewRepository(db *sql.DB) *Repository {
	return &Repository{
		SaveRepo:    NewSaveSQLite(db),
		EventRepo:   NewEventSQLite(db),
		RankingRepo: NewRankingSQLite(db),
		Auth:        NewChefRepository(db),
	}
}
