package repository

import (
	"context"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
)

// User defines the interface for user persistence.
// Reads and writes are plain read-modify-write; callers accept
// last-write-wins on a given record.
type User interface {
	GetUserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpsertUser(ctx context.Context, user *domain.User) error
	UpdateUser(ctx context.Context, user *domain.User) error
	GetTopUsersByPoints(ctx context.Context, limit int) ([]domain.User, error)
	GetAllUsers(ctx context.Context) ([]domain.User, error)
}
