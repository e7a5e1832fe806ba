package gamble_bench

import (
	"context"
	"testing"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
	"github.com/dmaas/DumpsterBot_Go/internal/user"
)

// --- Stubs (Zero-overhead mocks for benchmarking) ---

type StubRepository struct{}

func (s *StubRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	// Return a fresh object to simulate a db fetch and allow state
	// mutations safely.
	return &domain.User{Username: username, Points: 1_000_000}, nil
}

func (s *StubRepository) UpsertUser(ctx context.Context, u *domain.User) error { return nil }

func (s *StubRepository) UpdateUser(ctx context.Context, u *domain.User) error { return nil }

func (s *StubRepository) GetTopUsersByPoints(ctx context.Context, limit int) ([]domain.User, error) {
	out := make([]domain.User, limit)
	for i := range out {
		out[i] = domain.User{Username: "bench", Points: 1000}
	}
	return out, nil
}

func (s *StubRepository) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	return nil, nil
}

func BenchmarkGamble(b *testing.B) {
	svc := user.NewService(&StubRepository{}, random.NewSeededSource(1))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Gamble(ctx, "bench", 100, false); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGambleAll(b *testing.B) {
	svc := user.NewService(&StubRepository{}, random.NewSeededSource(1))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Gamble(ctx, "bench", 0, true); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkGambleParallel(b *testing.B) {
	svc := user.NewService(&StubRepository{}, random.NewSecureSource())
	ctx := context.Background()

	b.RunParallel(func(pb *testing.PB) {
		for pb.Next() {
			if _, err := svc.Gamble(ctx, "bench", 100, false); err != nil {
				b.Fatal(err)
			}
		}
	})
}

func BenchmarkLeaderboard(b *testing.B) {
	svc := user.NewService(&StubRepository{}, random.NewSeededSource(1))
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := svc.Leaderboard(ctx); err != nil {
			b.Fatal(err)
		}
	}
}
