package user

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
)

type fakeUserRepo struct {
	users map[string]*domain.User
	order []string
	// usernames whose UpdateUser calls fail
	failing map[string]bool
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*domain.User), failing: make(map[string]bool)}
	for _, u := range users {
		cp := *u
		f.users[u.Username] = &cp
		f.order = append(f.order, u.Username)
	}
	return f
}

func (f *fakeUserRepo) GetUserByUsername(_ context.Context, username string) (*domain.User, error) {
	u, ok := f.users[username]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (f *fakeUserRepo) UpsertUser(_ context.Context, user *domain.User) error {
	if _, ok := f.users[user.Username]; !ok {
		f.order = append(f.order, user.Username)
	}
	cp := *user
	f.users[user.Username] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *domain.User) error {
	if f.failing[user.Username] {
		return errors.New("connection reset")
	}
	cp := *user
	f.users[user.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetTopUsersByPoints(_ context.Context, limit int) ([]domain.User, error) {
	out := make([]domain.User, 0, limit)
	for _, name := range f.order {
		out = append(out, *f.users[name])
		if len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeUserRepo) GetAllUsers(_ context.Context) ([]domain.User, error) {
	out := make([]domain.User, 0, len(f.order))
	for _, name := range f.order {
		out = append(out, *f.users[name])
	}
	return out, nil
}

type scriptSource struct {
	floats []float64
	ints   []int
}

func (s *scriptSource) Float64() float64 {
	if len(s.floats) == 0 {
		return 0
	}
	v := s.floats[0]
	s.floats = s.floats[1:]
	return v
}

func (s *scriptSource) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[0] % n
	s.ints = s.ints[1:]
	return v
}

func TestGetOrRegister(t *testing.T) {
	repo := newFakeUserRepo()
	svc := NewService(repo, &scriptSource{})

	u, err := svc.GetOrRegister(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, domain.StartingPoints, u.Points)

	// A second call finds the existing record instead of re-seeding.
	u.Points = 42
	require.NoError(t, repo.UpdateUser(context.Background(), u))

	again, err := svc.GetOrRegister(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, 42, again.Points)
}

func TestAccrueMessagePoint(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{Username: "alice", Points: 10})
	svc := NewService(repo, &scriptSource{})

	require.NoError(t, svc.AccrueMessagePoint(context.Background(), "alice"))

	saved, _ := repo.GetUserByUsername(context.Background(), "alice")
	assert.Equal(t, 10+domain.PointsPerMessage, saved.Points)

	// Unknown chatters get registered and then credited.
	require.NoError(t, svc.AccrueMessagePoint(context.Background(), "bob"))
	saved, _ = repo.GetUserByUsername(context.Background(), "bob")
	assert.Equal(t, domain.StartingPoints+domain.PointsPerMessage, saved.Points)
}

func TestPoints(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{Username: "alice", Points: 123})
	svc := NewService(repo, &scriptSource{})

	msg, err := svc.Points(context.Background(), "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice has 123 points", msg)

	_, err = svc.Points(context.Background(), "ghost")
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLeaderboard(t *testing.T) {
	repo := newFakeUserRepo(
		&domain.User{Username: "alice", Points: 300},
		&domain.User{Username: "bob", Points: 200},
	)
	svc := NewService(repo, &scriptSource{})

	lines, err := svc.Leaderboard(context.Background())
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, "1. alice - 300 points", lines[0])
	assert.Equal(t, "2. bob - 200 points", lines[1])
}

func TestDonate(t *testing.T) {
	t.Run("transfers points", func(t *testing.T) {
		repo := newFakeUserRepo(
			&domain.User{Username: "alice", Points: 500},
			&domain.User{Username: "bob", Points: 100},
		)
		svc := NewService(repo, &scriptSource{})

		msg, err := svc.Donate(context.Background(), "alice", "bob", 200)
		require.NoError(t, err)
		assert.Equal(t, "alice donated 200 points to bob", msg)

		alice, _ := repo.GetUserByUsername(context.Background(), "alice")
		bob, _ := repo.GetUserByUsername(context.Background(), "bob")
		assert.Equal(t, 300, alice.Points)
		assert.Equal(t, 300, bob.Points)
	})

	t.Run("self donation refused", func(t *testing.T) {
		repo := newFakeUserRepo(&domain.User{Username: "alice", Points: 500})
		svc := NewService(repo, &scriptSource{})

		_, err := svc.Donate(context.Background(), "alice", "alice", 10)
		require.ErrorIs(t, err, domain.ErrInvalidInput)
		assert.Contains(t, err.Error(), "scammer >:(")
	})

	t.Run("amount must fit balance", func(t *testing.T) {
		repo := newFakeUserRepo(
			&domain.User{Username: "alice", Points: 50},
			&domain.User{Username: "bob", Points: 100},
		)
		svc := NewService(repo, &scriptSource{})

		for _, amount := range []int{0, -10, 51} {
			_, err := svc.Donate(context.Background(), "alice", "bob", amount)
			assert.ErrorIs(t, err, domain.ErrInvalidBet)
		}

		alice, _ := repo.GetUserByUsername(context.Background(), "alice")
		assert.Equal(t, 50, alice.Points)
	})

	t.Run("recipient must exist", func(t *testing.T) {
		repo := newFakeUserRepo(&domain.User{Username: "alice", Points: 500})
		svc := NewService(repo, &scriptSource{})

		_, err := svc.Donate(context.Background(), "alice", "ghost", 10)
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}

func TestGamble(t *testing.T) {
	t.Run("low roll loses the bet", func(t *testing.T) {
		repo := newFakeUserRepo(&domain.User{Username: "alice", Points: 100})
		// Roll comes out 1 + 48 = 49, just under the win threshold.
		svc := NewService(repo, &scriptSource{ints: []int{48}})

		msg, err := svc.Gamble(context.Background(), "alice", 40, false)
		require.NoError(t, err)
		assert.Equal(t, "alice rolled a 49. alice now has 60 points :(", msg)
	})

	t.Run("roll at threshold wins", func(t *testing.T) {
		repo := newFakeUserRepo(&domain.User{Username: "alice", Points: 100})
		svc := NewService(repo, &scriptSource{ints: []int{49}})

		msg, err := svc.Gamble(context.Background(), "alice", 40, false)
		require.NoError(t, err)
		assert.Equal(t, "alice rolled a 50. alice now has 140 points :)", msg)
	})

	t.Run("bet all stakes the whole balance", func(t *testing.T) {
		repo := newFakeUserRepo(&domain.User{Username: "alice", Points: 100})
		svc := NewService(repo, &scriptSource{ints: []int{99}})

		msg, err := svc.Gamble(context.Background(), "alice", 0, true)
		require.NoError(t, err)
		assert.Contains(t, msg, "now has 200 points :)")
	})

	t.Run("invalid bet", func(t *testing.T) {
		repo := newFakeUserRepo(&domain.User{Username: "alice", Points: 100})
		svc := NewService(repo, &scriptSource{})

		for _, bet := range []int{0, -5, 101} {
			_, err := svc.Gamble(context.Background(), "alice", bet, false)
			assert.ErrorIs(t, err, domain.ErrInvalidBet)
		}

		saved, _ := repo.GetUserByUsername(context.Background(), "alice")
		assert.Equal(t, 100, saved.Points)
	})
}

func TestSetPoints(t *testing.T) {
	repo := newFakeUserRepo(&domain.User{Username: "alice", Points: 100})
	svc := NewService(repo, &scriptSource{})

	msg, err := svc.SetPoints(context.Background(), "alice", 5000)
	require.NoError(t, err)
	assert.Equal(t, "alice now has 5000 points", msg)

	saved, _ := repo.GetUserByUsername(context.Background(), "alice")
	assert.Equal(t, 5000, saved.Points)

	// Unknown users are reported, not created.
	msg, err = svc.SetPoints(context.Background(), "ghost", 5000)
	require.NoError(t, err)
	assert.Equal(t, "ghost does not exist", msg)
	ghost, _ := repo.GetUserByUsername(context.Background(), "ghost")
	assert.Nil(t, ghost)
}

func TestResetAll(t *testing.T) {
	repo := newFakeUserRepo(
		&domain.User{
			Username: "alice", Points: 9999,
			OwnedStocks:     []domain.StockHolding{{Symbol: "WICH", Quantity: 3, PurchasePrice: 100}},
			EmojiCollection: []string{"🫓", "🦝"},
		},
		&domain.User{Username: "bob", Points: 5},
	)
	svc := NewService(repo, &scriptSource{})

	msg, err := svc.ResetAll(context.Background(), []string{"🫓", "🗑️"})
	require.NoError(t, err)
	assert.Contains(t, msg, "reset to 1000 points")

	alice, _ := repo.GetUserByUsername(context.Background(), "alice")
	assert.Equal(t, domain.StartingPoints, alice.Points)
	assert.Empty(t, alice.OwnedStocks)
	// Store emoji are stripped, the raccoon stays.
	assert.Equal(t, []string{"🦝"}, alice.EmojiCollection)

	bob, _ := repo.GetUserByUsername(context.Background(), "bob")
	assert.Equal(t, domain.StartingPoints, bob.Points)
}

func TestResetAll_ContinuesPastFailures(t *testing.T) {
	repo := newFakeUserRepo(
		&domain.User{Username: "alice", Points: 9999},
		&domain.User{Username: "bob", Points: 5},
	)
	repo.failing["alice"] = true
	svc := NewService(repo, &scriptSource{})

	msg, err := svc.ResetAll(context.Background(), nil)
	require.NoError(t, err)
	assert.Contains(t, msg, "Reset 1 users")
	assert.Contains(t, msg, "1 failed")

	bob, _ := repo.GetUserByUsername(context.Background(), "bob")
	assert.Equal(t, domain.StartingPoints, bob.Points)
}
