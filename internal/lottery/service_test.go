package lottery

import (
	"context"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
)

type fakeUserRepo struct {
	users map[string]*domain.User
}

func newFakeUserRepo(users ...*domain.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*domain.User)}
	for _, u := range users {
		cp := *u
		f.users[u.Username] = &cp
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
	cp := *user
	f.users[user.Username] = &cp
	return nil
}

func (f *fakeUserRepo) UpdateUser(_ context.Context, user *domain.User) error {
	cp := *user
	f.users[user.Username] = &cp
	return nil
}

func (f *fakeUserRepo) GetTopUsersByPoints(_ context.Context, limit int) ([]domain.User, error) {
	return nil, nil
}

func (f *fakeUserRepo) GetAllUsers(_ context.Context) ([]domain.User, error) {
	return nil, nil
}

type fakeLotteryRepo struct {
	state domain.LotteryState
}

func (f *fakeLotteryRepo) GetLotteryState(_ context.Context) (*domain.LotteryState, error) {
	cp := f.state
	return &cp, nil
}

func (f *fakeLotteryRepo) UpdateLotteryState(_ context.Context, state *domain.LotteryState) error {
	f.state = *state
	return nil
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

func TestRoll_InvalidPickLeavesEverything(t *testing.T) {
	users := newFakeUserRepo(&domain.User{Username: "alice", Points: 1000})
	pots := &fakeLotteryRepo{state: domain.LotteryState{LotteryBonus: 500}}
	svc := NewService(users, pots, &scriptSource{})

	for _, pick := range []int{0, -5, 1001} {
		_, err := svc.Roll(context.Background(), "alice", pick)
		assert.ErrorIs(t, err, domain.ErrInvalidInput)
	}

	saved, _ := users.GetUserByUsername(context.Background(), "alice")
	assert.Equal(t, 1000, saved.Points)
	assert.Equal(t, 500, pots.state.LotteryBonus)
}

func TestRoll_InsufficientPoints(t *testing.T) {
	users := newFakeUserRepo(&domain.User{Username: "alice", Points: 1})
	svc := NewService(users, &fakeLotteryRepo{}, &scriptSource{})

	_, err := svc.Roll(context.Background(), "alice", 7)
	require.ErrorIs(t, err, domain.ErrInsufficientPoints)
	assert.Contains(t, err.Error(), "99 more points")
}

func TestRoll_WinTakesBaseAndBonus(t *testing.T) {
	users := newFakeUserRepo(&domain.User{Username: "alice", Points: 1000})
	pots := &fakeLotteryRepo{state: domain.LotteryState{LotteryBonus: 500}}
	// Winning number is 1 + 41 = 42.
	svc := NewService(users, pots, &scriptSource{ints: []int{41}})

	msg, err := svc.Roll(context.Background(), "alice", 42)
	require.NoError(t, err)
	assert.Contains(t, msg, "won the lottery")

	saved, _ := users.GetUserByUsername(context.Background(), "alice")
	assert.Equal(t, 1000-TicketPrice+domain.LotteryBasePrize+500, saved.Points)
	assert.Equal(t, 0, pots.state.LotteryBonus)
}

func TestRoll_LossFeedsBonusPot(t *testing.T) {
	users := newFakeUserRepo(&domain.User{Username: "alice", Points: 1000})
	pots := &fakeLotteryRepo{state: domain.LotteryState{LotteryBonus: 500}}
	svc := NewService(users, pots, &scriptSource{ints: []int{41}})

	msg, err := svc.Roll(context.Background(), "alice", 7)
	require.NoError(t, err)
	assert.Contains(t, msg, "Better luck next time")

	saved, _ := users.GetUserByUsername(context.Background(), "alice")
	assert.Equal(t, 900, saved.Points)
	assert.Equal(t, 599, pots.state.LotteryBonus)
}

func TestPayoutTiers(t *testing.T) {
	tests := []struct {
		matches    int
		specialHit bool
		want       int
	}{
		{5, false, PrizeFiveMatches},
		{4, true, PrizeFourWithSpecial},
		{4, false, PrizeFourMatches},
		{3, true, PrizeThreeWithSpecial},
		{3, false, PrizeThreeMatches},
		{2, true, PrizeTwoWithSpecial},
		{2, false, 0},
		{1, true, PrizeOneWithSpecial},
		{1, false, 0},
		{0, true, PrizeSpecialOnly},
		{0, false, 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Payout(tt.matches, tt.specialHit),
			"matches=%d special=%v", tt.matches, tt.specialHit)
	}
}

func TestPayoutOrdering(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		matches := rapid.IntRange(0, ScamballNumberCount).Draw(t, "matches")
		specialHit := rapid.Bool().Draw(t, "specialHit")

		prize := Payout(matches, specialHit)
		assert.GreaterOrEqual(t, prize, 0)

		// The scamball never hurts, and more matches never pay less
		// for the same scamball outcome.
		assert.GreaterOrEqual(t, Payout(matches, true), Payout(matches, false))
		if matches > 0 {
			assert.GreaterOrEqual(t, prize, Payout(matches-1, specialHit))
		}
	})
}

func TestScamballRoll_TicketValidation(t *testing.T) {
	users := newFakeUserRepo(&domain.User{Username: "alice", Points: 1000})
	pots := &fakeLotteryRepo{state: domain.LotteryState{ScamballJackpot: domain.ScamballJackpotSeed}}
	svc := NewService(users, pots, &scriptSource{})

	cases := []struct {
		name    string
		numbers []int
		special int
	}{
		{"too few numbers", []int{1, 2, 3}, 1},
		{"duplicate numbers", []int{1, 1, 2, 3, 4}, 1},
		{"number out of range", []int{1, 2, 3, 4, 70}, 1},
		{"special out of range", []int{1, 2, 3, 4, 5}, 27},
		{"special too low", []int{1, 2, 3, 4, 5}, 0},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ScamballRoll(context.Background(), "alice", tt.numbers, tt.special)
			assert.ErrorIs(t, err, domain.ErrInvalidInput)
		})
	}

	saved, _ := users.GetUserByUsername(context.Background(), "alice")
	assert.Equal(t, 1000, saved.Points)
	assert.Equal(t, domain.ScamballJackpotSeed, pots.state.ScamballJackpot)
}

func TestScamballRoll_JackpotDrainsAndReseeds(t *testing.T) {
	users := newFakeUserRepo(&domain.User{Username: "alice", Points: 1000})
	pots := &fakeLotteryRepo{state: domain.LotteryState{ScamballJackpot: 21_000_000}}
	// Winning numbers come out 1,2,3,4,5 with special 1.
	svc := NewService(users, pots, &scriptSource{ints: []int{0, 1, 2, 3, 4, 0}})

	msg, err := svc.ScamballRoll(context.Background(), "alice", []int{1, 2, 3, 4, 5}, 1)
	require.NoError(t, err)
	assert.Contains(t, msg, "matched 5 numbers and the scamball")

	saved, _ := users.GetUserByUsername(context.Background(), "alice")
	assert.Equal(t, 1000-ScamballTicketPrice+21_000_000, saved.Points)
	assert.Equal(t, domain.ScamballJackpotSeed, pots.state.ScamballJackpot)
}

func TestScamballRoll_NonJackpotFeedsPot(t *testing.T) {
	users := newFakeUserRepo(&domain.User{Username: "alice", Points: 1000})
	pots := &fakeLotteryRepo{state: domain.LotteryState{ScamballJackpot: domain.ScamballJackpotSeed}}
	// Winning numbers 1,2,3,4,5 special 1; ticket matches three.
	svc := NewService(users, pots, &scriptSource{ints: []int{0, 1, 2, 3, 4, 0}})

	_, err := svc.ScamballRoll(context.Background(), "alice", []int{1, 2, 3, 10, 11}, 5)
	require.NoError(t, err)

	saved, _ := users.GetUserByUsername(context.Background(), "alice")
	assert.Equal(t, 1000-ScamballTicketPrice+PrizeThreeMatches, saved.Points)
	assert.Equal(t, domain.ScamballJackpotSeed+ScamballFeed, pots.state.ScamballJackpot)
}

func TestScamballRoll_InsufficientPoints(t *testing.T) {
	users := newFakeUserRepo(&domain.User{Username: "alice", Points: 1})
	svc := NewService(users, &fakeLotteryRepo{}, &scriptSource{})

	_, err := svc.ScamballRoll(context.Background(), "alice", []int{1, 2, 3, 4, 5}, 1)
	assert.ErrorIs(t, err, domain.ErrInsufficientPoints)
}

func TestAutopick_ProducesValidTicket(t *testing.T) {
	svc := NewService(newFakeUserRepo(), &fakeLotteryRepo{}, random.NewSeededSource(7))

	for i := 0; i < 20; i++ {
		numbers, special := svc.Autopick()
		require.Len(t, numbers, ScamballNumberCount)
		assert.True(t, sort.IntsAreSorted(numbers))

		seen := make(map[int]bool)
		for _, n := range numbers {
			assert.GreaterOrEqual(t, n, 1)
			assert.LessOrEqual(t, n, ScamballNumberMax)
			assert.False(t, seen[n], "duplicate %d", n)
			seen[n] = true
		}
		assert.GreaterOrEqual(t, special, 1)
		assert.LessOrEqual(t, special, ScamballSpecialMax)
	}
}
