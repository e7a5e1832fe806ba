package user

import (
	"context"
	"fmt"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/metrics"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
)

// Service covers account lifecycle and the plain point operations:
// accrual, checking, donating, the 50/50 gamble, and mod tools.
type Service interface {
	// GetOrRegister returns the user, creating them with the starting
	// balance on first contact.
	GetOrRegister(ctx context.Context, username string) (*domain.User, error)
	// AccrueMessagePoint gives the chatter one point for a message.
	AccrueMessagePoint(ctx context.Context, username string) error
	Points(ctx context.Context, username string) (string, error)
	Leaderboard(ctx context.Context) ([]string, error)
	Donate(ctx context.Context, username, recipient string, points int) (string, error)
	Gamble(ctx context.Context, username string, bet int, betAll bool) (string, error)
	SetPoints(ctx context.Context, username string, points int) (string, error)
	// ResetAll resets every user to the starting balance, clears
	// portfolios and strips non-hidden emoji. Continues past
	// individual save failures and reports how many were reset.
	ResetAll(ctx context.Context, nonHiddenEmoji []string) (string, error)
}

type service struct {
	userRepo repository.User
	rng      random.Source
}

// NewService creates a new user service
func NewService(userRepo repository.User, rng random.Source) Service {
	return &service{userRepo: userRepo, rng: rng}
}

func (s *service) GetOrRegister(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user != nil {
		return user, nil
	}

	logger.FromContext(ctx).Info("Registering new user", "username", username)
	user = &domain.User{
		Username: username,
		Points:   domain.StartingPoints,
	}
	if err := s.userRepo.UpsertUser(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

func (s *service) AccrueMessagePoint(ctx context.Context, username string) error {
	user, err := s.GetOrRegister(ctx, username)
	if err != nil {
		return err
	}
	user.Points += domain.PointsPerMessage
	return s.userRepo.UpdateUser(ctx, user)
}

func (s *service) Points(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s has %d points", username, user.Points), nil
}

func (s *service) Leaderboard(ctx context.Context) ([]string, error) {
	top, err := s.userRepo.GetTopUsersByPoints(ctx, LeaderboardSize)
	if err != nil {
		return nil, fmt.Errorf("failed to get leaderboard: %w", err)
	}

	lines := make([]string, 0, len(top))
	for i, u := range top {
		lines = append(lines, fmt.Sprintf("%d. %s - %d points", i+1, u.Username, u.Points))
	}
	return lines, nil
}

// Donate transfers points to another user; self-donation is refused.
func (s *service) Donate(ctx context.Context, username, recipient string, points int) (string, error) {
	if username == recipient {
		return "", fmt.Errorf("%w: you can't donate points to yourself! scammer >:(", domain.ErrInvalidInput)
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	recipientUser, err := s.getUser(ctx, recipient)
	if err != nil {
		return "", err
	}
	if points < 1 || points > user.Points {
		return "", fmt.Errorf("%w: invalid donation amount", domain.ErrInvalidBet)
	}

	user.Points -= points
	recipientUser.Points += points
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	if err := s.userRepo.UpdateUser(ctx, recipientUser); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info("Donation", "from", username, "to", recipient, "points", points)
	return fmt.Sprintf("%s donated %d points to %s", username, points, recipient), nil
}

// Gamble is double-or-nothing on a 1-100 roll; rolls of 50 and up win.
func (s *service) Gamble(ctx context.Context, username string, bet int, betAll bool) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if betAll {
		bet = user.Points
	}
	if bet < 1 || bet > user.Points {
		return "", fmt.Errorf("%w: your current balance is %d", domain.ErrInvalidBet, user.Points)
	}

	roll := random.IntRange(s.rng, 1, GambleRollMax)
	metrics.PointsWagered.WithLabelValues("gamble").Add(float64(bet))
	var message string
	if roll < GambleWinThreshold {
		user.Points -= bet
		message = fmt.Sprintf("%s rolled a %d. %s now has %d points :(", username, roll, username, user.Points)
	} else {
		user.Points += bet
		metrics.PointsPaidOut.WithLabelValues("gamble").Add(float64(bet))
		message = fmt.Sprintf("%s rolled a %d. %s now has %d points :)", username, roll, username, user.Points)
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return message, nil
}

func (s *service) SetPoints(ctx context.Context, username string, points int) (string, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return "", fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return fmt.Sprintf("%s does not exist", username), nil
	}

	user.Points = points
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s now has %d points", username, points), nil
}

func (s *service) ResetAll(ctx context.Context, nonHiddenEmoji []string) (string, error) {
	log := logger.FromContext(ctx)

	users, err := s.userRepo.GetAllUsers(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to list users: %w", err)
	}

	hidden := make(map[string]bool)
	for _, c := range nonHiddenEmoji {
		hidden[c] = false
	}
	isNonHidden := func(c string) bool {
		_, listed := hidden[c]
		return listed
	}

	reset, failed := 0, 0
	for i := range users {
		u := &users[i]
		u.Points = domain.StartingPoints
		u.OwnedStocks = nil

		kept := u.EmojiCollection[:0]
		for _, c := range u.EmojiCollection {
			if !isNonHidden(c) {
				kept = append(kept, c)
			}
		}
		u.EmojiCollection = kept

		if err := s.userRepo.UpdateUser(ctx, u); err != nil {
			log.Error("Failed to reset user", "username", u.Username, "error", err)
			failed++
			continue
		}
		reset++
	}

	if failed > 0 {
		return fmt.Sprintf("Reset %d users to %d points (%d failed, see logs). Portfolios cleared and non-hidden emojis removed.",
			reset, domain.StartingPoints, failed), nil
	}
	return "All users have been reset to 1000 points, portfolios cleared, and non-hidden emojis removed.", nil
}

func (s *service) getUser(ctx context.Context, username string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByUsername(ctx, username)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	if user == nil {
		return nil, fmt.Errorf("%w: %s", domain.ErrUserNotFound, username)
	}
	return user, nil
}
