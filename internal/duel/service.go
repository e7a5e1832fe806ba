package duel

import (
	"context"
	"fmt"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
)

// Service runs point duels: a challenge escrows both players' bets
// until the opponent accepts (coin flip, winner takes the pot) or
// declines (both refunded).
type Service interface {
	Challenge(ctx context.Context, username, opponent string, bet int) (string, error)
	Accept(ctx context.Context, username string) (string, error)
	Decline(ctx context.Context, username string) (string, error)
}

type service struct {
	userRepo repository.User
	rng      random.Source
}

// NewService creates a new duel service
func NewService(userRepo repository.User, rng random.Source) Service {
	return &service{userRepo: userRepo, rng: rng}
}

// Challenge escrows bet points from both players and marks them as
// dueling. The opponent must !accept or !decline to resolve it.
func (s *service) Challenge(ctx context.Context, username, opponent string, bet int) (string, error) {
	if username == opponent {
		return "", fmt.Errorf("%w: you can't duel yourself", domain.ErrInvalidInput)
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	opp, err := s.getUser(ctx, opponent)
	if err != nil {
		return "", err
	}

	if user.IsDueling || opp.IsDueling {
		return "", fmt.Errorf("%w: one of you is already in a duel", domain.ErrAlreadyDueling)
	}
	if bet < 1 || bet > user.Points {
		return "", fmt.Errorf("%w: your current balance is %d", domain.ErrInvalidBet, user.Points)
	}
	if bet > opp.Points {
		return "", fmt.Errorf("%w: %s only has %d points", domain.ErrInvalidBet, opponent, opp.Points)
	}

	user.Points -= bet
	opp.Points -= bet
	for _, u := range []*domain.User{user, opp} {
		u.IsDueling = true
		u.DuelInitiator = username
		u.DuelOpponent = opponent
		u.DuelBet = bet
	}

	if err := s.saveBoth(ctx, user, opp); err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info("Duel challenge", "initiator", username, "opponent", opponent, "bet", bet)
	return fmt.Sprintf("%s has challenged %s to a duel for %d points! Type !accept or !decline", username, opponent, bet), nil
}

// Accept resolves the duel with a coin flip. Only the challenged
// player can accept.
func (s *service) Accept(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if !user.IsDueling {
		return "", fmt.Errorf("%w: you have no pending duel", domain.ErrNotDueling)
	}
	if user.DuelInitiator == username {
		return "", fmt.Errorf("%w: you can't accept your own duel", domain.ErrInvalidInput)
	}

	initiator, err := s.getUser(ctx, user.DuelInitiator)
	if err != nil {
		return "", err
	}

	bet := user.DuelBet
	pot := bet * 2
	roll := random.IntRange(s.rng, 1, FlipRollMax)

	winner := user
	if roll > FlipWinThreshold {
		winner = initiator
	}
	winner.Points += pot

	clearDuel(user)
	clearDuel(initiator)
	if err := s.saveBoth(ctx, user, initiator); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info("Duel resolved", "initiator", initiator.Username, "opponent", user.Username, "winner", winner.Username, "pot", pot)
	return fmt.Sprintf("%s has won the duel and %d points! %s now has %d points",
		winner.Username, pot, winner.Username, winner.Points), nil
}

// Decline cancels the duel and refunds both escrows.
func (s *service) Decline(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if !user.IsDueling {
		return "", fmt.Errorf("%w: you have no pending duel", domain.ErrNotDueling)
	}
	if user.DuelInitiator == username {
		return "", fmt.Errorf("%w: you can't decline your own duel", domain.ErrInvalidInput)
	}

	initiator, err := s.getUser(ctx, user.DuelInitiator)
	if err != nil {
		return "", err
	}

	bet := user.DuelBet
	user.Points += bet
	initiator.Points += bet
	clearDuel(user)
	clearDuel(initiator)

	if err := s.saveBoth(ctx, user, initiator); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s has declined the duel. Both players got their %d points back", username, bet), nil
}

func clearDuel(user *domain.User) {
	user.IsDueling = false
	user.DuelInitiator = ""
	user.DuelOpponent = ""
	user.DuelBet = 0
}

func (s *service) saveBoth(ctx context.Context, a, b *domain.User) error {
	if err := s.userRepo.UpdateUser(ctx, a); err != nil {
		return err
	}
	return s.userRepo.UpdateUser(ctx, b)
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
