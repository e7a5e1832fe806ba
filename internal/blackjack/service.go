package blackjack

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
)

// Service defines the blackjack table operations. Each call reads the
// player's record, applies one state transition and persists it.
type Service interface {
	Deal(ctx context.Context, username string, bet int) (string, error)
	Hit(ctx context.Context, username string) (string, error)
	DoubleDown(ctx context.Context, username string) (string, error)
	Stand(ctx context.Context, username string) (string, error)
}

type service struct {
	userRepo repository.User
	rng      random.Source
}

// NewService creates a new blackjack service
func NewService(userRepo repository.User, rng random.Source) Service {
	return &service{userRepo: userRepo, rng: rng}
}

// Deal starts a round: deducts the bet, deals two cards to the player
// and one to the dealer, and settles immediately on a natural.
func (s *service) Deal(ctx context.Context, username string, bet int) (string, error) {
	log := logger.FromContext(ctx)

	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}

	if user.InBlackjackRound() {
		// Report the round in progress instead of starting a new one.
		return fmt.Sprintf(msgAlreadyPlaying, username,
			HandValue(user.BlackjackHand), formatHand(user.BlackjackHand),
			HandValue(user.DealerHand), user.DealerHand[0]), nil
	}

	if bet < MinBet || bet > user.Points {
		return "", fmt.Errorf("%w: your current balance is %d", domain.ErrInvalidBet, user.Points)
	}

	deck := NewDeck()
	user.Points -= bet
	user.BlackjackBet = bet
	user.BlackjackHand = []domain.Card{deck.Draw(s.rng), deck.Draw(s.rng)}
	user.DealerHand = []domain.Card{deck.Draw(s.rng)}

	if IsNatural(user.BlackjackHand) {
		// Draw the dealer's hole card now to check for a push.
		user.DealerHand = append(user.DealerHand, deck.Draw(s.rng))

		var message string
		if IsNatural(user.DealerHand) {
			user.Points += bet
			message = fmt.Sprintf(msgNaturalPush, username, formatHand(user.BlackjackHand), formatHand(user.DealerHand))
		} else {
			user.Points += bet + int(float64(bet)*NaturalPayoutFactor)
			message = fmt.Sprintf(msgNaturalWin, username, formatHand(user.BlackjackHand), formatHand(user.DealerHand))
		}
		clearRound(user)
		if err := s.userRepo.UpdateUser(ctx, user); err != nil {
			return "", err
		}
		log.Info("Blackjack natural resolved", "username", username, "bet", bet)
		return message, nil
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return fmt.Sprintf(msgDealt, username,
		HandValue(user.BlackjackHand), formatHand(user.BlackjackHand),
		HandValue(user.DealerHand), user.DealerHand[0]), nil
}

// Hit draws one card; a value over 21 forfeits the round.
func (s *service) Hit(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if !user.InBlackjackRound() {
		return "", domain.ErrNotPlaying
	}

	deck := NewDeckExcluding(user.BlackjackHand, user.DealerHand)
	user.BlackjackHand = append(user.BlackjackHand, deck.Draw(s.rng))

	value := HandValue(user.BlackjackHand)
	if value > 21 {
		message := fmt.Sprintf(msgBust, username, value, formatHand(user.BlackjackHand))
		clearRound(user)
		if err := s.userRepo.UpdateUser(ctx, user); err != nil {
			return "", err
		}
		return message, nil
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return fmt.Sprintf(msgHit, username, value, formatHand(user.BlackjackHand)), nil
}

// DoubleDown doubles the bet, draws exactly one card, then stands.
func (s *service) DoubleDown(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if !user.InBlackjackRound() {
		return "", domain.ErrNotPlaying
	}
	if user.Points < user.BlackjackBet {
		return "", fmt.Errorf("%w: doubling down costs another %d", domain.ErrInsufficientPoints, user.BlackjackBet)
	}

	deck := NewDeckExcluding(user.BlackjackHand, user.DealerHand)
	user.Points -= user.BlackjackBet
	user.BlackjackBet *= 2
	user.BlackjackHand = append(user.BlackjackHand, deck.Draw(s.rng))

	value := HandValue(user.BlackjackHand)
	if value > 21 {
		message := fmt.Sprintf(msgBust, username, value, formatHand(user.BlackjackHand))
		clearRound(user)
		if err := s.userRepo.UpdateUser(ctx, user); err != nil {
			return "", err
		}
		return message, nil
	}

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return s.Stand(ctx, username)
}

// Stand plays out the dealer (draw to 17) and settles the round.
func (s *service) Stand(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if !user.InBlackjackRound() {
		return "", domain.ErrNotPlaying
	}

	deck := NewDeckExcluding(user.BlackjackHand, user.DealerHand)
	dealerValue := HandValue(user.DealerHand)
	for dealerValue < DealerStandValue {
		user.DealerHand = append(user.DealerHand, deck.Draw(s.rng))
		dealerValue = HandValue(user.DealerHand)
	}
	playerValue := HandValue(user.BlackjackHand)

	var message string
	switch {
	case dealerValue > 21:
		user.Points += 2 * user.BlackjackBet
		message = fmt.Sprintf(msgDealerBust, username, playerValue, formatHand(user.BlackjackHand), dealerValue, formatHand(user.DealerHand))
	case playerValue > dealerValue:
		user.Points += 2 * user.BlackjackBet
		message = fmt.Sprintf(msgStandWin, username, playerValue, formatHand(user.BlackjackHand), dealerValue, formatHand(user.DealerHand))
	case playerValue < dealerValue:
		message = fmt.Sprintf(msgStandLose, username, playerValue, formatHand(user.BlackjackHand), dealerValue, formatHand(user.DealerHand))
	default:
		user.Points += user.BlackjackBet
		message = fmt.Sprintf(msgStandPush, username, playerValue, formatHand(user.BlackjackHand), dealerValue, formatHand(user.DealerHand))
	}

	clearRound(user)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return message, nil
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

// clearRound resets the table-membership fields; empty hand means not
// playing.
func clearRound(user *domain.User) {
	user.BlackjackHand = nil
	user.DealerHand = nil
	user.BlackjackBet = 0
}

func formatHand(hand []domain.Card) string {
	parts := make([]string, len(hand))
	for i, c := range hand {
		parts[i] = string(c)
	}
	return strings.Join(parts, ", ")
}
