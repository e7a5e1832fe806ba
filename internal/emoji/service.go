package emoji

import (
	"context"
	"fmt"
	"strings"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
)

// Service is the collectible-emoji store: buying, selling, listing and
// showing a user's collection.
type Service interface {
	Buy(ctx context.Context, username, input string) (string, error)
	Sell(ctx context.Context, username, input string) (string, error)
	StoreListing() string
	Collection(ctx context.Context, username string) (string, error)
	Catalog() Catalog
}

type service struct {
	userRepo repository.User
	catalog  Catalog
}

// NewService creates a new emoji store service
func NewService(userRepo repository.User, catalog Catalog) Service {
	return &service{userRepo: userRepo, catalog: catalog}
}

func (s *service) Catalog() Catalog {
	return s.catalog
}

// Buy purchases an emoji by character or alias. Hidden and zero-price
// entries are not purchasable.
func (s *service) Buy(ctx context.Context, username, input string) (string, error) {
	e := s.catalog.Find(input)
	if e == nil || e.IsHidden || e.Price == 0 {
		return "", fmt.Errorf("%w: no such emoji in the store", domain.ErrInvalidInput)
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if user.OwnsEmoji(e.Character) {
		return "", fmt.Errorf("%w: you already own %s", domain.ErrAlreadyOwned, e.Character)
	}
	if user.Points < e.Price {
		return "", fmt.Errorf("%w: you need %d more points to buy %s", domain.ErrInsufficientPoints, e.Price-user.Points, e.Character)
	}

	user.Points -= e.Price
	user.EmojiCollection = append(user.EmojiCollection, e.Character)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info("Emoji bought", "username", username, "emoji", e.Alias, "price", e.Price)
	return fmt.Sprintf("%s bought an emoji: %s", username, e.Character), nil
}

// Sell sells an owned emoji back at full price. The raccoon refuses to
// leave, and zero-price cosmetics cannot be sold.
func (s *service) Sell(ctx context.Context, username, input string) (string, error) {
	e := s.catalog.Find(input)
	if e == nil {
		return "", fmt.Errorf("%w: no such emoji", domain.ErrInvalidInput)
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}

	if e.Character == RaccoonCharacter && user.OwnsEmoji(RaccoonCharacter) {
		return fmt.Sprintf("%s, you can't sell your best friend! %s is here to stay.", username, RaccoonCharacter), nil
	}
	if e.Price == 0 {
		return "", fmt.Errorf("%w: %s", domain.ErrNotSellable, e.Character)
	}
	if !user.RemoveEmoji(e.Character) {
		return "", fmt.Errorf("%w: you don't own %s", domain.ErrNotOwned, e.Character)
	}

	user.Points += e.Price
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	logger.FromContext(ctx).Info("Emoji sold", "username", username, "emoji", e.Alias, "price", e.Price)
	return fmt.Sprintf("%s parted ways with %s", username, e.Character), nil
}

// StoreListing formats the non-hidden catalog with prices.
func (s *service) StoreListing() string {
	var b strings.Builder
	b.WriteString("Available to buy: ")
	visible := s.catalog.Visible()
	for i, e := range visible {
		fmt.Fprintf(&b, "%s (%d)", e.Character, e.Price)
		if i != len(visible)-1 {
			b.WriteString(", ")
		}
	}
	return b.String()
}

// Collection formats the user's owned emoji.
func (s *service) Collection(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if len(user.EmojiCollection) == 0 {
		return fmt.Sprintf("%s has nothing but dust in their collection :(", username), nil
	}
	return fmt.Sprintf("%s's collection: %s", username, strings.Join(user.EmojiCollection, " , ")), nil
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
