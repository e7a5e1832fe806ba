package postgres

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
)

// UserRepository implements repository.User backed by PostgreSQL.
// Hands, portfolios and collections live in JSONB columns; the whole
// record is rewritten on update (last write wins, by design of the
// calling services).
type UserRepository struct {
	db *pgxpool.Pool
}

// NewUserRepository creates a user repository on the given pool.
func NewUserRepository(db *pgxpool.Pool) repository.User {
	return &UserRepository{db: db}
}

func (r *UserRepository) GetUserByUsername(ctx context.Context, username string) (*domain.User, error) {
	row := r.db.QueryRow(ctx, sqlSelectUserByUsername, username)
	user, err := scanUser(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user %q: %w", username, err)
	}
	return user, nil
}

func (r *UserRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	args, err := userWriteArgs(user)
	if err != nil {
		return err
	}

	insertArgs := append([]any{user.Username}, args...)
	if err := r.db.QueryRow(ctx, sqlUpsertUser, insertArgs...).Scan(&user.ID); err != nil {
		return fmt.Errorf("failed to upsert user %q: %w", user.Username, err)
	}
	return nil
}

func (r *UserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args, err := userWriteArgs(user)
	if err != nil {
		return err
	}

	updateArgs := append([]any{user.ID}, args...)
	tag, err := r.db.Exec(ctx, sqlUpdateUser, updateArgs...)
	if err != nil {
		return fmt.Errorf("failed to update user %q: %w", user.Username, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrUserNotFound, user.Username)
	}
	return nil
}

func (r *UserRepository) GetTopUsersByPoints(ctx context.Context, limit int) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, sqlSelectTopUsers, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top users: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

func (r *UserRepository) GetAllUsers(ctx context.Context) ([]domain.User, error) {
	rows, err := r.db.Query(ctx, sqlSelectAllUsers)
	if err != nil {
		return nil, fmt.Errorf("failed to query users: %w", err)
	}
	defer rows.Close()
	return collectUsers(rows)
}

// userWriteArgs marshals the JSONB fields and returns the write
// parameters shared by insert and update, starting at points.
func userWriteArgs(user *domain.User) ([]any, error) {
	playerHand, err := json.Marshal(orEmptyCards(user.BlackjackHand))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal blackjack hand: %w", err)
	}
	dealerHand, err := json.Marshal(orEmptyCards(user.DealerHand))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal dealer hand: %w", err)
	}
	stocks, err := json.Marshal(orEmptyHoldings(user.OwnedStocks))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal owned stocks: %w", err)
	}
	collection, err := json.Marshal(orEmptyStrings(user.EmojiCollection))
	if err != nil {
		return nil, fmt.Errorf("failed to marshal emoji collection: %w", err)
	}

	return []any{
		user.Points, user.BlackjackBet, playerHand, dealerHand,
		user.IsDueling, user.DuelInitiator, user.DuelOpponent, user.DuelBet,
		stocks, collection, user.LastDumpsterDive, user.DumpsterBanUntil,
	}, nil
}

func scanUser(row pgx.Row) (*domain.User, error) {
	var (
		u                                             domain.User
		playerHand, dealerHand, stocks, collectionRaw []byte
	)
	err := row.Scan(&u.ID, &u.Username, &u.Points, &u.BlackjackBet, &playerHand, &dealerHand,
		&u.IsDueling, &u.DuelInitiator, &u.DuelOpponent, &u.DuelBet,
		&stocks, &collectionRaw, &u.LastDumpsterDive, &u.DumpsterBanUntil)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(playerHand, &u.BlackjackHand); err != nil {
		return nil, fmt.Errorf("failed to unmarshal blackjack hand: %w", err)
	}
	if err := json.Unmarshal(dealerHand, &u.DealerHand); err != nil {
		return nil, fmt.Errorf("failed to unmarshal dealer hand: %w", err)
	}
	if err := json.Unmarshal(stocks, &u.OwnedStocks); err != nil {
		return nil, fmt.Errorf("failed to unmarshal owned stocks: %w", err)
	}
	if err := json.Unmarshal(collectionRaw, &u.EmojiCollection); err != nil {
		return nil, fmt.Errorf("failed to unmarshal emoji collection: %w", err)
	}
	return &u, nil
}

func collectUsers(rows pgx.Rows) ([]domain.User, error) {
	var users []domain.User
	for rows.Next() {
		u, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, *u)
	}
	return users, rows.Err()
}

func orEmptyCards(cards []domain.Card) []domain.Card {
	if cards == nil {
		return []domain.Card{}
	}
	return cards
}

func orEmptyHoldings(holdings []domain.StockHolding) []domain.StockHolding {
	if holdings == nil {
		return []domain.StockHolding{}
	}
	return holdings
}

func orEmptyStrings(values []string) []string {
	if values == nil {
		return []string{}
	}
	return values
}
