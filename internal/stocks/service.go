package stocks

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
)

// Service is the toy stock market: random-walk prices, a ticker line,
// and buy/sell against the user's portfolio.
type Service interface {
	// Init seeds missing symbols and removes delisted ones.
	Init(ctx context.Context) error
	// Tick advances every price one random-walk step.
	Tick(ctx context.Context) error
	Ticker(ctx context.Context) (string, error)
	Buy(ctx context.Context, username, symbol string, quantity int) (string, error)
	Sell(ctx context.Context, username, symbol string, quantity int) (string, error)
	Portfolio(ctx context.Context, username string) (string, error)
	// IsListed reports whether the symbol trades on this market.
	IsListed(ctx context.Context, symbol string) (bool, error)
}

type service struct {
	userRepo  repository.User
	stockRepo repository.Stock
	rng       random.Source
}

// NewService creates a new stock market service
func NewService(userRepo repository.User, stockRepo repository.Stock, rng random.Source) Service {
	return &service{userRepo: userRepo, stockRepo: stockRepo, rng: rng}
}

// Init seeds the default listings and prunes symbols no longer listed.
func (s *service) Init(ctx context.Context) error {
	log := logger.FromContext(ctx)

	listed := make(map[string]bool, len(defaultListings))
	for _, l := range defaultListings {
		listed[l.symbol] = true
		existing, err := s.stockRepo.GetStock(ctx, l.symbol)
		if err != nil {
			return err
		}
		if existing == nil {
			log.Info("Adding missing stock", "symbol", l.symbol)
			stock := &domain.Stock{Symbol: l.symbol, CurrentPrice: l.currentPrice, LastPrice: l.lastPrice}
			if err := s.stockRepo.UpsertStock(ctx, stock); err != nil {
				return err
			}
		}
	}

	all, err := s.stockRepo.GetAllStocks(ctx)
	if err != nil {
		return err
	}
	for _, stock := range all {
		if !listed[stock.Symbol] {
			log.Info("Removing delisted stock", "symbol", stock.Symbol)
			if err := s.stockRepo.DeleteStock(ctx, stock.Symbol); err != nil {
				return err
			}
		}
	}
	return nil
}

// Tick moves each price by a uniform percentage in ±max(10%, enough
// for a one-point change), with a floor of MinPrice.
func (s *service) Tick(ctx context.Context) error {
	all, err := s.stockRepo.GetAllStocks(ctx)
	if err != nil {
		return err
	}

	for i := range all {
		stock := &all[i]
		if stock.CurrentPrice <= 0 {
			continue
		}
		stock.LastPrice = stock.CurrentPrice

		minChangePercent := 1.0 / float64(stock.CurrentPrice) * 100
		maxFluctuation := math.Max(minChangePercent, BaseFluctuationPercent)
		change := (s.rng.Float64()*maxFluctuation*2 - maxFluctuation) / 100

		stock.CurrentPrice = int(math.Round(float64(stock.CurrentPrice) * (1 + change)))
		if stock.CurrentPrice < MinPrice {
			stock.CurrentPrice = MinPrice
		}
		if err := s.stockRepo.UpsertStock(ctx, stock); err != nil {
			return err
		}
	}
	return nil
}

// Ticker formats the whole market in one line.
func (s *service) Ticker(ctx context.Context) (string, error) {
	all, err := s.stockRepo.GetAllStocks(ctx)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("AZ Index: ")
	for i, stock := range all {
		change := stock.PercentChange()
		sign := "+"
		if change < 0 {
			sign = "-"
		}
		fmt.Fprintf(&b, "%s - (%d | %s%.2f%%)", stock.Symbol, stock.CurrentPrice, sign, math.Abs(change))
		if i != len(all)-1 {
			b.WriteString(", ")
		}
	}
	return b.String(), nil
}

// Buy purchases quantity shares at the current price; repeat buys
// roll into a weighted-average purchase price.
func (s *service) Buy(ctx context.Context, username, symbol string, quantity int) (string, error) {
	user, stock, err := s.getUserAndStock(ctx, username, symbol)
	if err != nil {
		return "", err
	}

	cost := quantity * stock.CurrentPrice
	if quantity < 1 || stock.CurrentPrice <= 0 {
		return "", fmt.Errorf("%w: invalid quantity", domain.ErrInvalidInput)
	}
	if cost > user.Points {
		return "", fmt.Errorf("%w: %d shares of %s cost %d", domain.ErrInsufficientPoints, quantity, symbol, cost)
	}

	if held := findHolding(user, symbol); held != nil {
		totalOld := held.PurchasePrice * held.Quantity
		totalNew := stock.CurrentPrice * quantity
		held.PurchasePrice = int(math.Round(float64(totalOld+totalNew) / float64(held.Quantity+quantity)))
		held.Quantity += quantity
	} else {
		user.OwnedStocks = append(user.OwnedStocks, domain.StockHolding{
			Symbol:        symbol,
			Quantity:      quantity,
			PurchasePrice: stock.CurrentPrice,
		})
	}

	user.Points -= cost
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s bought %dx %s at %d for %d points", username, quantity, symbol, stock.CurrentPrice, cost), nil
}

// Sell liquidates quantity shares at the current price and reports the
// profit against the averaged purchase price.
func (s *service) Sell(ctx context.Context, username, symbol string, quantity int) (string, error) {
	user, stock, err := s.getUserAndStock(ctx, username, symbol)
	if err != nil {
		return "", err
	}
	if quantity < 1 {
		return "", fmt.Errorf("%w: invalid quantity", domain.ErrInvalidInput)
	}

	held := findHolding(user, symbol)
	if held == nil {
		return "", fmt.Errorf("%w: you don't own any %s to sell", domain.ErrNotOwned, symbol)
	}
	if held.Quantity < quantity {
		return "", fmt.Errorf("%w: you don't have enough %s to sell %d", domain.ErrInsufficientPoints, symbol, quantity)
	}

	profit := quantity * (stock.CurrentPrice - held.PurchasePrice)
	held.Quantity -= quantity
	if held.Quantity == 0 {
		removeHolding(user, symbol)
	}
	user.Points += quantity * stock.CurrentPrice

	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s sold %dx %s at %d (Profit: %d)", username, quantity, symbol, stock.CurrentPrice, profit), nil
}

// Portfolio formats the user's holdings with cost basis and movement.
func (s *service) Portfolio(ctx context.Context, username string) (string, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	fmt.Fprintf(&b, "%s's portfolio: ", username)
	if len(user.OwnedStocks) == 0 {
		b.WriteString("Empty")
		return b.String(), nil
	}

	parts := make([]string, 0, len(user.OwnedStocks))
	for _, held := range user.OwnedStocks {
		stock, err := s.stockRepo.GetStock(ctx, held.Symbol)
		if err != nil {
			return "", err
		}
		if stock == nil {
			continue
		}
		change := 0.0
		if held.PurchasePrice != 0 {
			change = float64(stock.CurrentPrice-held.PurchasePrice) / float64(held.PurchasePrice) * 100
		}
		sign := "+"
		if change < 0 {
			sign = "-"
		}
		parts = append(parts, fmt.Sprintf("%dx %s (C: %d | bAt: %d | %s%.2f%%)",
			held.Quantity, held.Symbol, stock.CurrentPrice, held.PurchasePrice, sign, math.Abs(change)))
	}
	b.WriteString(strings.Join(parts, ", "))
	return b.String(), nil
}

func (s *service) IsListed(ctx context.Context, symbol string) (bool, error) {
	stock, err := s.stockRepo.GetStock(ctx, symbol)
	if err != nil {
		return false, err
	}
	return stock != nil, nil
}

func (s *service) getUserAndStock(ctx context.Context, username, symbol string) (*domain.User, *domain.Stock, error) {
	user, err := s.getUser(ctx, username)
	if err != nil {
		return nil, nil, err
	}
	stock, err := s.stockRepo.GetStock(ctx, symbol)
	if err != nil {
		return nil, nil, err
	}
	if stock == nil {
		return nil, nil, fmt.Errorf("%w: %s", domain.ErrStockNotFound, symbol)
	}
	return user, stock, nil
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

func findHolding(user *domain.User, symbol string) *domain.StockHolding {
	for i := range user.OwnedStocks {
		if user.OwnedStocks[i].Symbol == symbol {
			return &user.OwnedStocks[i]
		}
	}
	return nil
}

func removeHolding(user *domain.User, symbol string) {
	for i := range user.OwnedStocks {
		if user.OwnedStocks[i].Symbol == symbol {
			user.OwnedStocks = append(user.OwnedStocks[:i], user.OwnedStocks[i+1:]...)
			return
		}
	}
}
