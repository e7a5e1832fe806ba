package command

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"sync"

	"github.com/dmaas/DumpsterBot_Go/internal/blackjack"
	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/duel"
	"github.com/dmaas/DumpsterBot_Go/internal/dumpster"
	"github.com/dmaas/DumpsterBot_Go/internal/emoji"
	"github.com/dmaas/DumpsterBot_Go/internal/lottery"
	"github.com/dmaas/DumpsterBot_Go/internal/metrics"
	"github.com/dmaas/DumpsterBot_Go/internal/quotes"
	"github.com/dmaas/DumpsterBot_Go/internal/stocks"
	"github.com/dmaas/DumpsterBot_Go/internal/user"
)

// Message is one inbound chat line, already attributed by the
// transport adapter.
type Message struct {
	Channel  string
	Username string
	Text     string
	IsMod    bool
}

// Services bundles everything the router dispatches to.
type Services struct {
	User      user.Service
	Duel      duel.Service
	Blackjack blackjack.Service
	Lottery   lottery.Service
	Dumpster  dumpster.Service
	Emoji     emoji.Service
	Stocks    stocks.Service
	Quotes    quotes.Service
}

// Router turns chat messages into service calls. Messages that aren't
// commands earn a point and advance the stock market one tick.
type Router struct {
	svc Services

	mu       sync.Mutex
	disabled map[string]bool // channels where the bot is switched off
}

// NewRouter creates a new command router
func NewRouter(svc Services) *Router {
	return &Router{
		svc:      svc,
		disabled: make(map[string]bool),
	}
}

// Handle processes one message and returns the reply to post, or ""
// when the message needs no reply. Rule rejections come back as
// replies; only infrastructure failures surface as errors.
func (r *Router) Handle(ctx context.Context, msg Message) (string, error) {
	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, Prefix) {
		return "", r.handleChatter(ctx, msg.Username)
	}

	fields := strings.Fields(text)
	cmd := strings.ToLower(strings.TrimPrefix(fields[0], Prefix))
	args := fields[1:]

	// Only mods can switch the bot back on.
	if cmd == "bot" {
		return r.handleToggle(msg, args)
	}
	if r.isDisabled(msg.Channel) {
		return "", nil
	}

	metrics.CommandsProcessed.WithLabelValues(cmd).Inc()

	reply, err := r.dispatch(ctx, msg, cmd, args)
	if err != nil {
		if userErr := userFacing(err); userErr != "" {
			metrics.CommandErrors.WithLabelValues(cmd).Inc()
			return fmt.Sprintf("@%s, %s", msg.Username, userErr), nil
		}
		return "", fmt.Errorf("command %q: %w", cmd, err)
	}
	return reply, nil
}

func (r *Router) dispatch(ctx context.Context, msg Message, cmd string, args []string) (string, error) {
	username := msg.Username

	switch cmd {
	case "points":
		return r.svc.User.Points(ctx, username)

	case "leaderboard":
		lines, err := r.svc.User.Leaderboard(ctx)
		if err != nil {
			return "", err
		}
		return strings.Join(lines, "\n"), nil

	case "donate":
		if len(args) != 2 {
			return msgDonateUsage, nil
		}
		amount, err := strconv.Atoi(args[1])
		if err != nil {
			return msgDonateUsage, nil
		}
		return r.svc.User.Donate(ctx, username, normalizeUser(args[0]), amount)

	case "gamble":
		if len(args) != 1 {
			return msgGambleUsage, nil
		}
		if strings.EqualFold(args[0], "all") {
			return r.svc.User.Gamble(ctx, username, 0, true)
		}
		bet, err := strconv.Atoi(args[0])
		if err != nil {
			return msgGambleUsage, nil
		}
		return r.svc.User.Gamble(ctx, username, bet, false)

	case "duel":
		if len(args) != 2 {
			return msgDuelUsage, nil
		}
		bet, err := strconv.Atoi(args[1])
		if err != nil {
			return msgDuelUsage, nil
		}
		return r.svc.Duel.Challenge(ctx, username, normalizeUser(args[0]), bet)

	case "accept":
		return r.svc.Duel.Accept(ctx, username)

	case "decline":
		return r.svc.Duel.Decline(ctx, username)

	case "blackjack":
		if len(args) != 1 {
			return msgBlackjackUse, nil
		}
		bet, err := r.resolveBet(ctx, username, args[0])
		if err != nil {
			return msgBlackjackUse, nil
		}
		return r.svc.Blackjack.Deal(ctx, username, bet)

	case "hit":
		return r.svc.Blackjack.Hit(ctx, username)

	case "double":
		return r.svc.Blackjack.DoubleDown(ctx, username)

	case "stand":
		return r.svc.Blackjack.Stand(ctx, username)

	case "lottery":
		if len(args) != 1 {
			return msgLotteryUsage, nil
		}
		if strings.EqualFold(args[0], "rules") {
			return r.svc.Lottery.Rules(), nil
		}
		pick, err := strconv.Atoi(args[0])
		if err != nil {
			return msgLotteryUsage, nil
		}
		return r.svc.Lottery.Roll(ctx, username, pick)

	case "scamball":
		return r.handleScamball(ctx, username, args)

	case "dumpsterdive":
		metrics.DumpsterDives.Inc()
		return r.svc.Dumpster.Dive(ctx, username)

	case "buy":
		return r.handleBuy(ctx, username, args)

	case "sell":
		return r.handleSell(ctx, username, args)

	case "store", "shop":
		return r.svc.Emoji.StoreListing(), nil

	case "collection":
		return r.svc.Emoji.Collection(ctx, username)

	case "portfolio", "mystocks":
		return r.svc.Stocks.Portfolio(ctx, username)

	case "stockmarket", "stocks":
		return r.svc.Stocks.Ticker(ctx)

	case "setpoints":
		if !msg.IsMod {
			return msgModOnly, nil
		}
		if len(args) != 2 {
			return msgSetPtsUsage, nil
		}
		points, err := strconv.Atoi(args[1])
		if err != nil {
			return msgSetPtsUsage, nil
		}
		return r.svc.User.SetPoints(ctx, normalizeUser(args[0]), points)

	case "resetpoints":
		if !msg.IsMod {
			return msgModOnly, nil
		}
		if len(args) != 1 || !strings.EqualFold(args[0], "confirm") {
			return msgResetConfirm, nil
		}
		var visible []string
		for _, e := range r.svc.Emoji.Catalog().Visible() {
			visible = append(visible, e.Character)
		}
		return r.svc.User.ResetAll(ctx, visible)

	default:
		if r.svc.Quotes != nil && r.svc.Quotes.IsCollection(cmd) {
			return r.svc.Quotes.Random(ctx, cmd)
		}
		// Unknown commands still count as chatter.
		return "", r.handleChatter(ctx, username)
	}
}

// handleChatter gives the message point and nudges the market.
func (r *Router) handleChatter(ctx context.Context, username string) error {
	metrics.MessagesProcessed.Inc()
	if err := r.svc.User.AccrueMessagePoint(ctx, username); err != nil {
		return err
	}
	return r.svc.Stocks.Tick(ctx)
}

func (r *Router) handleToggle(msg Message, args []string) (string, error) {
	if !msg.IsMod {
		return msgModOnly, nil
	}
	if len(args) != 1 {
		return "", nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	switch strings.ToLower(args[0]) {
	case "on":
		delete(r.disabled, msg.Channel)
		return msgBotEnabled, nil
	case "off":
		r.disabled[msg.Channel] = true
		return msgBotDisabled, nil
	}
	return "", nil
}

func (r *Router) handleScamball(ctx context.Context, username string, args []string) (string, error) {
	switch {
	case len(args) == 1 && strings.EqualFold(args[0], "rules"):
		return r.svc.Lottery.ScamballRules(ctx)
	case len(args) == 1 && strings.EqualFold(args[0], "autopick"):
		numbers, special := r.svc.Lottery.Autopick()
		return r.svc.Lottery.ScamballRoll(ctx, username, numbers, special)
	case len(args) == 6:
		picks := make([]int, 0, 6)
		for _, a := range args {
			n, err := strconv.Atoi(a)
			if err != nil {
				return msgScamballUsage, nil
			}
			picks = append(picks, n)
		}
		return r.svc.Lottery.ScamballRoll(ctx, username, picks[:5], picks[5])
	default:
		return msgScamballUsage, nil
	}
}

// handleBuy tries the emoji store first, then the stock market.
func (r *Router) handleBuy(ctx context.Context, username string, args []string) (string, error) {
	if len(args) == 0 {
		return msgBuyUsage, nil
	}

	if r.svc.Emoji.Catalog().Find(args[0]) != nil {
		return r.svc.Emoji.Buy(ctx, username, args[0])
	}

	symbol := strings.ToUpper(args[0])
	listed, err := r.svc.Stocks.IsListed(ctx, symbol)
	if err != nil {
		return "", err
	}
	if !listed {
		return msgUnknownStock, nil
	}

	quantity := 1
	if len(args) > 1 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil {
			return msgBuyUsage, nil
		}
	}
	return r.svc.Stocks.Buy(ctx, username, symbol, quantity)
}

func (r *Router) handleSell(ctx context.Context, username string, args []string) (string, error) {
	if len(args) == 0 {
		return msgSellUsage, nil
	}

	if r.svc.Emoji.Catalog().Find(args[0]) != nil {
		return r.svc.Emoji.Sell(ctx, username, args[0])
	}

	symbol := strings.ToUpper(args[0])
	listed, err := r.svc.Stocks.IsListed(ctx, symbol)
	if err != nil {
		return "", err
	}
	if !listed {
		return msgUnknownStock, nil
	}

	quantity := 1
	if len(args) > 1 {
		quantity, err = strconv.Atoi(args[1])
		if err != nil {
			return msgSellUsage, nil
		}
	}
	return r.svc.Stocks.Sell(ctx, username, symbol, quantity)
}

// resolveBet parses a bet argument, with "all" meaning the player's
// whole balance.
func (r *Router) resolveBet(ctx context.Context, username, arg string) (int, error) {
	if strings.EqualFold(arg, "all") {
		u, err := r.svc.User.GetOrRegister(ctx, username)
		if err != nil {
			return 0, err
		}
		return u.Points, nil
	}
	return strconv.Atoi(arg)
}

func (r *Router) isDisabled(channel string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.disabled[channel]
}

// normalizeUser strips a leading @ from user arguments.
func normalizeUser(arg string) string {
	return strings.TrimPrefix(arg, "@")
}

// userFacing returns the reply text for rule rejections, or "" when
// the error is infrastructure and shouldn't reach chat.
func userFacing(err error) string {
	for _, sentinel := range []error{
		domain.ErrUserNotFound,
		domain.ErrInvalidInput,
		domain.ErrInvalidBet,
		domain.ErrInsufficientPoints,
		domain.ErrNotSellable,
		domain.ErrAlreadyOwned,
		domain.ErrNotOwned,
		domain.ErrAlreadyPlaying,
		domain.ErrNotPlaying,
		domain.ErrStockNotFound,
		domain.ErrAlreadyDueling,
		domain.ErrNotDueling,
		domain.ErrOnCooldown,
		domain.ErrBanned,
	} {
		if errors.Is(err, sentinel) {
			return err.Error()
		}
	}
	return ""
}
