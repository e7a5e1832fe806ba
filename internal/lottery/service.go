package lottery

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/metrics"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
)

// Service runs the two lottery variants against the shared pot record.
type Service interface {
	// Roll buys a single-number ticket on pick (1-1000).
	Roll(ctx context.Context, username string, pick int) (string, error)
	// ScamballRoll buys a scamball ticket: 5 distinct numbers in 1-69
	// plus a special number in 1-26.
	ScamballRoll(ctx context.Context, username string, numbers []int, special int) (string, error)
	// Autopick generates a random valid scamball ticket, sorted ascending.
	Autopick() (numbers []int, special int)
	// Rules and ScamballRules return the static help lines.
	Rules() string
	ScamballRules(ctx context.Context) (string, error)
}

type service struct {
	userRepo    repository.User
	lotteryRepo repository.Lottery
	rng         random.Source
	printer     *message.Printer
}

// NewService creates a new lottery service
func NewService(userRepo repository.User, lotteryRepo repository.Lottery, rng random.Source) Service {
	return &service{
		userRepo:    userRepo,
		lotteryRepo: lotteryRepo,
		rng:         rng,
		printer:     message.NewPrinter(language.English),
	}
}

// Roll resolves a single-number ticket. A losing ticket always feeds
// the bonus pot; a win takes the base prize plus the whole pot.
func (s *service) Roll(ctx context.Context, username string, pick int) (string, error) {
	log := logger.FromContext(ctx)

	if pick < PickMin || pick > PickMax {
		return "", fmt.Errorf("%w: pick a number between %d and %d", domain.ErrInvalidInput, PickMin, PickMax)
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if user.Points < TicketPrice {
		return "", fmt.Errorf("%w: you need %d more points to buy a lottery ticket", domain.ErrInsufficientPoints, TicketPrice-user.Points)
	}

	state, err := s.lotteryRepo.GetLotteryState(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get lottery state: %w", err)
	}

	user.Points -= TicketPrice
	metrics.PointsWagered.WithLabelValues("lottery").Add(float64(TicketPrice))
	winning := random.IntRange(s.rng, PickMin, PickMax)

	if pick == winning {
		prize := domain.LotteryBasePrize + state.LotteryBonus
		user.Points += prize
		state.LotteryBonus = 0
		if err := s.saveBoth(ctx, user, state); err != nil {
			return "", err
		}
		metrics.PointsPaidOut.WithLabelValues("lottery").Add(float64(prize))
		log.Info("Lottery jackpot won", "username", username, "prize", prize)
		return fmt.Sprintf("Congratulations! %s won the lottery! The winning number was %d. %s now has %d points",
			username, winning, username, user.Points), nil
	}

	state.LotteryBonus += LosingFeed
	if err := s.saveBoth(ctx, user, state); err != nil {
		return "", err
	}
	return fmt.Sprintf("Better luck next time! The winning number was %d. The jackpot is now %d points. %s now has %d points",
		winning, domain.LotteryBasePrize+state.LotteryBonus, username, user.Points), nil
}

// ScamballRoll resolves a scamball ticket against freshly drawn
// winning numbers and the tiered payout table.
func (s *service) ScamballRoll(ctx context.Context, username string, numbers []int, special int) (string, error) {
	log := logger.FromContext(ctx)

	if err := validateTicket(numbers, special); err != nil {
		return "", err
	}

	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}
	if user.Points < ScamballTicketPrice {
		return "", fmt.Errorf("%w: you need %d more points to buy a scamball ticket", domain.ErrInsufficientPoints, ScamballTicketPrice-user.Points)
	}

	state, err := s.lotteryRepo.GetLotteryState(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get lottery state: %w", err)
	}

	user.Points -= ScamballTicketPrice

	winningNumbers := s.drawDistinct(ScamballNumberCount, ScamballNumberMax)
	winningSpecial := random.IntRange(s.rng, 1, ScamballSpecialMax)

	matches := countMatches(numbers, winningNumbers)
	specialHit := special == winningSpecial

	var prize int
	if matches == ScamballNumberCount && specialHit {
		prize = state.ScamballJackpot
		state.ScamballJackpot = domain.ScamballJackpotSeed
		log.Info("Scamball jackpot won", "username", username, "prize", prize)
	} else {
		state.ScamballJackpot += ScamballFeed
		prize = Payout(matches, specialHit)
	}

	user.Points += prize
	if err := s.saveBoth(ctx, user, state); err != nil {
		return "", err
	}

	metrics.PointsWagered.WithLabelValues("scamball").Add(float64(ScamballTicketPrice))
	if prize > 0 {
		metrics.PointsPaidOut.WithLabelValues("scamball").Add(float64(prize))
	}
	return formatScamballResult(username, matches, specialHit, winningNumbers, winningSpecial, prize, state.ScamballJackpot, user.Points), nil
}

// Payout returns the prize for a non-jackpot outcome. The jackpot row
// (5 matches plus special) is handled by the caller because it drains
// the rolling pot.
func Payout(matches int, specialHit bool) int {
	switch {
	case matches == 5:
		return PrizeFiveMatches
	case matches == 4 && specialHit:
		return PrizeFourWithSpecial
	case matches == 4:
		return PrizeFourMatches
	case matches == 3 && specialHit:
		return PrizeThreeWithSpecial
	case matches == 3:
		return PrizeThreeMatches
	case matches == 2 && specialHit:
		return PrizeTwoWithSpecial
	case matches == 1 && specialHit:
		return PrizeOneWithSpecial
	case specialHit:
		return PrizeSpecialOnly
	default:
		return 0
	}
}

// Autopick draws a random valid ticket, numbers sorted ascending.
func (s *service) Autopick() ([]int, int) {
	numbers := s.drawDistinct(ScamballNumberCount, ScamballNumberMax)
	sort.Ints(numbers)
	return numbers, random.IntRange(s.rng, 1, ScamballSpecialMax)
}

func (s *service) Rules() string {
	return s.printer.Sprintf("Lottery Rules: Cost is %d points per ticket. Pick a number between %d-%d. "+
		"If your number matches the winning number, you win the jackpot (%d points + bonus pot)! "+
		"Every losing ticket adds %d points to the bonus pot.",
		TicketPrice, PickMin, PickMax, domain.LotteryBasePrize, LosingFeed)
}

func (s *service) ScamballRules(ctx context.Context) (string, error) {
	state, err := s.lotteryRepo.GetLotteryState(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get lottery state: %w", err)
	}
	return s.printer.Sprintf("Scamball Rules: Cost is %d points per ticket. Pick 5 different numbers (1-%d) and 1 scamball number (1-%d). "+
		"Format: !scamball n1 n2 n3 n4 n5 (s) or !scamball autopick. Prizes: Match 5+SB=Jackpot, 5=1M, 4+SB=50k, 4=100, 3+SB=100, "+
		"3=7, 2+SB=7, 1+SB=4, SB=4 points. Current jackpot: %d points.",
		ScamballTicketPrice, ScamballNumberMax, ScamballSpecialMax, state.ScamballJackpot), nil
}

// drawDistinct draws count distinct numbers uniformly from [1, max].
func (s *service) drawDistinct(count, max int) []int {
	drawn := make([]int, 0, count)
	seen := make(map[int]bool, count)
	for len(drawn) < count {
		n := random.IntRange(s.rng, 1, max)
		if !seen[n] {
			seen[n] = true
			drawn = append(drawn, n)
		}
	}
	return drawn
}

func validateTicket(numbers []int, special int) error {
	if len(numbers) != ScamballNumberCount {
		return fmt.Errorf("%w: please enter exactly %d numbers between 1-%d", domain.ErrInvalidInput, ScamballNumberCount, ScamballNumberMax)
	}
	seen := make(map[int]bool, len(numbers))
	for _, n := range numbers {
		if n < 1 || n > ScamballNumberMax {
			return fmt.Errorf("%w: all numbers must be between 1 and %d", domain.ErrInvalidInput, ScamballNumberMax)
		}
		if seen[n] {
			return fmt.Errorf("%w: all numbers must be different", domain.ErrInvalidInput)
		}
		seen[n] = true
	}
	if special < 1 || special > ScamballSpecialMax {
		return fmt.Errorf("%w: scamball number must be between 1 and %d", domain.ErrInvalidInput, ScamballSpecialMax)
	}
	return nil
}

func countMatches(picked, winning []int) int {
	inWinning := make(map[int]bool, len(winning))
	for _, n := range winning {
		inWinning[n] = true
	}
	matches := 0
	for _, n := range picked {
		if inWinning[n] {
			matches++
		}
	}
	return matches
}

func formatScamballResult(username string, matches int, specialHit bool, winningNumbers []int, winningSpecial, prize, jackpot, balance int) string {
	plural := "s"
	if matches == 1 {
		plural = ""
	}
	specialNote := ""
	if specialHit {
		specialNote = " and the scamball"
	}
	prizeNote := ""
	if prize > 0 {
		prizeNote = fmt.Sprintf("Won %d points! ", prize)
	}

	parts := make([]string, len(winningNumbers))
	for i, n := range winningNumbers {
		parts[i] = fmt.Sprintf("%d", n)
	}

	return fmt.Sprintf("%s matched %d number%s%s! Winning numbers: %s (%d). %sCurrent jackpot: %d points. %s now has %d points",
		username, matches, plural, specialNote, strings.Join(parts, ", "), winningSpecial, prizeNote, jackpot, username, balance)
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

// saveBoth persists the player first, then the pot record. A failure
// between the two is tolerated as last-write-wins (no transaction
// layer, by design).
func (s *service) saveBoth(ctx context.Context, user *domain.User, state *domain.LotteryState) error {
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}
	if err := s.lotteryRepo.UpdateLotteryState(ctx, state); err != nil {
		return fmt.Errorf("failed to update lottery state: %w", err)
	}
	return nil
}
