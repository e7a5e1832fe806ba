package dumpster

import (
	"context"
	"fmt"
	"math"
	"time"

	"github.com/dmaas/DumpsterBot_Go/internal/domain"
	"github.com/dmaas/DumpsterBot_Go/internal/emoji"
	"github.com/dmaas/DumpsterBot_Go/internal/logger"
	"github.com/dmaas/DumpsterBot_Go/internal/random"
	"github.com/dmaas/DumpsterBot_Go/internal/repository"
)

// Service resolves one dumpster dive per call: a single weighted draw
// over companion pet, priced emoji, and a cascade of point/penalty
// bands.
type Service interface {
	Dive(ctx context.Context, username string) (string, error)
}

type service struct {
	userRepo    repository.User
	lotteryRepo repository.Lottery
	catalog     emoji.Catalog
	rng         random.Source
	now         func() time.Time // injectable for cooldown tests
}

// NewService creates a new dumpster dive service
func NewService(userRepo repository.User, lotteryRepo repository.Lottery, catalog emoji.Catalog, rng random.Source) Service {
	return &service{
		userRepo:    userRepo,
		lotteryRepo: lotteryRepo,
		catalog:     catalog,
		rng:         rng,
		now:         time.Now,
	}
}

// Dive checks the ban and cooldown gates, stamps the cooldown, and
// resolves one draw. The cooldown is consumed even when the draw pays
// nothing.
func (s *service) Dive(ctx context.Context, username string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := s.getUser(ctx, username)
	if err != nil {
		return "", err
	}

	now := s.now()
	if user.DumpsterBanUntil != nil && user.DumpsterBanUntil.After(now) {
		return "", fmt.Errorf("%w: the police have banned you from this dumpster! Come back on %s",
			domain.ErrBanned, user.DumpsterBanUntil.Format("1/2/2006"))
	}
	if user.LastDumpsterDive != nil {
		elapsed := now.Sub(*user.LastDumpsterDive)
		if elapsed < Cooldown {
			minutesLeft := int(math.Ceil((Cooldown - elapsed).Minutes()))
			return "", fmt.Errorf("%w: security's watching your dumpster, so you can't dive in it yet! (%d minutes until cooldown ends)",
				domain.ErrOnCooldown, minutesLeft)
		}
	}

	user.LastDumpsterDive = &now
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}

	roll := s.rng.Float64()
	log.Debug("Dumpster dive roll", "username", username, "roll", roll)

	if roll < RaccoonChance {
		return s.resolveRaccoon(ctx, user)
	}

	// Price-weighted emoji buckets cover [0, TotalEmojiChance).
	for _, bucket := range emojiBuckets(s.catalog) {
		if roll < bucket.threshold {
			return s.resolveEmojiFind(ctx, user, bucket.emoji)
		}
	}

	return s.resolveCascade(ctx, user, roll)
}

func (s *service) resolveRaccoon(ctx context.Context, user *domain.User) (string, error) {
	raccoon := s.catalog.Find(emoji.RaccoonCharacter)
	if raccoon == nil {
		return fmt.Sprintf("@%s, you dove in the dumpster but found nothing interesting. You now have %d points.",
			user.Username, user.Points), nil
	}
	if user.OwnsEmoji(raccoon.Character) {
		return fmt.Sprintf("@%s, you dove in the dumpster and found... another raccoon!? But %s scared it off... You now have %d points.",
			user.Username, raccoon.Character, user.Points), nil
	}

	user.EmojiCollection = append(user.EmojiCollection, raccoon.Character)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info("Raccoon found", "username", user.Username)
	return fmt.Sprintf("@%s, you dove in the dumpster and found... a raccoon!? %s is now your lifelong pal! (check your !collection) You now have %d points.",
		user.Username, raccoon.Character, user.Points), nil
}

func (s *service) resolveEmojiFind(ctx context.Context, user *domain.User, found domain.Emoji) (string, error) {
	if user.OwnsEmoji(found.Character) {
		return fmt.Sprintf("@%s, you dove in the dumpster and found a %s, but you already have one! You threw it back in the dumpster. You now have %d points.",
			user.Username, found.Character, user.Points), nil
	}

	user.EmojiCollection = append(user.EmojiCollection, found.Character)
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info("Emoji found in dumpster", "username", user.Username, "emoji", found.Alias)
	return fmt.Sprintf("@%s, you dove in the dumpster and found a %s! You now have %d points.",
		user.Username, found.Character, user.Points), nil
}

// resolveCascade walks the disjoint bands above the emoji mass. The
// thresholds accumulate so every band has exactly its stated width.
func (s *service) resolveCascade(ctx context.Context, user *domain.User, roll float64) (string, error) {
	log := logger.FromContext(ctx)
	threshold := TotalEmojiChance

	if threshold += ScamballTicketChance; roll < threshold {
		state, err := s.lotteryRepo.GetLotteryState(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to get lottery state: %w", err)
		}
		prize := state.ScamballJackpot
		user.Points += prize
		state.ScamballJackpot = domain.ScamballJackpotSeed
		if err := s.saveBoth(ctx, user, state); err != nil {
			return "", err
		}
		log.Info("Scamball ticket found in dumpster", "username", user.Username, "prize", prize)
		return fmt.Sprintf("@%s, you dove in the dumpster and found a winning scamball ticket! You won %d points! You now have %d points!",
			user.Username, prize, user.Points), nil
	}

	if threshold += LotteryTicketChance; roll < threshold {
		state, err := s.lotteryRepo.GetLotteryState(ctx)
		if err != nil {
			return "", fmt.Errorf("failed to get lottery state: %w", err)
		}
		prize := domain.LotteryBasePrize + state.LotteryBonus
		user.Points += prize
		state.LotteryBonus = 0
		if err := s.saveBoth(ctx, user, state); err != nil {
			return "", err
		}
		log.Info("Lottery ticket found in dumpster", "username", user.Username, "prize", prize)
		return fmt.Sprintf("@%s, you dove in the dumpster and found a winning lottery ticket! You won %d points! You now have %d points!",
			user.Username, prize, user.Points), nil
	}

	if threshold += LargePointsChance; roll < threshold {
		return s.awardPoints(ctx, user, LargePointsAward)
	}

	if threshold += PoliceChance; roll < threshold {
		return s.resolvePolice(ctx, user)
	}

	if threshold += JunkBandChance; roll < threshold {
		return fmt.Sprintf("@%s, you dove in the dumpster and found rotten food. Yuck! You now have %d points.",
			user.Username, user.Points), nil
	}
	if threshold += JunkBandChance; roll < threshold {
		return fmt.Sprintf("@%s, you dove in the dumpster and found trash. Great. You now have %d points.",
			user.Username, user.Points), nil
	}
	if threshold += JunkBandChance; roll < threshold {
		return fmt.Sprintf("@%s, you dove in the dumpster and found some rocks. Why were these even in here? You now have %d points.",
			user.Username, user.Points), nil
	}

	if threshold += SmallPointsChance; roll < threshold {
		return s.awardPoints(ctx, user, SmallPointsAward)
	}

	if threshold += TinyPointsChance; roll < threshold {
		return s.awardPoints(ctx, user, TinyPointsAward)
	}

	return fmt.Sprintf("@%s, you dove in the dumpster and found nothing. Yippee. You now have %d points.",
		user.Username, user.Points), nil
}

func (s *service) resolvePolice(ctx context.Context, user *domain.User) (string, error) {
	state, err := s.lotteryRepo.GetLotteryState(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to get lottery state: %w", err)
	}

	percent := random.IntRange(s.rng, PoliceMinPercent, PoliceMaxPercent)
	fine := user.Points * percent / 100
	user.Points -= fine
	state.ScamballJackpot += fine

	banUntil := s.now().Add(BanDuration)
	user.DumpsterBanUntil = &banUntil

	if err := s.saveBoth(ctx, user, state); err != nil {
		return "", err
	}
	logger.FromContext(ctx).Info("Police encounter", "username", user.Username, "percent", percent, "fine", fine)
	return fmt.Sprintf("@%s, you dove in the dumpster and... were caught trespassing by the police! They have seized %d%% of your points and banned you from dumpster diving for 30 days! You now have %d points.",
		user.Username, percent, user.Points), nil
}

func (s *service) awardPoints(ctx context.Context, user *domain.User, amount int) (string, error) {
	user.Points += amount
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return "", err
	}
	return fmt.Sprintf("@%s, you dove in the dumpster and found %d points! You now have %d points!",
		user.Username, amount, user.Points), nil
}

func (s *service) saveBoth(ctx context.Context, user *domain.User, state *domain.LotteryState) error {
	if err := s.userRepo.UpdateUser(ctx, user); err != nil {
		return err
	}
	if err := s.lotteryRepo.UpdateLotteryState(ctx, state); err != nil {
		return fmt.Errorf("failed to update lottery state: %w", err)
	}
	return nil
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
