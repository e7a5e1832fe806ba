package postgres

// SQL statements for the user repository
const (
	sqlSelectUserByUsername = `
		SELECT id, username, points, blackjack_bet, blackjack_hand, dealer_hand,
		       is_dueling, duel_initiator, duel_opponent, duel_bet,
		       owned_stocks, emoji_collection, last_dumpster_dive, dumpster_ban_until
		FROM users
		WHERE username = $1`

	sqlUpsertUser = `
		INSERT INTO users (username, points, blackjack_bet, blackjack_hand, dealer_hand,
		                   is_dueling, duel_initiator, duel_opponent, duel_bet,
		                   owned_stocks, emoji_collection, last_dumpster_dive, dumpster_ban_until)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (username) DO UPDATE SET
			points = EXCLUDED.points,
			blackjack_bet = EXCLUDED.blackjack_bet,
			blackjack_hand = EXCLUDED.blackjack_hand,
			dealer_hand = EXCLUDED.dealer_hand,
			is_dueling = EXCLUDED.is_dueling,
			duel_initiator = EXCLUDED.duel_initiator,
			duel_opponent = EXCLUDED.duel_opponent,
			duel_bet = EXCLUDED.duel_bet,
			owned_stocks = EXCLUDED.owned_stocks,
			emoji_collection = EXCLUDED.emoji_collection,
			last_dumpster_dive = EXCLUDED.last_dumpster_dive,
			dumpster_ban_until = EXCLUDED.dumpster_ban_until,
			updated_at = NOW()
		RETURNING id`

	sqlUpdateUser = `
		UPDATE users SET
			points = $2,
			blackjack_bet = $3,
			blackjack_hand = $4,
			dealer_hand = $5,
			is_dueling = $6,
			duel_initiator = $7,
			duel_opponent = $8,
			duel_bet = $9,
			owned_stocks = $10,
			emoji_collection = $11,
			last_dumpster_dive = $12,
			dumpster_ban_until = $13,
			updated_at = NOW()
		WHERE id = $1`

	sqlSelectTopUsers = `
		SELECT id, username, points, blackjack_bet, blackjack_hand, dealer_hand,
		       is_dueling, duel_initiator, duel_opponent, duel_bet,
		       owned_stocks, emoji_collection, last_dumpster_dive, dumpster_ban_until
		FROM users
		ORDER BY points DESC
		LIMIT $1`

	sqlSelectAllUsers = `
		SELECT id, username, points, blackjack_bet, blackjack_hand, dealer_hand,
		       is_dueling, duel_initiator, duel_opponent, duel_bet,
		       owned_stocks, emoji_collection, last_dumpster_dive, dumpster_ban_until
		FROM users
		ORDER BY username`
)

// SQL statements for the lottery repository
const (
	sqlSelectLotteryState = `
		SELECT id, lottery_bonus, scamball_jackpot FROM lottery_state WHERE id = 1`

	sqlInsertLotteryState = `
		INSERT INTO lottery_state (id, lottery_bonus, scamball_jackpot)
		VALUES (1, 0, $1)
		ON CONFLICT (id) DO NOTHING`

	sqlUpdateLotteryState = `
		UPDATE lottery_state SET lottery_bonus = $1, scamball_jackpot = $2 WHERE id = 1`
)

// SQL statements for the stock repository
const (
	sqlSelectStock = `
		SELECT symbol, current_price, last_price FROM stocks WHERE symbol = $1`

	sqlSelectAllStocks = `
		SELECT symbol, current_price, last_price FROM stocks ORDER BY symbol`

	sqlUpsertStock = `
		INSERT INTO stocks (symbol, current_price, last_price)
		VALUES ($1, $2, $3)
		ON CONFLICT (symbol) DO UPDATE SET
			current_price = EXCLUDED.current_price,
			last_price = EXCLUDED.last_price,
			updated_at = NOW()`

	sqlDeleteStock = `DELETE FROM stocks WHERE symbol = $1`
)
