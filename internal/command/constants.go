package command

// Prefix starts every chat command.
const Prefix = "!"

// Reply text that doesn't belong to any one game.
const (
	msgBotEnabled    = "Bot enabled"
	msgBotDisabled   = "Bot disabled"
	msgModOnly       = "That command is for mods only"
	msgResetConfirm  = "This resets EVERY user to 1000 points and wipes portfolios and store emojis. Type !resetpoints confirm to proceed."
	msgUnknownStock  = "That's not an emoji in the store or a stock on the market"
	msgGambleUsage   = "Usage: !gamble <points|all>"
	msgDonateUsage   = "Usage: !donate <user> <points>"
	msgDuelUsage     = "Usage: !duel <user> <points>"
	msgLotteryUsage  = "Usage: !lottery <1-1000> or !lottery rules"
	msgScamballUsage = "Usage: !scamball <n1> <n2> <n3> <n4> <n5> <special>, !scamball autopick, or !scamball rules"
	msgBuyUsage      = "Usage: !buy <emoji> or !buy <symbol> <quantity>"
	msgSellUsage     = "Usage: !sell <emoji> or !sell <symbol> <quantity>"
	msgSetPtsUsage   = "Usage: !setpoints <user> <points>"
	msgBlackjackUse  = "Usage: !blackjack <bet|all>"
)
