package user

// LeaderboardSize is how many chatters the leaderboard shows.
const LeaderboardSize = 5

// Gamble roll bounds; rolls at or above GambleWinThreshold double the bet.
const (
	GambleRollMax      = 100
	GambleWinThreshold = 50
)
