package models

// LeaderboardEntry is one scored player in a running or finished game
type LeaderboardEntry struct {
	// PlayerID is the Discord user ID of the player
	PlayerID string

	// PlayerName is the display name of the player
	PlayerName string

	// Score is the number of rounds the player answered correctly
	Score int
}

// Leaderboard represents the current standings in a game
type Leaderboard struct {
	// SessionID is the unique identifier for the game session
	SessionID string

	// Entries is sorted by score descending, ties in join order
	Entries []*LeaderboardEntry
}
