package models

// FoundWord is one solved daily word in a player's history.
type FoundWord struct {
	Word       string   `json:"word"`
	Category   Category `json:"category"`
	Date       string   `json:"date"`
	GuessCount int      `json:"guessCount"`
}

// UserStats is the lifetime aggregate over one player's game records.
// A player with no records has all-zero stats and an empty FoundWords list.
type UserStats struct {
	Username       string      `json:"username"`
	TotalGames     int         `json:"totalGames"`
	GamesWon       int         `json:"gamesWon"`
	AverageGuesses float64     `json:"averageGuesses"` // over won games, 1 decimal
	BestGuess      int         `json:"bestGuess"`
	CurrentStreak  int         `json:"currentStreak"`
	MaxStreak      int         `json:"maxStreak"`
	FoundWords     []FoundWord `json:"foundWords"`
}

// LeaderboardEntry is one ranked row of the global leaderboard.
type LeaderboardEntry struct {
	Username       string  `json:"username"`
	TotalGames     int     `json:"totalGames"`
	GamesWon       int     `json:"gamesWon"`
	WinRate        int     `json:"winRate"` // percentage, rounded
	AverageGuesses float64 `json:"averageGuesses"`
	CurrentStreak  int     `json:"currentStreak"`
}

// GuessPattern is one of the fastest winning guess sequences for a date,
// shown for social comparison.
type GuessPattern struct {
	Username   string   `json:"username"`
	Guesses    []string `json:"guesses"`
	GuessCount int      `json:"guessCount"`
}
