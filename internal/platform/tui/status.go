package tui

import "fmt"

// Status is the blocks.StatusSink of the terminal host. It keeps the last
// values reported by the engine for the HUD and the game-over dialog.
type Status struct {
	Score     int
	Level     int
	Over      bool
	Final     int
	GamesOver int // game-over notifications received
}

// ScoreChanged records the new score and level.
func (s *Status) ScoreChanged(score, level int) {
	s.Score = score
	s.Level = level
	s.Over = false
}

// GameOver records the final score.
func (s *Status) GameOver(finalScore int) {
	s.Over = true
	s.Final = finalScore
	s.GamesOver++
}

// Line returns the status label text.
func (s *Status) Line() string {
	return fmt.Sprintf("Level: %d, Score: %d", s.Level, s.Score)
}

// GameOverText returns the lines of the game-over dialog.
func (s *Status) GameOverText() []string {
	return []string{
		"Game Over",
		fmt.Sprintf("You scored %d points.", s.Final),
	}
}
