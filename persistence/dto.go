package persistence

import "time"

// ScoreFileDTO is the on-disk layout of the score file
type ScoreFileDTO struct {
	Best    float64  `toml:"best"`
	History []RunDTO `toml:"history"`
}

// RunDTO records one finished game
type RunDTO struct {
	ID         string    `toml:"id"`
	Survived   float64   `toml:"survived"`
	FinishedAt time.Time `toml:"finished_at"`
}
