package app

import (
	"fmt"

	"maze-caster/internal/game"
)

// NewSession builds the maze, render configuration and start pose described
// by c. Every front end goes through here.
func (c *Config) NewSession() (*game.Session, error) {
	grid, err := c.Maze()
	if err != nil {
		return nil, fmt.Errorf("maze: %w", err)
	}
	rc, err := c.Render()
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	mode, err := c.ViewMode()
	if err != nil {
		return nil, err
	}
	s, err := game.New(grid, rc, game.StartPose(grid, rc), nil)
	if err != nil {
		return nil, err
	}
	s.SetMode(mode)
	return s, nil
}
