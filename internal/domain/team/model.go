package team

import "fmt"

// Team is one roster entry inside a league-season.
type Team struct {
	Key          string
	LeagueKey    string
	Name         string
	ManagerNames string
}

func (t Team) Validate() error {
	if t.Key == "" {
		return fmt.Errorf("team key is required")
	}
	if t.LeagueKey == "" {
		return fmt.Errorf("team league key is required")
	}
	if t.Name == "" {
		return fmt.Errorf("team name is required")
	}

	return nil
}
