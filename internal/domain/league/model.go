package league

import "fmt"

// League is one fantasy league tracked for a single competitive season.
type League struct {
	Key      string
	Name     string
	Season   string
	GameCode string
	NumTeams int
}

func (l League) Validate() error {
	if l.Key == "" {
		return fmt.Errorf("league key is required")
	}
	if l.Name == "" {
		return fmt.Errorf("league name is required")
	}
	if l.Season == "" {
		return fmt.Errorf("league season is required")
	}

	return nil
}
