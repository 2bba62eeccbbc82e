package controller

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/mmerenich21/sunday-funday-slack-scoreboard/model"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/platforms/yahoo"
	"golang.org/x/oauth2"
)

// C encapsulates business logic without worrying about any web layers
type C interface {
	// GetScoreboard builds the full scoreboard message text for the
	// configured teams.
	GetScoreboard(ctx context.Context) (string, error)
}

// Settings selects which scoreboard strategy runs and which identifiers
// it covers. Loaded once at startup and never mutated.
type Settings struct {
	Strategy  model.Strategy
	TeamKeys  []string // team and roster strategies
	LeagueKey string   // league strategy
	TeamIDs   []int    // league strategy
	Week      int      // roster strategy
}

type controller struct {
	yahoo      *yahoo.Client
	httpClient *http.Client
	settings   Settings
}

func New(yahooClient *yahoo.Client, yahooConfig *oauth2.Config, refreshToken string, settings Settings) (C, error) {
	if err := validateSettings(settings); err != nil {
		return nil, err
	}
	if yahooConfig == nil {
		return nil, errors.New("yahoo oauth config must be provided")
	}
	if refreshToken == "" {
		return nil, errors.New("yahoo refresh token must be provided")
	}

	c := &controller{
		yahoo:      yahooClient,
		httpClient: newAuthClient(yahooConfig, refreshToken),
		settings:   settings,
	}
	return c, nil
}

func validateSettings(s Settings) error {
	switch s.Strategy {
	case model.StrategyTeam:
		if len(s.TeamKeys) == 0 {
			return errors.New("team strategy requires at least one team key")
		}
	case model.StrategyRoster:
		if len(s.TeamKeys) == 0 {
			return errors.New("roster strategy requires at least one team key")
		}
		if s.Week < 1 {
			return fmt.Errorf("roster strategy requires a week >= 1, got: %d", s.Week)
		}
	case model.StrategyLeague:
		if s.LeagueKey == "" {
			return errors.New("league strategy requires a league key")
		}
		if len(s.TeamIDs) == 0 {
			return errors.New("league strategy requires at least one team id")
		}
	default:
		return fmt.Errorf("unknown scoreboard strategy: '%s'", s.Strategy)
	}
	return nil
}
