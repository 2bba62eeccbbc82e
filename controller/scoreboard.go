package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/mmerenich21/sunday-funday-slack-scoreboard/model"
)

func (c *controller) GetScoreboard(ctx context.Context) (string, error) {
	var lines []string
	var err error

	switch c.settings.Strategy {
	case model.StrategyTeam:
		lines = c.teamLines(ctx)
	case model.StrategyRoster:
		lines = c.rosterLines(ctx)
	case model.StrategyLeague:
		lines, err = c.leagueLines(ctx)
	default:
		err = fmt.Errorf("unknown scoreboard strategy: '%s'", c.settings.Strategy)
	}
	if err != nil {
		return "", err
	}

	return model.FormatScoreboard(lines), nil
}

// teamLines fetches each configured team's stats resource directly. A
// failed fetch becomes an inline error line for that team and the rest of
// the teams are still processed, in configured order.
func (c *controller) teamLines(ctx context.Context) []string {
	lines := make([]string, 0, len(c.settings.TeamKeys))
	for _, key := range c.settings.TeamKeys {
		score, err := c.yahoo.GetTeamStats(ctx, c.httpClient, key)
		if err != nil {
			log.Printf("error fetching stats for team %s: %v", key, err)
			lines = append(lines, model.FormatErrorLine(key, err))
			continue
		}
		lines = append(lines, score.FormatLine())
	}
	return lines
}

// rosterLines sums weekly player stats across each configured team's
// roster. A failed roster fetch becomes an inline error line; a failed
// player fetch is logged and skipped so the sum still completes.
func (c *controller) rosterLines(ctx context.Context) []string {
	lines := make([]string, 0, len(c.settings.TeamKeys))
	for _, key := range c.settings.TeamKeys {
		line, err := c.rosterLine(ctx, key)
		if err != nil {
			log.Printf("error rolling up roster for team %s: %v", key, err)
			lines = append(lines, model.FormatErrorLine(key, err))
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

func (c *controller) rosterLine(ctx context.Context, teamKey string) (string, error) {
	roster, err := c.yahoo.GetRoster(ctx, c.httpClient, teamKey)
	if err != nil {
		return "", err
	}

	score := &model.TeamScore{Key: teamKey, Name: roster.Name}
	for _, playerKey := range roster.PlayerKeys {
		p, err := c.yahoo.GetPlayerStats(ctx, c.httpClient, playerKey, c.settings.Week)
		if err != nil {
			log.Printf("skipping player %s on team %s: %v", playerKey, teamKey, err)
			continue
		}
		score.Current += p.Current
		score.Projected += p.Projected
	}

	return score.FormatLine(), nil
}

// leagueLines fetches the full team list for the configured league and
// keeps only the configured team ids, preserving the order the league
// resource returned them in.
func (c *controller) leagueLines(ctx context.Context) ([]string, error) {
	teams, err := c.yahoo.GetLeagueTeams(ctx, c.httpClient, c.settings.LeagueKey)
	if err != nil {
		return nil, fmt.Errorf("error fetching teams for league %s: %w", c.settings.LeagueKey, err)
	}

	wanted := make(map[int]bool, len(c.settings.TeamIDs))
	for _, id := range c.settings.TeamIDs {
		wanted[id] = true
	}

	lines := make([]string, 0, len(c.settings.TeamIDs))
	for _, t := range teams {
		if !wanted[t.ID] {
			continue
		}
		lines = append(lines, t.FormatLine())
	}
	return lines, nil
}
