package yahoo

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/mmerenich21/sunday-funday-slack-scoreboard/model"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/platforms/yahoo/internal"
)

const YahooURL = "https://fantasysports.yahooapis.com"

type Client struct {
	url string
}

func New() (*Client, error) {
	return &Client{url: YahooURL}, nil
}

func NewForTest(url string) *Client {
	return &Client{url: url}
}

// GetTeamStats fetches the current and projected point totals for a single
// team. Missing name and point fields never fail, they fall back through
// nickname, a synthesized name, and a total of zero.
func (c *Client) GetTeamStats(ctx context.Context, httpClient *http.Client, teamKey string) (*model.TeamScore, error) {
	content, err := c.yahooRequest(ctx, httpClient, "/fantasy/v2/team/%s/stats", teamKey)
	if err != nil {
		return nil, err
	}

	if content == nil || content.Team == nil {
		return nil, errors.New("team stats not found")
	}

	t := content.Team
	return &model.TeamScore{
		ID:        t.ID,
		Key:       teamKey,
		Name:      teamName(t, teamKey),
		Current:   pointsOrZero(t.TeamPoints),
		Projected: pointsOrZero(t.ProjectedPoints),
	}, nil
}

// GetRoster returns the player keys on a team's roster.
func (c *Client) GetRoster(ctx context.Context, httpClient *http.Client, teamKey string) (*model.Roster, error) {
	content, err := c.yahooRequest(ctx, httpClient, "/fantasy/v2/team/%s/roster/players", teamKey)
	if err != nil {
		return nil, err
	}

	if content == nil ||
		content.Team == nil ||
		content.Team.Roster == nil ||
		content.Team.Roster.Players == nil ||
		content.Team.Roster.Players.Players == nil {
		return nil, errors.New("team roster not found")
	}

	keys := make([]string, 0, 15)
	for _, p := range content.Team.Roster.Players.Players {
		if p.Key == "" {
			continue
		}
		keys = append(keys, p.Key)
	}

	return &model.Roster{
		TeamKey:    teamKey,
		Name:       teamName(content.Team, teamKey),
		PlayerKeys: keys,
	}, nil
}

// GetPlayerStats fetches one player's point totals for the given week.
func (c *Client) GetPlayerStats(ctx context.Context, httpClient *http.Client, playerKey string, week int) (*model.PlayerScore, error) {
	content, err := c.yahooRequest(ctx, httpClient, "/fantasy/v2/player/%s/stats;type=week;week=%d", playerKey, week)
	if err != nil {
		return nil, err
	}

	if content == nil || content.Player == nil {
		return nil, errors.New("player stats not found")
	}

	p := content.Player
	name := playerKey
	if p.Name != nil && p.Name.Full != "" {
		name = p.Name.Full
	}

	return &model.PlayerScore{
		Key:       playerKey,
		Name:      name,
		Current:   pointsOrZero(p.PlayerPoints),
		Projected: pointsOrZero(p.ProjectedPoints),
	}, nil
}

// GetLeagueTeams lists every team in a league, in the order the league
// resource returns them.
func (c *Client) GetLeagueTeams(ctx context.Context, httpClient *http.Client, leagueKey string) ([]model.TeamScore, error) {
	content, err := c.yahooRequest(ctx, httpClient, "/fantasy/v2/league/%s/teams", leagueKey)
	if err != nil {
		return nil, err
	}

	if content == nil ||
		content.League == nil ||
		content.League.Teams == nil ||
		content.League.Teams.Teams == nil {
		return nil, errors.New("league has no teams")
	}

	results := make([]model.TeamScore, 0, 12)
	for _, t := range content.League.Teams.Teams {
		results = append(results, model.TeamScore{
			ID:        t.ID,
			Key:       t.Key,
			Name:      teamName(&t, t.Key),
			Current:   pointsOrZero(t.TeamPoints),
			Projected: pointsOrZero(t.ProjectedPoints),
		})
	}

	return results, nil
}

func teamName(t *internal.Team, key string) string {
	if t.Name != "" {
		return t.Name
	}
	if t.Nickname != "" {
		return t.Nickname
	}
	return fmt.Sprintf("Team %s", key)
}

func pointsOrZero(p *internal.Points) float64 {
	if p == nil {
		return 0
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(p.Total), 64)
	if err != nil {
		return 0
	}
	return v
}

func (c *Client) yahooRequest(ctx context.Context, httpClient *http.Client, path string, args ...any) (*internal.FantasyContent, error) {
	p := fmt.Sprintf(path, args...)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fmt.Sprintf("%s%s", c.url, p), nil)
	if err != nil {
		return nil, fmt.Errorf("error creating yahoo http request: %w", err)
	}
	// Yahoo serves XML for these resources regardless of the Accept header,
	// but send it anyway to match what the API documents.
	req.Header.Set("Accept", "application/json")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("error sending yahoo http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code from yahoo: %d", resp.StatusCode)
	}

	var res internal.FantasyContent
	err = xml.NewDecoder(resp.Body).Decode(&res)
	if err != nil {
		return nil, fmt.Errorf("error parsing response from yahoo: %w", err)
	}

	return &res, nil
}
