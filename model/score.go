package model

import (
	"fmt"
	"strconv"
	"strings"
)

// Strategy selects how the scoreboard is assembled from the Yahoo API.
type Strategy string

const (
	// StrategyTeam fetches each configured team's stats resource directly.
	StrategyTeam Strategy = "team"
	// StrategyRoster sums weekly player stats across each team's roster.
	StrategyRoster Strategy = "roster"
	// StrategyLeague lists every team in a league and keeps a configured subset.
	StrategyLeague Strategy = "league"
)

func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(s) {
	case StrategyTeam, StrategyRoster, StrategyLeague:
		return Strategy(s), nil
	default:
		return "", fmt.Errorf("unknown scoreboard strategy: '%s'", s)
	}
}

// TeamScore is the per-team result of a scoreboard lookup. Instances only
// live for the duration of a single request.
type TeamScore struct {
	ID        int    // numeric team id, only set by the league team listing
	Key       string // full Yahoo key, e.g. 449.l.149976.t.1
	Name      string
	Current   float64
	Projected float64
}

// PlayerScore holds one player's point totals for a single week.
type PlayerScore struct {
	Key       string
	Name      string
	Current   float64
	Projected float64
}

// Roster is the list of player keys on one team, used by the roster
// roll-up strategy.
type Roster struct {
	TeamKey    string
	Name       string
	PlayerKeys []string
}

// ScoreboardHeader is the first line of every scoreboard message.
const ScoreboardHeader = "🏈 *Custom Team Scores*\n"

// FormatLine renders a single scoreboard line, e.g.
// *Test Team*: Current = 42.5, Projected = 50.0
func (t *TeamScore) FormatLine() string {
	return fmt.Sprintf("*%s*: Current = %s, Projected = %s",
		t.Name, FormatPoints(t.Current), FormatPoints(t.Projected))
}

// FormatErrorLine renders the inline line used when fetching one team
// fails but the rest of the scoreboard should still be produced.
func FormatErrorLine(key string, err error) string {
	return fmt.Sprintf("*%s*: Error fetching data (%v)", key, err)
}

// FormatPoints renders totals for chat output: whole numbers keep a
// trailing .0 (50.0, not 50) and everything else uses the shortest exact
// form (42.5, 104.22).
func FormatPoints(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// FormatScoreboard joins the header and the per-team lines into the final
// message text.
func FormatScoreboard(lines []string) string {
	all := make([]string, 0, len(lines)+1)
	all = append(all, ScoreboardHeader)
	all = append(all, lines...)
	return strings.Join(all, "\n")
}
