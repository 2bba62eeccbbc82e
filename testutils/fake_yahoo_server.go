package testutils

import (
	"embed"
	"fmt"
	"log"
	"net/http"
	"net/http/httptest"

	"github.com/go-chi/chi/v5"
)

const (
	YahooLeagueKey = "449.l.149976"
	YahooTeamKey1  = "449.l.149976.t.1" // named team with full stats
	YahooTeamKey2  = "449.l.149976.t.2" // nickname only, single-player roster
	YahooTeamKey3  = "449.l.149976.t.3" // no name, empty point totals
)

//go:embed yahoodata
var yahoodata embed.FS

type FakeYahooServer struct {
	s *httptest.Server
}

func NewFakeYahooServer() *FakeYahooServer {
	r := chi.NewRouter()
	// https://fantasysports.yahooapis.com/fantasy/v2/team/449.l.149976.t.1/stats
	r.Route("/fantasy/v2", func(r chi.Router) {
		r.Route("/team/{teamKey}", func(r chi.Router) {
			r.Get("/stats", teamStatsHandler)
			r.Get("/roster/players", teamRosterHandler)
		})
		r.Get("/player/{playerKey}/stats;type=week;week={week}", playerStatsHandler)
		r.Get("/league/{leagueKey}/teams", leagueTeamsHandler)
	})

	return &FakeYahooServer{
		s: httptest.NewServer(r),
	}
}

func (f *FakeYahooServer) Close() {
	f.s.Close()
}

func (f *FakeYahooServer) URL() string {
	return f.s.URL
}

func teamStatsHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "teamKey") {
	case YahooTeamKey1:
		serveYahooFile(w, "team_1_stats.xml")
	case YahooTeamKey2:
		serveYahooFile(w, "team_2_stats.xml")
	case YahooTeamKey3:
		serveYahooFile(w, "team_3_stats.xml")
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("error"))
	}
}

func teamRosterHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "teamKey") {
	case YahooTeamKey1:
		serveYahooFile(w, "team_1_roster.xml")
	case YahooTeamKey2:
		serveYahooFile(w, "team_2_roster.xml")
	default:
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("error"))
	}
}

func playerStatsHandler(w http.ResponseWriter, r *http.Request) {
	switch chi.URLParam(r, "playerKey") {
	case "449.p.100":
		serveYahooFile(w, "player_100_stats.xml")
	case "449.p.200":
		serveYahooFile(w, "player_200_stats.xml")
	case "449.p.300":
		serveYahooFile(w, "player_300_stats.xml")
	default:
		// 449.p.999 lands here so tests can exercise a failing player fetch.
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte("error"))
	}
}

func leagueTeamsHandler(w http.ResponseWriter, r *http.Request) {
	leagueKey := chi.URLParam(r, "leagueKey")
	if leagueKey == YahooLeagueKey {
		serveYahooFile(w, "league_teams.xml")
		return
	}

	w.WriteHeader(http.StatusForbidden)
	w.Write([]byte(forbiddenMessage))
}

func serveYahooFile(w http.ResponseWriter, name string) {
	b, err := yahoodata.ReadFile(fmt.Sprintf("yahoodata/%s", name))
	if err != nil {
		log.Printf("error reading yahoodata/%s: %v", name, err)
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "text/xml")
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

const forbiddenMessage = `<?xml version="1.0" encoding="UTF-8"?>
<error xml:lang="en-us" yahoo:uri="http://fantasysports.yahooapis.com/fantasy/v2/league/nfl.l.149975"
xmlns:yahoo="http://www.yahooapis.com/v1/base.rng" xmlns="http://www.yahooapis.com/v1/base.rng">
    <description>You are not allowed to view this page because you are not in this league.</description>
    <detail/>
</error>`
