package main

import (
	"errors"
	"log"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/joho/godotenv"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/controller"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/model"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/platforms/yahoo"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/web"
	"golang.org/x/oauth2"
)

func main() {
	err := godotenv.Load()
	if err != nil && !os.IsNotExist(err) {
		log.Fatalf("Error loading .env file: %v", err)
	}

	portNum := 3000 // 3000 is the default
	port := os.Getenv("PORT")
	if port != "" {
		portNum, err = strconv.Atoi(port)
		if err != nil {
			log.Fatalf("error parsing port number: %v", err)
		}
	}

	yahooClientID := requireEnv("YAHOO_CLIENT_ID")
	yahooClientSecret := requireEnv("YAHOO_CLIENT_SECRET")
	yahooRefreshToken := requireEnv("YAHOO_REFRESH_TOKEN")

	slackConfig := web.SlackConfig{
		SigningSecret: requireEnv("SLACK_SIGNING_SECRET"),
		Command:       "/scoreboard",
	}
	if cmd := os.Getenv("SLACK_COMMAND"); cmd != "" {
		slackConfig.Command = cmd
	}

	settings := scoreboardSettings()

	yahooConfig := &oauth2.Config{
		ClientID:     yahooClientID,
		ClientSecret: yahooClientSecret,
		Endpoint: oauth2.Endpoint{
			AuthURL:  "https://api.login.yahoo.com/oauth2/request_auth",
			TokenURL: "https://api.login.yahoo.com/oauth2/get_token",
			// Yahoo wants the client id/secret as basic auth on the
			// token endpoint.
			AuthStyle: oauth2.AuthStyleInHeader,
		},
	}

	clock := clock.New()

	yahooClient, err := yahoo.New()
	if err != nil {
		log.Fatalf("error creating yahoo client: %v", err)
	}

	ctrl, err := controller.New(yahooClient, yahooConfig, yahooRefreshToken, settings)
	if err != nil {
		log.Fatalf("error creating a new controller: %v", err)
	}

	server, err := web.NewServer(portNum, ctrl, slackConfig, clock)
	if err != nil {
		log.Fatalf("error creating new web server: %v", err)
	}

	shutdown := make(chan bool)
	wg := &sync.WaitGroup{}

	// Setup a handler to catch ctrl-c signals and properly shutdown everything.
	intChannel := make(chan os.Signal, 2)
	signal.Notify(intChannel, os.Interrupt)
	go func() {
		<-intChannel
		close(shutdown)

		if err := waitTimeout(wg, 10*time.Second); err != nil {
			log.Printf("timed out waiting for proper shutdown")
			os.Exit(255)
		}
	}()

	// Start the web server
	wg.Add(1)
	go server.ListenAndServe(shutdown, wg)

	// Wait for everything to stop.
	wg.Wait()
	log.Printf("server shutdown")
}

// scoreboardSettings reads the strategy-specific configuration from the
// environment. Missing required values are fatal at startup, never a
// per-request error.
func scoreboardSettings() controller.Settings {
	mode := os.Getenv("SCOREBOARD_MODE")
	if mode == "" {
		mode = string(model.StrategyTeam)
	}
	strategy, err := model.ParseStrategy(mode)
	if err != nil {
		log.Fatalf("error parsing SCOREBOARD_MODE: %v", err)
	}

	week := 1
	if w := os.Getenv("YAHOO_WEEK"); w != "" {
		week, err = strconv.Atoi(w)
		if err != nil {
			log.Fatalf("error parsing YAHOO_WEEK: %v", err)
		}
	}

	settings := controller.Settings{
		Strategy: strategy,
		Week:     week,
	}

	switch strategy {
	case model.StrategyTeam, model.StrategyRoster:
		settings.TeamKeys = splitList(requireEnv("YAHOO_TEAM_KEYS"))
	case model.StrategyLeague:
		settings.LeagueKey = requireEnv("YAHOO_LEAGUE_KEY")
		for _, part := range splitList(requireEnv("YAHOO_TEAM_IDS")) {
			id, err := strconv.Atoi(part)
			if err != nil {
				log.Fatalf("error parsing YAHOO_TEAM_IDS entry '%s': %v", part, err)
			}
			settings.TeamIDs = append(settings.TeamIDs, id)
		}
	}

	return settings
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		log.Fatalf("%s must be set", key)
	}
	return v
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		result = append(result, p)
	}
	return result
}

func waitTimeout(wg *sync.WaitGroup, timeout time.Duration) error {
	c := make(chan any)
	go func() {
		defer close(c)
		wg.Wait()
	}()

	select {
	case <-c:
		return nil // completed normally
	case <-time.After(timeout):
		return errors.New("timed out waiting")
	}
}
