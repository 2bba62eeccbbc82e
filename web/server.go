package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sync"
	"time"

	"github.com/itbasis/go-clock"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/controller"
	"github.com/unrolled/render"
)

// SlackConfig carries the pieces of configuration the slash-command
// endpoint needs: the shared signing secret and the command token the
// endpoint answers to (e.g. /scoreboard).
type SlackConfig struct {
	SigningSecret string
	Command       string
}

type Server struct {
	server *http.Server
}

func NewServer(port int, ctrl controller.C, cfg SlackConfig, clk clock.Clock) (*Server, error) {
	if cfg.SigningSecret == "" {
		return nil, errors.New("slack signing secret must be provided")
	}
	if cfg.Command == "" {
		return nil, errors.New("slack command must be provided")
	}

	render := render.New()
	router := getRouter(ctrl, render, cfg, clk)

	s := &Server{
		server: &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: router,
		},
	}
	return s, nil
}

func (s *Server) ListenAndServe(shutdown chan bool, wg *sync.WaitGroup) {
	go func() {
		defer wg.Done()

		// Wait for the shutdown signal and safely close the server.
		<-shutdown

		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()

		if err := s.server.Shutdown(ctx); err != nil {
			log.Fatalf("fatal error shutting down server: %v", err)
		}
	}()

	log.Printf("web server is listening on %s", s.server.Addr)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		log.Fatalf("fatal error with server: %v", err)
	}
}
