package web

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/itbasis/go-clock"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/controller"
	"github.com/unrolled/render"
)

func getRouter(ctrl controller.C, render *render.Render, cfg SlackConfig, clk clock.Clock) *chi.Mux {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// Set a timeout value on the request context (ctx), that will signal
	// through ctx.Done() that the request has timed out and further
	// processing should be stopped.
	r.Use(middleware.Timeout(10 * time.Second))

	r.Post("/slack/commands", slackCommandsHandler(ctrl, render, cfg, clk))

	return r
}
