package web

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"

	"github.com/itbasis/go-clock"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/controller"
	"github.com/unrolled/render"
)

// slackResponse is the payload Slack expects back from a slash command.
// response_type "in_channel" makes the reply visible to everyone in the
// channel instead of only the caller.
type slackResponse struct {
	ResponseType string `json:"response_type"`
	Text         string `json:"text"`
}

func slackCommandsHandler(ctrl controller.C, render *render.Render, cfg SlackConfig, clk clock.Clock) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// The signature covers the exact raw bytes, so read them before
		// any form parsing touches the body.
		body, err := io.ReadAll(r.Body)
		if err != nil {
			render.Text(w, http.StatusBadRequest, "error reading request body")
			return
		}

		timestamp := r.Header.Get("X-Slack-Request-Timestamp")
		signature := r.Header.Get("X-Slack-Signature")
		if err := verifySlackRequest(cfg.SigningSecret, timestamp, signature, body, clk.Now()); err != nil {
			log.Printf("rejecting slack request: %v", err)
			render.Text(w, http.StatusForbidden, err.Error())
			return
		}

		form, err := url.ParseQuery(string(body))
		if err != nil {
			render.Text(w, http.StatusBadRequest, "error parsing form body")
			return
		}

		if command := form.Get("command"); command != cfg.Command {
			render.JSON(w, http.StatusOK, slackResponse{
				ResponseType: "in_channel",
				Text:         fmt.Sprintf("Unknown command: %s", command),
			})
			return
		}

		// A failure here still answers 200 with a normal-looking chat
		// message, never a raw error to the channel.
		text, err := ctrl.GetScoreboard(r.Context())
		if err != nil {
			log.Printf("error building scoreboard: %v", err)
			text = "Error fetching scoreboard, please try again later."
		}

		render.JSON(w, http.StatusOK, slackResponse{
			ResponseType: "in_channel",
			Text:         text,
		})
	}
}
