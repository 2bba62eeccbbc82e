package web

import (
	"testing"

	"github.com/itbasis/go-clock"
	"github.com/mmerenich21/sunday-funday-slack-scoreboard/controller/mockcontroller"
)

func TestNewServer_missingSigningSecret(t *testing.T) {
	cfg := SlackConfig{Command: "/scoreboard"}
	_, err := NewServer(3000, &mockcontroller.C{}, cfg, clock.NewMock())
	if err == nil {
		t.Fatal("expected an error, but got none")
	}
}

func TestNewServer_missingCommand(t *testing.T) {
	cfg := SlackConfig{SigningSecret: "secret"}
	_, err := NewServer(3000, &mockcontroller.C{}, cfg, clock.NewMock())
	if err == nil {
		t.Fatal("expected an error, but got none")
	}
}
