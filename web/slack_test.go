package web

import (
	"testing"
	"time"
)

// Reference values from Slack's own signature verification docs.
const (
	refSecret    = "8f742231b10e8888abcd99yyyzzz85a5"
	refTimestamp = "1531420618"
	refBody      = "token=xyzz0WbapA4vBCDEFasx0q6G&team_id=T1DC2JH3J&team_domain=testteamnow&channel_id=G8PSS9T3V&channel_name=foobar&user_id=U2CERLKJA&user_name=roadrunner&command=%2Fwebhook-collect&text=&response_url=https%3A%2F%2Fhooks.slack.com%2Fcommands%2FT1DC2JH3J%2F397700885554%2F96rGlfmibIGlgcZRskXaIFfN&trigger_id=398738663015.47445629121.803a0bc887a14d10d2c447fce8b6703c"
	refSignature = "v0=a2114d57b48eac39b9ad189dd8316235a7b4a8d21a10bd27519666489c69b503"
)

func refTime() time.Time {
	return time.Unix(1531420618, 0)
}

func TestComputeSignature(t *testing.T) {
	got := computeSignature(refSecret, refTimestamp, []byte(refBody))
	if got != refSignature {
		t.Errorf("expected: '%s', got: '%s'", refSignature, got)
	}
}

func TestVerifySlackRequest(t *testing.T) {
	tests := []struct {
		name      string
		secret    string
		timestamp string
		signature string
		body      string
		now       time.Time
		wantErr   bool
	}{
		{
			name:      "valid request",
			secret:    refSecret,
			timestamp: refTimestamp,
			signature: refSignature,
			body:      refBody,
			now:       refTime(),
		},
		{
			name:      "tampered body",
			secret:    refSecret,
			timestamp: refTimestamp,
			signature: refSignature,
			body:      refBody + "x",
			now:       refTime(),
			wantErr:   true,
		},
		{
			name:      "tampered timestamp",
			secret:    refSecret,
			timestamp: "1531420619",
			signature: refSignature,
			body:      refBody,
			now:       refTime(),
			wantErr:   true,
		},
		{
			name:      "wrong secret",
			secret:    "8f742231b10e8888abcd99yyyzzz85a6",
			timestamp: refTimestamp,
			signature: refSignature,
			body:      refBody,
			now:       refTime(),
			wantErr:   true,
		},
		{
			name:      "tampered signature",
			secret:    refSecret,
			timestamp: refTimestamp,
			signature: "v0=b2114d57b48eac39b9ad189dd8316235a7b4a8d21a10bd27519666489c69b503",
			body:      refBody,
			now:       refTime(),
			wantErr:   true,
		},
		{
			name:      "stale request",
			secret:    refSecret,
			timestamp: refTimestamp,
			signature: refSignature,
			body:      refBody,
			now:       refTime().Add(301 * time.Second),
			wantErr:   true,
		},
		{
			name:      "timestamp from the future",
			secret:    refSecret,
			timestamp: refTimestamp,
			signature: refSignature,
			body:      refBody,
			now:       refTime().Add(-301 * time.Second),
			wantErr:   true,
		},
		{
			name:      "at the staleness boundary",
			secret:    refSecret,
			timestamp: refTimestamp,
			signature: refSignature,
			body:      refBody,
			now:       refTime().Add(300 * time.Second),
		},
		{
			name:      "missing timestamp",
			secret:    refSecret,
			timestamp: "",
			signature: refSignature,
			body:      refBody,
			now:       refTime(),
			wantErr:   true,
		},
		{
			name:      "unparseable timestamp",
			secret:    refSecret,
			timestamp: "not-a-number",
			signature: refSignature,
			body:      refBody,
			now:       refTime(),
			wantErr:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := verifySlackRequest(tc.secret, tc.timestamp, tc.signature, []byte(tc.body), tc.now)
			if tc.wantErr && err == nil {
				t.Fatal("expected an error, but got none")
			}
			if !tc.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}
