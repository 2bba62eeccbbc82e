package web

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"time"
)

// maxSkewSeconds is how far a request timestamp may drift from server
// time, in either direction, before the request is rejected as stale.
const maxSkewSeconds = 300

const signaturePrefix = "v0="

// verifySlackRequest checks the Slack signing signature over the exact raw
// body bytes. The signing base string is "v0:{timestamp}:{body}" and the
// signature header carries "v0=" + hex(hmac-sha256(secret, base)).
func verifySlackRequest(secret, timestamp, signature string, body []byte, now time.Time) error {
	ts, err := strconv.ParseInt(timestamp, 10, 64)
	if err != nil {
		return fmt.Errorf("invalid timestamp header: %w", err)
	}

	if skew := now.Unix() - ts; skew > maxSkewSeconds || skew < -maxSkewSeconds {
		return errors.New("stale request")
	}

	if !hmac.Equal([]byte(computeSignature(secret, timestamp, body)), []byte(signature)) {
		return errors.New("invalid signature")
	}

	return nil
}

func computeSignature(secret, timestamp string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	fmt.Fprintf(mac, "v0:%s:%s", timestamp, body)
	return signaturePrefix + hex.EncodeToString(mac.Sum(nil))
}
