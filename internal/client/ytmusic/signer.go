package ytmusic

import (
	"crypto/sha1" //nolint:gosec // The upstream signature scheme is SHA-1.
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// sapisidHash computes the cookie-based request signature. The scheme is
// fixed by the provider: the Unix timestamp, the SAPISID cookie value and
// the origin are space-joined, hashed with SHA-1 and prefixed with the
// same timestamp. The signature is only valid together with a matching
// X-Origin header.
func sapisidHash(sapisid string, now time.Time) string {
	elapsed := strconv.FormatInt(now.Unix(), 10)
	digest := sha1.Sum([]byte(elapsed + " " + sapisid + " " + originURL)) //nolint:gosec

	return fmt.Sprintf("SAPISIDHASH %s_%s", elapsed, hex.EncodeToString(digest[:]))
}

// extractSAPISID pulls the SAPISID value out of a raw Cookie header.
// Some accounts only carry the __Secure-3PAPISID variant, which holds the
// same value and signs identically.
func extractSAPISID(cookie string) (string, bool) {
	for _, part := range strings.Split(cookie, ";") {
		name, value, found := strings.Cut(strings.TrimSpace(part), "=")
		if !found {
			continue
		}

		if name == sapisidCookieName || name == "__Secure-3PAPISID" {
			return value, true
		}
	}

	return "", false
}
