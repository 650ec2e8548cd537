package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// nowFn is a test seam for the clock used in expiry checks.
var nowFn = time.Now

// tokenExpired reports whether token is a JWT whose exp claim is already
// past. Tokens that do not parse as JWTs, or carry no exp claim, are treated
// as live: the credential is opaque by contract and only a recognizable
// expiry may reject it. The signature is not verified; the client holds no
// key material.
func tokenExpired(token string) bool {
	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err != nil {
		return false
	}
	exp, err := parsed.Claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return exp.Before(nowFn())
}
