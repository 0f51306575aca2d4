package auth

import (
	"net/http"
	"strings"
)

const AccessTokenCookie = "access_token"

// AccessTokens returns the tokens carried by the request, the bearer header
// first and the login cookie second. Empty values are skipped.
func AccessTokens(r *http.Request) []string {
	var tokens []string

	authHeader := r.Header.Get("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		if t := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer ")); t != "" {
			tokens = append(tokens, t)
		}
	}

	if cookie, err := r.Cookie(AccessTokenCookie); err == nil && cookie.Value != "" {
		tokens = append(tokens, cookie.Value)
	}

	return tokens
}

func ExtractAccessToken(r *http.Request) string {
	if tokens := AccessTokens(r); len(tokens) > 0 {
		return tokens[0]
	}
	return ""
}
