// Package transport exposes the HTTP request and response writer to code
// running below the GraphQL handler, such as the login resolver setting the
// session cookie.
package transport

import (
	"context"
	"net"
	"net/http"
	"strings"
)

type ctxKey string

const (
	requestKey        ctxKey = "httpRequest"
	responseWriterKey ctxKey = "httpResponseWriter"
)

func WithHTTP(ctx context.Context, r *http.Request, w http.ResponseWriter) context.Context {
	ctx = context.WithValue(ctx, requestKey, r)
	ctx = context.WithValue(ctx, responseWriterKey, w)
	return ctx
}

func GetRequest(ctx context.Context) *http.Request {
	r, _ := ctx.Value(requestKey).(*http.Request)
	return r
}

func GetResponseWriter(ctx context.Context) http.ResponseWriter {
	w, _ := ctx.Value(responseWriterKey).(http.ResponseWriter)
	return w
}

// Middleware stores the request and writer in the request context.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithHTTP(r.Context(), r, w)))
	})
}

// SetCookie writes c on the current response. It reports false when ctx does
// not come from an HTTP request.
func SetCookie(ctx context.Context, c *http.Cookie) bool {
	w := GetResponseWriter(ctx)
	if w == nil {
		return false
	}
	http.SetCookie(w, c)
	return true
}

// ClientIP prefers the first X-Forwarded-For hop and falls back to the
// connection address.
func ClientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		if ip := strings.TrimSpace(first); ip != "" {
			return ip
		}
	}

	ip, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return ip
}
