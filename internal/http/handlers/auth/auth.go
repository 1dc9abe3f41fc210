package auth

import (
	"accounts/internal/core/domain/user"
	"accounts/internal/core/services/auth"
	"context"
	"net/http"
	"strings"
)

const (
	AUTH_TOKEN_PREFIX  = "Bearer "
	AUTH_TOKEN_MAX_LEN = 1024
)

func ParseToken(r *http.Request) (token user.SessionToken, ok bool) {
	header := r.Header.Get("authorization")
	if header == "" {
		return token, false
	}
	if !strings.HasPrefix(header, AUTH_TOKEN_PREFIX) {
		return token, false
	}
	rawToken := header[len(AUTH_TOKEN_PREFIX):]
	if rawToken == "" || len(rawToken) > AUTH_TOKEN_MAX_LEN {
		return token, false
	}
	return user.SessionToken(rawToken), true
}

func SetAuthTokenToContext(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := ParseToken(r)
		if ok {
			ctx := context.WithValue(r.Context(), auth.CONTEXT_AUTH_TOKEN_KEY, token)
			r = r.WithContext(ctx)
		}
		next.ServeHTTP(w, r)
	})
}
