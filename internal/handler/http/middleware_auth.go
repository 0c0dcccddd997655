package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"

	"github.com/junerver/prompt-keeper/internal/logger"
	"github.com/junerver/prompt-keeper/internal/utils"
)

// withAuth enforces an HS256 bearer token signed with the configured key and
// issuer. The token subject is stored in the request context under
// [utils.ClientCtxKey].
//
// Requests are rejected with 401 when the header is missing or malformed,
// or when the token is expired or otherwise invalid.
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			unauthorized(w, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			unauthorized(w, ErrInvalidAuthorizationHeader)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.SignKey, h.auth.Issuer)
		if err != nil {
			log.Err(err).Msg("rejected token")
			if errors.Is(err, jwt.ErrTokenExpired) {
				unauthorized(w, fmt.Errorf("%w: expired", ErrInvalidToken))
				return
			}
			unauthorized(w, ErrInvalidToken)
			return
		}

		ctx := context.WithValue(r.Context(), utils.ClientCtxKey, token.Client)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, err error) {
	w.Header().Set("WWW-Authenticate", `Bearer realm="prompt-keeper"`)
	utils.WriteJSONError(w, http.StatusUnauthorized, err.Error())
}
