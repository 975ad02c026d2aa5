package http

import (
	"context"
	"net/http"

	"github.com/MKhiriev/go-pet-locator/internal/app"
	"github.com/MKhiriev/go-pet-locator/internal/logger"
	"github.com/MKhiriev/go-pet-locator/internal/utils"
)

// auth validates the bearer session token and stores its checksummed wallet
// address in the request context under [utils.SignerCtxKey].
//
// Requests without a valid, unexpired token are rejected with 401.
func (h *Handler) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			log.Err(ErrEmptyAuthorizationHeader).Send()
			http.Error(w, ErrEmptyAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			log.Err(err).Send()
			http.Error(w, ErrInvalidAuthorizationHeader.Error(), http.StatusUnauthorized)
			return
		}

		session, err := h.devnet.Sessions.ParseSession(tokenString)
		if err != nil {
			log.Err(err).Msg("error occurred during parsing session token")
			http.Error(w, app.MsgTokenIsExpiredOrInvalid, http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), utils.SignerCtxKey, session.Address)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
