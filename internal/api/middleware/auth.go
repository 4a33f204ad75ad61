package middleware

import (
	"crypto/subtle"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/davidrm-dev/BarberShop-BookingService/internal/api/handlers"
)

// AdminTokenHeader carries the shared back-office token.
const AdminTokenHeader = "X-Admin-Token"

const msgMissingOrInvalidToken = "token de administrador ausente o inválido"

// AdminAuth guards the back-office routes with a shared token. The public
// booking flow never goes through it.
func AdminAuth(token string) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get(AdminTokenHeader)
			if got == "" || subtle.ConstantTimeCompare([]byte(got), []byte(token)) != 1 {
				handlers.RespondUnauthorized(w, msgMissingOrInvalidToken)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
