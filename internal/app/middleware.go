package app

import (
	"errors"
	"net/http"

	"github.com/finsight/finsight/internal/config"
	"github.com/finsight/finsight/pkg/user"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

// SetupMiddleware wires all HTTP middlewares for the application.
func SetupMiddleware(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Resolve X-User-Id header into the request context. Requests without the
	// header run as the default user, matching the single-user deployments.
	r.Use(func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			userUidHeader := req.Header.Get("X-User-Id")
			ctx := req.Context()

			uid := userUidHeader
			if uid == "" {
				uid = user.DefaultUserUid
			}

			u, err := deps.UserService.GetUserByUid(ctx, uid)
			if err != nil {
				if errors.Is(err, user.ErrUserNotFound) {
					log.Debugf("user not found: %s", uid)
					http.Error(w, "user not found", http.StatusForbidden)
					return
				}
				log.Errorf("failed to get user: %v", err)
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}

			ctx = user.WithUser(ctx, u)
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	})
}
