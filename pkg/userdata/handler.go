package userdata

import (
	"encoding/json"
	"net/http"

	"github.com/finsight/finsight/internal/rest"
	"github.com/finsight/finsight/pkg/prediction"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	resolver Resolver
}

func NewHandler(resolver Resolver) *Handler {
	return &Handler{resolver: resolver}
}

// GetUserData serves the resolved prediction history. When no provider can
// supply data the endpoint reports unavailability instead of guessing.
func (h *Handler) GetUserData(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	bundle, err := h.resolver.Resolve(r.Context())
	if err != nil {
		log.Errorf("could not resolve user data: %v", err)
		w.WriteHeader(http.StatusServiceUnavailable)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "User data unavailable",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(prediction.BundleToDTO(bundle)); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
