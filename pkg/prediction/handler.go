package prediction

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finsight/finsight/internal/rest"
	"github.com/finsight/finsight/pkg/profile"
	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

type Handler struct {
	service Service
	client  Client
}

func NewHandler(service Service, client Client) *Handler {
	return &Handler{service: service, client: client}
}

func (h *Handler) Predict(w http.ResponseWriter, r *http.Request) {
	log.Debug("Handling prediction request")
	w.Header().Set("Content-Type", "application/json")

	var dto profile.BudgetProfileDTO
	if err := json.NewDecoder(r.Body).Decode(&dto); err != nil {
		w.WriteHeader(http.StatusBadRequest)
		encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
			Error: "Invalid request body format",
		})
		if encodeErr != nil {
			http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
		}
		return
	}

	result, err := h.service.Predict(r.Context(), profile.DTOToBudgetProfile(dto))
	if err != nil {
		if errors.Is(err, ErrInvalidProfile) {
			w.WriteHeader(http.StatusBadRequest)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error:   "Invalid budget profile",
				Details: err.Error(),
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		if errors.Is(err, ErrModelUnavailable) {
			w.WriteHeader(http.StatusBadGateway)
			encodeErr := json.NewEncoder(w).Encode(rest.ErrorResponse{
				Error: "Prediction service unavailable",
			})
			if encodeErr != nil {
				http.Error(w, encodeErr.Error(), http.StatusInternalServerError)
			}
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(result); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func (h *Handler) DeletePrediction(w http.ResponseWriter, r *http.Request) {
	vars := mux.Vars(r)
	id := vars["predictionId"]

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, ErrRecordNotFound) {
			http.Error(w, "prediction not found", http.StatusNotFound)
			return
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	predictor := "reachable"
	if err := h.client.Ping(r.Context()); err != nil {
		log.Debugf("prediction service unreachable: %v", err)
		predictor = "unreachable"
	}

	response := struct {
		Status    string `json:"status"`
		Predictor string `json:"predictor"`
	}{Status: "healthy", Predictor: predictor}

	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(response); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}
