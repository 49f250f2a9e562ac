package app

import (
	"github.com/finsight/finsight/internal/config"
	"github.com/gorilla/mux"
)

// RegisterRoutes registers all API endpoints.
func RegisterRoutes(r *mux.Router, deps *Dependencies, cfg config.Application) {

	// Predictions
	r.HandleFunc("/api/predict", deps.PredictionHandler.Predict).Methods("POST")
	r.HandleFunc("/api/prediction/{predictionId}", deps.PredictionHandler.DeletePrediction).Methods("DELETE")
	r.HandleFunc("/api/health", deps.PredictionHandler.Health).Methods("GET")

	// User data (resolution chain)
	r.HandleFunc("/api/data", deps.UserDataHandler.GetUserData).Methods("GET")

	// Advisor chat
	if deps.AdvisorHandler != nil {
		r.HandleFunc("/api/chat", deps.AdvisorHandler.Chat).Methods("POST")
	}

	// User management
	r.HandleFunc("/api/user/current", deps.UserHandler.CurrentUser).Methods("GET")
	r.HandleFunc("/api/user/current", deps.UserHandler.UpdateUser).Methods("PUT")
	r.HandleFunc("/api/user", deps.UserHandler.CreateUser).Methods("POST")
	r.HandleFunc("/api/user/name-availability", deps.UserHandler.IsUsernameAvailable).Methods("GET").Queries("username", "{username}")
	r.HandleFunc("/api/user", deps.UserHandler.GetAvailableUsers).Methods("GET")
	r.HandleFunc("/api/user/{userUid}", deps.UserHandler.DeleteUser).Methods("DELETE")
}
