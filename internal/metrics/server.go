package metrics

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/zsiec/lens/internal/config"
	"github.com/zsiec/lens/internal/logger"
	"github.com/zsiec/lens/pkg/version"
)

// StartServer runs the optional debug HTTP endpoint. It blocks, so callers
// run it in a goroutine; it lives for the remainder of the process.
func StartServer(cfg config.DebugConfig, log logger.Logger) {
	r := NewRouter(cfg)

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.WithField("addr", addr).Info("Starting debug endpoint")

	if err := http.ListenAndServe(addr, r); err != nil {
		log.WithError(err).Error("Debug endpoint error")
	}
}

// NewRouter builds the debug endpoint routes.
func NewRouter(cfg config.DebugConfig) *mux.Router {
	r := mux.NewRouter()
	r.Handle(cfg.Path, promhttp.Handler()).Methods(http.MethodGet)
	r.HandleFunc("/healthz", handleHealthz).Methods(http.MethodGet)
	r.HandleFunc("/version", handleVersion).Methods(http.MethodGet)
	return r
}

func handleHealthz(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"status": "ok"})
}

func handleVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(version.GetInfo())
}
