package handler

import (
	"net/http"
	"time"

	"github.com/vfg2006/oficina-dashboard-api/pkg/log"
)

type healthcheckResponse struct {
	Status string `json:"status"`
	Time   string `json:"time"`
}

func HealthcheckHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, r, http.StatusOK, healthcheckResponse{
			Status: "ok",
			Time:   time.Now().UTC().Format(time.RFC3339),
		})
	})
}

// writeJSON serializa o payload com jsoniter; falhas de escrita só podem ser logadas
func writeJSON(w http.ResponseWriter, r *http.Request, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(payload); err != nil {
		log.ForContext(r.Context()).WithError(err).Warn("Erro ao enviar resposta")
	}
}
