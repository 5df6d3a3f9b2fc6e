package middleware

import (
	"context"
	"net/http"

	"github.com/vfg2006/oficina-dashboard-api/pkg/log"
	"github.com/vfg2006/oficina-dashboard-api/pkg/utils"
)

// RequestIDHeader é o cabeçalho usado para propagar o ID da requisição
const RequestIDHeader = "X-Request-ID"

const maxRequestIDLength = 64

type contextKeyRequestID string

// RequestIDKey é a chave usada para o ID da requisição no contexto
const RequestIDKey contextKeyRequestID = "requestID"

// RequestID reaproveita o X-Request-ID recebido ou gera um novo,
// devolve o valor na resposta e o usa como ID de correlação dos logs
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if requestID == "" || len(requestID) > maxRequestIDLength {
				generated, err := utils.GenerateID()
				if err != nil {
					log.L.WithError(err).Warn("Falha ao gerar ID da requisição")
				}
				requestID = generated
			}

			ctx, correlationID := log.WithCorrelationID(r.Context(), requestID)
			ctx = context.WithValue(ctx, RequestIDKey, correlationID)

			w.Header().Set(RequestIDHeader, correlationID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetRequestID obtém o ID da requisição do contexto
func GetRequestID(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}
