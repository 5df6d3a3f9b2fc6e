package middleware

import (
	"net/http"
	"runtime"

	"github.com/vfg2006/oficina-dashboard-api/pkg/apiErrors"
	"github.com/vfg2006/oficina-dashboard-api/pkg/log"
)

const maxStackSize = 4096

// LogPanicMiddleware recupera panics dos handlers, loga a pilha e responde 500
func LogPanicMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if recovered == http.ErrAbortHandler {
					panic(recovered)
				}

				stack := make([]byte, maxStackSize)
				stack = stack[:runtime.Stack(stack, false)]

				log.ForContext(r.Context()).WithFields(log.Fields{
					"error":       recovered,
					"method":      r.Method,
					"path":        r.URL.Path,
					"stack_trace": string(stack),
				}).Error("❌ PANIC na aplicação")

				apiErrors.WriteError(w, apiErrors.ErrInternalServer, "Erro interno no servidor", nil)
			}()

			next.ServeHTTP(w, r)
		})
	}
}
