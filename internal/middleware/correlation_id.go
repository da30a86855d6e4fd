package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// HeaderCorrelationID ties a register request to its log lines. Register
// clients may send their own id; requests without one get a fresh uuid.
const HeaderCorrelationID = "X-Correlation-Id"

// CorrelationID echoes the id on the response and carries it in the request
// context so handlers and the recover middleware can report it.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(HeaderCorrelationID)
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(HeaderCorrelationID, id)

		ctx := context.WithValue(r.Context(), ctxCorrelationID, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetCorrelationID(ctx context.Context) string {
	id, _ := ctx.Value(ctxCorrelationID).(string)
	return id
}
