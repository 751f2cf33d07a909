package httpx

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows browser access from allowedOrigins. An empty list reflects any
// request origin back, which is what the dashboard dev setup expects.
func CORS(allowedOrigins []string) Middleware {
	opts := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders:   []string{"Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Retry-After"},
		AllowCredentials: true,
		MaxAge:           600,
	}
	if len(allowedOrigins) == 0 {
		opts.AllowOriginFunc = func(string) bool { return true }
	}

	c := cors.New(opts)
	return c.Handler
}
