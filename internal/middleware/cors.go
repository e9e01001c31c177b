package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows the configured origins. A "*" entry opens the API to any caller;
// credentials are only allowed when origins are listed explicitly, since
// browsers reject a wildcard origin with credentials.
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	anyOrigin := false
	for _, o := range allowedOrigins {
		if o == "*" {
			anyOrigin = true
			break
		}
	}

	opts := cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS", "PATCH"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: !anyOrigin,
		MaxAge:           300,
	}
	if anyOrigin {
		opts.AllowedOrigins = []string{"*"}
	}

	return cors.Handler(opts)
}
