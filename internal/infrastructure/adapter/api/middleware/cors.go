package middleware

import (
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORSConfig allows the listed origins; "*" or an empty list allows any
func CORSConfig(origins []string) cors.Config {
	conf := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", RequestIDKey},
		ExposeHeaders: []string{RequestIDKey, "Location"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || slices.Contains(origins, "*") {
		conf.AllowAllOrigins = true
	} else {
		conf.AllowOrigins = origins
	}
	return conf
}

// CORS answers preflights and rejects unlisted origins with 403. It panics on an
// origin without a scheme; callers validate with CORSConfig(origins).Validate first.
func CORS(origins []string) gin.HandlerFunc {
	return cors.New(CORSConfig(origins))
}
