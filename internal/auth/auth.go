// Package auth guards the admin endpoints with a bearer token or basic
// credentials taken from the process configuration.
package auth

import (
	"crypto/subtle"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/folio/internal/config"
)

const (
	TypeToken = "token"
	TypeBasic = "basic"
)

// Authenticator checks requests against the configured credentials. When
// authentication is disabled every request passes.
type Authenticator struct {
	cfg config.Auth
}

func New(cfg config.Auth) *Authenticator {
	if cfg.Enabled && cfg.Type == TypeToken && cfg.Token == "" {
		log.Println("WARNING: AUTH_ENABLED with an empty AUTH_TOKEN rejects every admin request")
	}
	return &Authenticator{cfg: cfg}
}

// Authenticate reports whether r carries valid credentials.
func (a *Authenticator) Authenticate(r *http.Request) bool {
	if !a.cfg.Enabled {
		return true
	}

	header := r.Header.Get("Authorization")
	if header == "" {
		return false
	}

	switch a.cfg.Type {
	case TypeToken:
		token, ok := strings.CutPrefix(header, "Bearer ")
		return ok && a.cfg.Token != "" && equal(token, a.cfg.Token)
	case TypeBasic:
		username, password, ok := r.BasicAuth()
		if !ok || a.cfg.Username == "" {
			return false
		}
		// Evaluate both so timing does not reveal which one failed.
		userOK := equal(username, a.cfg.Username)
		passOK := equal(password, a.cfg.Password)
		return userOK && passOK
	default:
		return false
	}
}

// Middleware aborts unauthenticated requests with 401.
func (a *Authenticator) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		if !a.Authenticate(c.Request) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		c.Next()
	}
}

func equal(a, b string) bool {
	return subtle.ConstantTimeCompare([]byte(a), []byte(b)) == 1
}
