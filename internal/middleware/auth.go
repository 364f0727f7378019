package middleware

import (
	"crypto/subtle"
	"encoding/base64"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// AdminAuth gates mutating requests behind HTTP Basic credentials compared
// against the two configured admin secrets. The check is stateless: no
// sessions, no tokens, one allow/deny decision per request. Reads never pass
// through this middleware; catalog browsing is public.
func AdminAuth(username, password string) gin.HandlerFunc {
	return func(c *gin.Context) {
		raw := strings.TrimSpace(c.GetHeader("Authorization"))
		if raw == "" {
			log.Println("[AUTH] [ERROR] missing credentials")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		parts := strings.Split(raw, " ")
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
			log.Println("[AUTH] [ERROR] invalid authorization format")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		decoded, err := base64.StdEncoding.DecodeString(parts[1])
		if err != nil {
			log.Println("[AUTH] [ERROR] credentials decode failed:", err)
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		gotUser, gotPass, ok := strings.Cut(string(decoded), ":")
		if !ok || !credentialsMatch(gotUser, gotPass, username, password) {
			log.Println("[AUTH] [ERROR] credential check failed")
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}

		c.Next()
	}
}

func credentialsMatch(gotUser, gotPass, wantUser, wantPass string) bool {
	if wantUser == "" || wantPass == "" {
		return false
	}
	userOK := subtle.ConstantTimeCompare([]byte(gotUser), []byte(wantUser)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(gotPass), []byte(wantPass)) == 1
	return userOK && passOK
}
