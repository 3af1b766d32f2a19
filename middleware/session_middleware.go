package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/JovialSquirrel/local-news-podcast/application/ports/outbound"
	"github.com/JovialSquirrel/local-news-podcast/config"
)

const (
	SessionCookieName  = "session"
	ContextUsernameKey = "username"
)

type SessionClaims struct {
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// SessionManager issues and checks the signed session cookie. Logout is
// simply clearing the cookie; tokens carry their own expiry.
type SessionManager interface {
	Issue(username string) (string, error)
	Username(c *gin.Context) (string, bool)
	CookieMaxAge() int
	RequireSession() gin.HandlerFunc
}

type sessionManager struct {
	logger outbound.LoggerPort
	secret []byte
	ttl    time.Duration
}

func NewSessionManager(authConfig *config.AuthConfig, logger outbound.LoggerPort) SessionManager {
	return &sessionManager{
		logger: logger,
		secret: []byte(authConfig.SessionSecret),
		ttl:    authConfig.SessionTTL,
	}
}

func (m *sessionManager) Issue(username string) (string, error) {
	now := time.Now().UTC()
	claims := SessionClaims{
		Username: username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
}

func (m *sessionManager) Username(c *gin.Context) (string, bool) {
	tokenString, err := c.Cookie(SessionCookieName)
	if err != nil {
		return "", false
	}

	var claims SessionClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
		return m.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil || !token.Valid {
		return "", false
	}

	return claims.Username, true
}

func (m *sessionManager) CookieMaxAge() int {
	return int(m.ttl.Seconds())
}

func (m *sessionManager) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		username, ok := m.Username(c)
		if !ok {
			c.Redirect(http.StatusFound, "/login")
			c.Abort()
			return
		}
		c.Set(ContextUsernameKey, username)
		c.Next()
	}
}
