package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/yigit/alumnet/internal/pkg/apperrors"
	"github.com/yigit/alumnet/internal/pkg/auth"
	"github.com/yigit/alumnet/internal/pkg/session"
)

const sessionContextKey = "session"

// SessionResolver turns a session id into a live session
type SessionResolver interface {
	Authenticate(ctx context.Context, sessionID string) (session.Session, error)
}

// SessionCookie reads and writes the signed session cookie
type SessionCookie struct {
	Name   string
	Secure bool
	Tokens *auth.SessionTokenService
}

// Issue sets the cookie for sess, valid for ttl
func (sc *SessionCookie) Issue(c *gin.Context, sess session.Session, ttl time.Duration) error {
	token, err := sc.Tokens.Sign(sess.ID())
	if err != nil {
		return err
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, token, int(ttl.Seconds()), "/", "", sc.Secure, true)
	return nil
}

// Clear expires the cookie in the browser
func (sc *SessionCookie) Clear(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(sc.Name, "", -1, "/", "", sc.Secure, true)
}

// SessionID returns the session id carried by the request cookie, or "" when
// the cookie is absent or its signature does not verify
func (sc *SessionCookie) SessionID(c *gin.Context) string {
	token, err := c.Cookie(sc.Name)
	if err != nil || token == "" {
		return ""
	}
	id, err := sc.Tokens.Parse(token)
	if err != nil {
		return ""
	}
	return id
}

// SessionMiddleware authenticates requests by their session cookie
type SessionMiddleware struct {
	cookie   *SessionCookie
	resolver SessionResolver
}

// NewSessionMiddleware creates a new SessionMiddleware
func NewSessionMiddleware(cookie *SessionCookie, resolver SessionResolver) *SessionMiddleware {
	return &SessionMiddleware{cookie: cookie, resolver: resolver}
}

func (m *SessionMiddleware) resolve(c *gin.Context) (session.Session, error) {
	id := m.cookie.SessionID(c)
	if id == "" {
		return session.Session{}, apperrors.ErrAuthenticationRequired
	}
	return m.resolver.Authenticate(c.Request.Context(), id)
}

// RequireSession rejects requests without a valid session with a 401 JSON error
func (m *SessionMiddleware) RequireSession() gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := m.resolve(c)
		if err != nil {
			HandleAPIError(c, err)
			return
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// RequirePageSession redirects requests without a valid session to loginPath
func (m *SessionMiddleware) RequirePageSession(loginPath string) gin.HandlerFunc {
	return func(c *gin.Context) {
		sess, err := m.resolve(c)
		if err != nil {
			if !apperrors.Is(err, apperrors.ErrAuthenticationRequired) {
				HandleAPIError(c, err)
				return
			}
			c.Redirect(http.StatusFound, loginPath)
			c.Abort()
			return
		}
		c.Set(sessionContextKey, sess)
		c.Next()
	}
}

// CurrentSession returns the session stored by the session middleware
func CurrentSession(c *gin.Context) (session.Session, bool) {
	value, exists := c.Get(sessionContextKey)
	if !exists {
		return session.Session{}, false
	}
	sess, ok := value.(session.Session)
	return sess, ok
}
