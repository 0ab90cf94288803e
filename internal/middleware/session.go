package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cherilynwood/dog-enrichment-backend/internal/logger"
	"github.com/cherilynwood/dog-enrichment-backend/internal/services"
	"github.com/cherilynwood/dog-enrichment-backend/internal/types"
)

const profileContextKey = "dog_profile"

type SessionMiddleware struct {
	log            *logger.Logger
	sessionService services.SessionService
}

func NewSessionMiddleware(log *logger.Logger, sessionService services.SessionService) *SessionMiddleware {
	return &SessionMiddleware{
		log:            log.With("middleware", "SessionMiddleware"),
		sessionService: sessionService,
	}
}

// LoadProfile decodes the session cookie into the request context. A
// missing or invalid cookie is not an error; the profile is simply
// empty.
func (sm *SessionMiddleware) LoadProfile() gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, err := c.Cookie(services.SessionCookieName)
		if err == nil && cookie != "" {
			profile, decodeErr := sm.sessionService.DecodeProfile(cookie)
			if decodeErr != nil {
				sm.log.Debug("Ignoring invalid session cookie", "error", decodeErr)
			} else {
				c.Set(profileContextKey, profile)
			}
		}
		c.Next()
	}
}

func ProfileFromContext(c *gin.Context) types.DogProfile {
	if v, ok := c.Get(profileContextKey); ok {
		if p, ok := v.(types.DogProfile); ok {
			return p
		}
	}
	return types.DogProfile{}
}
