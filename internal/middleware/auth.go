package middleware

import (
	"net/http"
	"strings"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/wb-go/wbf/ginext"
)

const actorKey = "actor"

type tokenParser interface {
	Parse(tokenStr string) (domain.Actor, error)
}

// Auth validates the bearer token and stores the acting identity in the
// request context for handlers to pick up via ActorFrom.
func Auth(parser tokenParser) ginext.HandlerFunc {
	return func(c *ginext.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing authorization"})
			return
		}

		parts := strings.Fields(header)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid authorization format"})
			return
		}

		actor, err := parser.Parse(parts[1])
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "invalid token"})
			return
		}

		c.Set(actorKey, actor)
		c.Next()
	}
}

// ActorFrom returns the authenticated actor stored by Auth.
func ActorFrom(c *ginext.Context) (domain.Actor, bool) {
	v, ok := c.Get(actorKey)
	if !ok {
		return domain.Actor{}, false
	}
	actor, ok := v.(domain.Actor)
	return actor, ok
}
