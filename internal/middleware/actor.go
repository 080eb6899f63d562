package middleware

import (
	"context"
	"log/slog"

	"github.com/gin-gonic/gin"
)

const actorCtxKey = contextKey("actor")

// DefaultActor is attributed to requests that carry no actor header.
const DefaultActor = "system"

// ActorHeader names the header upstream callers use to attribute changes.
// Identity verification happens upstream; this backend only records who acted.
const ActorHeader = "X-Actor-ID"

// ActorMiddleware stores the acting user's identifier in the request context
// so audit fields can be populated downstream.
func ActorMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		actor := c.GetHeader(ActorHeader)
		if actor == "" {
			actor = DefaultActor
		}

		ctx := context.WithValue(c.Request.Context(), actorCtxKey, actor)

		// Enrich the request logger so downstream logs carry the actor.
		enriched := GetLoggerFromCtx(ctx).With(slog.String("actor", actor))
		ctx = context.WithValue(ctx, loggerCtxKey, enriched)

		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// GetActorFromContext retrieves the acting user's identifier from the context.
func GetActorFromContext(ctx context.Context) string {
	actor, ok := ctx.Value(actorCtxKey).(string)
	if !ok || actor == "" {
		return DefaultActor
	}
	return actor
}
