package middleware

import (
	"context"

	"stylehub-be/internal/user"

	"github.com/gin-gonic/gin"
)

const currentUserKey = "currentUser"

type ctxKey string

const userIDKey ctxKey = "user_id"

// CurrentUser returns the authenticated user placed by Authenticate.
func CurrentUser(c *gin.Context) (*user.User, bool) {
	v, ok := c.Get(currentUserKey)
	if !ok {
		return nil, false
	}
	u, ok := v.(*user.User)
	return u, ok
}

func setCurrentUser(c *gin.Context, u *user.User) {
	c.Set(currentUserKey, u)
	ctx := context.WithValue(c.Request.Context(), userIDKey, u.ID)
	c.Request = c.Request.WithContext(ctx)
}

// UserIDFromContext reports the caller's id when the request carries an
// authenticated session; used for rate-limit bucketing.
func UserIDFromContext(ctx context.Context) (int, bool) {
	id, ok := ctx.Value(userIDKey).(int)
	return id, ok
}
