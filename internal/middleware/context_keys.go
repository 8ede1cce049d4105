package middleware

import (
	"context"

	"github.com/gin-gonic/gin"
)

// userIDKey stores the authenticated admin's ID in the request context.
const userIDKey = contextKey("userID")

// adminEmailKey stores the authenticated admin's email in the request context.
const adminEmailKey = contextKey("adminEmail")

// GetUserIDFromContext retrieves the authenticated admin ID from the Gin context.
// It returns the ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	userID, ok := c.Request.Context().Value(userIDKey).(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// GetAdminEmailFromCtx retrieves the authenticated admin's email from a standard context.
func GetAdminEmailFromCtx(ctx context.Context) string {
	email, _ := ctx.Value(adminEmailKey).(string)
	return email
}

// WithAdmin returns a copy of ctx carrying the admin identity.
func WithAdmin(ctx context.Context, adminID, email string) context.Context {
	ctx = context.WithValue(ctx, userIDKey, adminID)
	return context.WithValue(ctx, adminEmailKey, email)
}
