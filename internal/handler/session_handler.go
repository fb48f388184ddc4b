package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/dailywalker/walkloop-backend-go/pkg/response"
)

// fingerprintKeys is the documented key set clients are expected to
// send. Unknown keys are stored as-is; this list is advisory only.
var fingerprintKeys = []string{
	"userAgent", "language", "platform", "screen", "timezone", "browser", "os",
}

// SessionHandler issues anonymous user identifiers for clients that
// have none stored yet.
type SessionHandler struct{}

// NewSessionHandler creates a new session handler
func NewSessionHandler() *SessionHandler {
	return &SessionHandler{}
}

// NewSession handles GET /api/v1/session
func (h *SessionHandler) NewSession(c *gin.Context) {
	response.Success(c, gin.H{
		"user_id":          "user_" + uuid.NewString(),
		"fingerprint_keys": fingerprintKeys,
	})
}
