package handler

import (
	"net/http"

	"hostelhub/internal/delivery/http/middleware"

	"github.com/google/uuid"
)

// actorFromContext pulls the authenticated user and role out of the request
// context. Both are set by the auth middleware.
func actorFromContext(r *http.Request) (uuid.UUID, int, bool) {
	userID, ok := middleware.GetUserIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, 0, false
	}
	roleID, ok := middleware.GetRoleIDFromContext(r.Context())
	if !ok {
		return uuid.Nil, 0, false
	}
	return userID, roleID, true
}
