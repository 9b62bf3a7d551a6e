package api

import (
	"net/http"

	"github.com/sports-academy/server/internal/api/shared"
	"github.com/sports-academy/server/internal/platform/logger"
)

// respondInternalError logs the failure and sends the generic server error
// body. Store and gateway failures are deliberately not differentiated to
// the client.
func respondInternalError(w http.ResponseWriter, r *http.Request, msg string, err error) {
	logger.FromContext(r.Context()).Error(msg, "error", err)
	shared.RespondWithError(w, r, http.StatusInternalServerError, "internal server error")
}
