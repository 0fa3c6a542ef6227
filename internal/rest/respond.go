package rest

import (
	"encoding/json"
	"net/http"
	"strconv"

	"cantina-be/internal/logger"
	"cantina-be/internal/utils"

	"go.uber.org/zap"
)

func decodeJSON(r *http.Request, dst any) error {
	return json.NewDecoder(r.Body).Decode(dst)
}

func pathID(r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// internalError hides unexpected failures behind a generic body; the detail
// goes to the log only.
func internalError(w http.ResponseWriter, r *http.Request, err error) {
	logger.FromCtx(r.Context()).Error("unhandled error",
		zap.String("path", r.URL.Path),
		zap.Error(err),
	)
	utils.WriteJSONError(w, "Internal server error", http.StatusInternalServerError)
}
