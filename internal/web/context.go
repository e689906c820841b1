package web

import (
	"context"
	"net/http"

	"github.com/google/uuid"

	"github.com/JonMunkholm/bwarm/internal/core"
)

// RunIDHeader carries the id of a run started by a request.
const RunIDHeader = "X-Run-Id"

// withRunID assigns a fresh run id to the request context and echoes it in
// the response headers, so the id is known even if the run fails.
func withRunID(w http.ResponseWriter, r *http.Request) (context.Context, string) {
	id := uuid.NewString()
	w.Header().Set(RunIDHeader, id)
	return core.ContextWithRunID(r.Context(), id), id
}
