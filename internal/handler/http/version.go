package http

import (
	"net/http"
)

func (h *Handler) getVersion(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(h.buildInfo.Version))
}
