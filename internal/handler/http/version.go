package http

import (
	"net/http"

	"github.com/junerver/prompt-keeper/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

type healthResponse struct {
	Status           string `json:"status"`
	Version          string `json:"version"`
	Transport        string `json:"transport"`
	PublishedPrompts int    `json:"published_prompts"`
}

func (h *Handler) getHealth(w http.ResponseWriter, r *http.Request) {
	resp := healthResponse{
		Status:           "ok",
		Version:          h.services.AppInfoService.GetAppVersion(r.Context()),
		Transport:        h.listener.Transport,
		PublishedPrompts: len(h.mcp.Published()),
	}

	if _, err := utils.WriteJSON(w, resp, http.StatusOK); err != nil {
		h.logger.Err(err).Msg("error writing health response")
	}
}
