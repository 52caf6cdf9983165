package http

import (
	"net/http"

	"github.com/MKhiriev/go-users-api/internal/utils"
	"github.com/MKhiriev/go-users-api/models"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) error {
	serverVersion := h.services.AppInfoService.GetAppVersion(r.Context())

	_, err := utils.WriteJSON(w, models.VersionResponse{Version: serverVersion}, http.StatusOK)
	return err
}
