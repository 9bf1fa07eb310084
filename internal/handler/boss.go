package handler

import (
	"net/http"

	"github.com/dwguild/backend/internal/model"
	"github.com/dwguild/backend/internal/service"
)

// BossHandler handles boss endpoints
type BossHandler struct {
	bossService *service.BossService
}

// NewBossHandler creates a new boss handler
func NewBossHandler(bossService *service.BossService) *BossHandler {
	return &BossHandler{
		bossService: bossService,
	}
}

// UpdateRolesRequest represents the roles update request body
type UpdateRolesRequest struct {
	Roles map[string]string `json:"roles"`
}

// List handles GET /bosses
func (h *BossHandler) List(w http.ResponseWriter, r *http.Request) {
	bosses, err := h.bossService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, bosses)
}

// Get handles GET /bosses/{id}
func (h *BossHandler) Get(w http.ResponseWriter, r *http.Request) {
	boss, err := h.bossService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, boss)
}

// GetByName handles GET /bosses/name/{name}
func (h *BossHandler) GetByName(w http.ResponseWriter, r *http.Request) {
	boss, err := h.bossService.GetByName(r.Context(), r.PathValue("name"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, boss)
}

// UpdateRoles handles PUT /bosses/{id}/roles
func (h *BossHandler) UpdateRoles(w http.ResponseWriter, r *http.Request) {
	var req UpdateRolesRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	boss, err := h.bossService.UpdateRoles(r.Context(), r.PathValue("id"), req.Roles)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, boss)
}
