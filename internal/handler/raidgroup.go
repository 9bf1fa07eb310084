package handler

import (
	"net/http"

	"github.com/dwguild/backend/internal/model"
	"github.com/dwguild/backend/internal/service"
)

// RaidGroupHandler handles raid group endpoints
type RaidGroupHandler struct {
	groupService *service.RaidGroupService
}

// NewRaidGroupHandler creates a new raid group handler
func NewRaidGroupHandler(groupService *service.RaidGroupService) *RaidGroupHandler {
	return &RaidGroupHandler{
		groupService: groupService,
	}
}

// List handles GET /raid-groups
func (h *RaidGroupHandler) List(w http.ResponseWriter, r *http.Request) {
	groups, err := h.groupService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, groups)
}

// Get handles GET /raid-groups/{id}
func (h *RaidGroupHandler) Get(w http.ResponseWriter, r *http.Request) {
	group, err := h.groupService.Get(r.Context(), r.PathValue("id"))
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, group)
}

// Create handles POST /raid-groups. The body is a free-form attribute
// object; there is no schema to validate against.
func (h *RaidGroupHandler) Create(w http.ResponseWriter, r *http.Request) {
	var attrs map[string]any
	if err := DecodeJSON(r, &attrs); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	group, err := h.groupService.Create(r.Context(), attrs)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, group)
}

// Update handles PUT /raid-groups/{id}
func (h *RaidGroupHandler) Update(w http.ResponseWriter, r *http.Request) {
	var attrs map[string]any
	if err := DecodeJSON(r, &attrs); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	group, err := h.groupService.Update(r.Context(), r.PathValue("id"), attrs)
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, group)
}
