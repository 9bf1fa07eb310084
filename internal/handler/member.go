package handler

import (
	"net/http"

	"github.com/dwguild/backend/internal/model"
	"github.com/dwguild/backend/internal/service"
)

// MemberHandler handles roster endpoints
type MemberHandler struct {
	memberService *service.MemberService
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService *service.MemberService) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// CreateMemberRequest represents the create endpoint request body
type CreateMemberRequest struct {
	CharacterName  string  `json:"characterName"`
	Class          string  `json:"class"`
	RaidAssignment *string `json:"raidAssignment"`
	Role           *string `json:"role"`
}

// UpdateMemberRequest represents the update endpoint request body. Absent
// and empty fields are treated the same: the stored value is kept.
type UpdateMemberRequest struct {
	CharacterName  string `json:"characterName"`
	Class          string `json:"class"`
	RaidAssignment string `json:"raidAssignment"`
	Role           string `json:"role"`
}

// List handles GET /members
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.memberService.List(r.Context())
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, members)
}

// Create handles POST /members
func (h *MemberHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	member, err := h.memberService.Create(r.Context(), service.CreateMemberRequest{
		CharacterName:  req.CharacterName,
		Class:          req.Class,
		RaidAssignment: req.RaidAssignment,
		Role:           req.Role,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusCreated, member)
}

// Update handles PUT /members/{id}
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	var req UpdateMemberRequest
	if err := DecodeJSON(r, &req); err != nil {
		WriteError(w, model.NewBadRequestError("invalid request body"))
		return
	}

	member, err := h.memberService.Update(r.Context(), id, model.MemberPatch{
		CharacterName:  req.CharacterName,
		Class:          req.Class,
		RaidAssignment: req.RaidAssignment,
		Role:           req.Role,
	})
	if err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteJSON(w, http.StatusOK, member)
}

// Delete handles DELETE /members/{id}
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")

	if err := h.memberService.Delete(r.Context(), id); err != nil {
		WriteError(w, MapServiceError(err))
		return
	}

	WriteMessage(w, http.StatusOK, "Member deleted")
}
