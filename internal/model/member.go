package model

// Member represents a guild roster entry
type Member struct {
	ID             string  `json:"id"`
	CharacterName  string  `json:"characterName"`
	Class          string  `json:"class"`
	RaidAssignment *string `json:"raidAssignment"`
	Role           *string `json:"role"`
}

// MemberPatch carries a sparse update for a member. Empty fields are
// ignored; only fields with a non-empty value replace the stored one.
// This means a field can never be cleared back to null through a patch
// (notably raidAssignment) — that is the documented update policy, not
// an oversight.
type MemberPatch struct {
	CharacterName  string `json:"characterName"`
	Class          string `json:"class"`
	RaidAssignment string `json:"raidAssignment"`
	Role           string `json:"role"`
}

// IsZero returns true if the patch carries no changes
func (p MemberPatch) IsZero() bool {
	return p.CharacterName == "" && p.Class == "" && p.RaidAssignment == "" && p.Role == ""
}

// Apply merges the patch into the member under the sparse-patch policy
func (m *Member) Apply(p MemberPatch) {
	if p.CharacterName != "" {
		m.CharacterName = p.CharacterName
	}
	if p.Class != "" {
		m.Class = p.Class
	}
	if p.RaidAssignment != "" {
		v := p.RaidAssignment
		m.RaidAssignment = &v
	}
	if p.Role != "" {
		v := p.Role
		m.Role = &v
	}
}
