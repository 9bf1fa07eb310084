package model

// RaidGroup is a typed envelope around caller-supplied fields. Raid groups
// have no schema beyond the identifier, so whatever attributes the admin
// submits are persisted verbatim.
type RaidGroup struct {
	ID         string         `json:"id"`
	Attributes map[string]any `json:"attributes"`
}

// Merge applies an attribute patch to the group. Keys with a nil value are
// skipped (sparse-patch policy); everything else overwrites the stored
// attribute of the same name.
func (g *RaidGroup) Merge(attrs map[string]any) {
	if g.Attributes == nil {
		g.Attributes = make(map[string]any, len(attrs))
	}
	for k, v := range attrs {
		if v == nil {
			continue
		}
		g.Attributes[k] = v
	}
}
