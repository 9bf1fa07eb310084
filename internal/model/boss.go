package model

// Boss represents a raid encounter. Bosses are read-only from the public
// surface; only the roles mapping can be replaced by the admin.
type Boss struct {
	ID    string            `json:"id"`
	Name  string            `json:"name"`
	Roles map[string]string `json:"roles"`
}
