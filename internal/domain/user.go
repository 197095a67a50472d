package domain

// Role classifies what the current session holder may do.
type Role string

const (
	RoleAnonymous Role = "anonymous"
	RoleUser      Role = "user"
	RoleAdmin     Role = "admin"
)

// User is a registered account. The credential is an opaque string compared by
// exact match; it is advisory, not a security mechanism.
type User struct {
	Username   string `json:"username"`
	Credential string `json:"credential"`
	Role       Role   `json:"role"`
}
