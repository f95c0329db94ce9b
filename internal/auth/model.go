package auth

import "time"

// Role is an admin account's permission level.
type Role string

const (
	RoleAdmin    Role = "Admin"
	RoleEditor   Role = "Editor"
	RoleDesigner Role = "Designer"
	RoleViewer   Role = "Viewer"
)

var roleLevel = map[Role]int{
	RoleViewer:   1,
	RoleDesigner: 2,
	RoleEditor:   3,
	RoleAdmin:    4,
}

// Valid reports whether r is a known role.
func (r Role) Valid() bool {
	_, ok := roleLevel[r]
	return ok
}

// AtLeast reports whether r grants everything min does. Unknown roles grant
// nothing.
func (r Role) AtLeast(min Role) bool {
	return roleLevel[r] >= roleLevel[min] && roleLevel[r] > 0
}

// User is a signed-in admin account, without credentials.
type User struct {
	Username string `json:"username"`
	Name     string `json:"name"`
	Role     Role   `json:"role"`
}

// Session is the persisted login state.
type Session struct {
	User     User      `json:"user"`
	LoggedIn time.Time `json:"loggedIn"`
}
