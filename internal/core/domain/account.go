package domain

import "time"

// Seeded role names. Matching is exact and case-sensitive.
const (
	RoleAdmin       = "Admin"
	RoleAgent       = "Agent"
	RolePlayer      = "Player"
	RoleClubManager = "ClubManager"
)

// SeedRoles is the fixed role set written at startup, in id order.
var SeedRoles = []string{RoleAdmin, RoleAgent, RolePlayer, RoleClubManager}

// RoleID identifies a row in the roles table.
type RoleID int64

// Role is an immutable named role.
type Role struct {
	ID   RoleID `json:"id"`
	Name string `json:"name"`
}

// Account is the stored user row. PasswordHash never leaves the service layer.
type Account struct {
	ID           int64
	FullName     string
	Email        string
	RoleID       RoleID
	PasswordHash string
	Phone        *string
	CreatedAt    time.Time
}

// AccountView is the read projection: role id replaced by its name and no
// credential material.
type AccountView struct {
	ID        int64     `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	CreatedAt time.Time `json:"created_at"`
	Role      string    `json:"role"`
}

// AccountChanges is the translated column set of a partial update. A nil field
// is left untouched.
type AccountChanges struct {
	RoleID       *RoleID
	PasswordHash *string
	FullName     *string
	Email        *string
	Phone        *string
}

// IsEmpty reports whether no column would be written.
func (c AccountChanges) IsEmpty() bool {
	return c.RoleID == nil &&
		c.PasswordHash == nil &&
		c.FullName == nil &&
		c.Email == nil &&
		c.Phone == nil
}

// Fields lists the names of the columns being changed, for logs and audit.
func (c AccountChanges) Fields() []string {
	var out []string
	if c.RoleID != nil {
		out = append(out, "role")
	}
	if c.PasswordHash != nil {
		out = append(out, "password")
	}
	if c.FullName != nil {
		out = append(out, "full_name")
	}
	if c.Email != nil {
		out = append(out, "email")
	}
	if c.Phone != nil {
		out = append(out, "phone")
	}
	return out
}
