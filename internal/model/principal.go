package model

import "github.com/google/uuid"

type Role string

const (
	RoleAdmin   Role = "ADMIN"
	RoleManager Role = "MANAGER"
	RoleViewer  Role = "VIEWER"
)

// Principal is the authenticated caller extracted from the access token.
type Principal struct {
	UserID uuid.UUID
	Email  string
	Role   Role
}

func (p Principal) IsAdmin() bool   { return p.Role == RoleAdmin }
func (p Principal) IsManager() bool { return p.Role == RoleManager }
func (p Principal) IsViewer() bool  { return p.Role == RoleViewer }

// CanManage reports whether the principal may mutate base collections or
// generate exports.
func (p Principal) CanManage() bool {
	return p.Role == RoleAdmin || p.Role == RoleManager
}
