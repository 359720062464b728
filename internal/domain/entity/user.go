package entity

import "time"

// AssignedBySystem marca los registros aprovisionados automáticamente
// (primer acceso de una identidad nunca vista).
const AssignedBySystem = "system"

// SocialLinks enlaces sociales del perfil (forma libre, sin invariantes).
type SocialLinks struct {
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
}

// User representa un miembro del club. El email es la clave natural única
// (el subject del proveedor de identidad no se persiste); Role y Permissions
// se mutan siempre juntos vía asignación de rol — Permissions es un caché
// denormalizado de rbac.CanonicalPermissions(Role).
type User struct {
	ID          string
	Email       string
	Name        string
	PhotoURL    string
	Phone       string
	Department  string
	StudentID   string
	Batch       string
	Bio         string
	Skills      []string
	SocialLinks SocialLinks

	Role        string   // "user" | "admin"
	Permissions []string // siempre == rbac.CanonicalPermissions(Role)
	IsActive    bool     // false → invisible para autorización

	RoleAssignedAt time.Time
	AssignedBy     string // "system" o email del admin que asignó el rol
	JoinedAt       time.Time
	LastUpdated    time.Time
}

// HasPermission verifica pertenencia en el conjunto de permisos persistido.
func (u *User) HasPermission(perm string) bool {
	for _, p := range u.Permissions {
		if p == perm {
			return true
		}
	}
	return false
}

// ProfileUpdate campos de perfil editables por el propio usuario.
// No incluye Role, Permissions ni IsActive a propósito: la única vía de
// mutación de esos campos es la operación de asignación de rol.
type ProfileUpdate struct {
	Name        string
	Phone       string
	Department  string
	StudentID   string
	Batch       string
	Bio         string
	Skills      []string
	SocialLinks SocialLinks
	PhotoURL    string
}
