package dto

import "time"

// SocialLinksDTO enlaces sociales del perfil.
type SocialLinksDTO struct {
	Facebook string `json:"facebook"`
	Twitter  string `json:"twitter"`
	LinkedIn string `json:"linkedin"`
}

// SignupRequest entrada del alta explícita de usuario (signup).
type SignupRequest struct {
	Name  string `json:"name" validate:"required,min=1,max=200"`
	Email string `json:"email" validate:"required,email"`
}

// SignupResponse salida del signup. Si el email ya existía se devuelve el
// registro ganador sin mutarlo (la operación es idempotente).
type SignupResponse struct {
	Message     string   `json:"message"`
	InsertedID  string   `json:"insertedId"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions,omitempty"`
}

// LoginRequest entrada del login: ID token emitido por el proveedor externo.
type LoginRequest struct {
	IDToken string `json:"idToken" validate:"required"`
}

// LoginResponse token de sesión propio + usuario aprovisionado.
type LoginResponse struct {
	Token string          `json:"token"`
	User  ProfileResponse `json:"user"`
}

// ProfileResponse perfil completo del usuario (forma persistida que consumen
// la UI de perfil y la UI de admin; no cambiar incompatiblemente).
type ProfileResponse struct {
	ID             string         `json:"id"`
	Email          string         `json:"email"`
	Name           string         `json:"name"`
	PhotoURL       string         `json:"photoURL"`
	Phone          string         `json:"phone"`
	Department     string         `json:"department"`
	StudentID      string         `json:"studentId"`
	Batch          string         `json:"batch"`
	Bio            string         `json:"bio"`
	Skills         []string       `json:"skills"`
	SocialLinks    SocialLinksDTO `json:"socialLinks"`
	Role           string         `json:"role"`
	Permissions    []string       `json:"permissions"`
	IsActive       bool           `json:"isActive"`
	RoleAssignedAt time.Time      `json:"roleAssignedAt"`
	AssignedBy     string         `json:"assignedBy"`
	JoinedAt       time.Time      `json:"joinedAt"`
	LastUpdated    time.Time      `json:"lastUpdated"`
}

// UpdateProfileRequest campos de perfil editables. Role y permissions no se
// aceptan aquí a propósito: solo la asignación de rol puede mutarlos.
type UpdateProfileRequest struct {
	Name        string         `json:"name"`
	Phone       string         `json:"phone"`
	Department  string         `json:"department"`
	StudentID   string         `json:"studentId"`
	Batch       string         `json:"batch"`
	Bio         string         `json:"bio"`
	Skills      []string       `json:"skills"`
	SocialLinks SocialLinksDTO `json:"socialLinks"`
	PhotoURL    string         `json:"photoURL"`
}

// UpdateProfileResponse resultado de la actualización.
type UpdateProfileResponse struct {
	Message       string `json:"message"`
	ModifiedCount int64  `json:"modifiedCount"`
}

// PermissionsResponse rol y permisos efectivos del usuario autenticado.
type PermissionsResponse struct {
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// UserSummary vista saneada de un usuario para listados de admin.
type UserSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Email       string    `json:"email"`
	Role        string    `json:"role"`
	Department  string    `json:"department"`
	Batch       string    `json:"batch"`
	IsActive    bool      `json:"isActive"`
	PhotoURL    string    `json:"photoURL"`
	JoinedAt    time.Time `json:"joinedAt"`
	LastUpdated time.Time `json:"lastUpdated"`
}

// MemberSummary entrada del directorio de miembros (permiso view_members).
// Más estrecha que UserSummary: sin estado de cuenta ni fechas de auditoría.
type MemberSummary struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Batch      string `json:"batch"`
	PhotoURL   string `json:"photoURL"`
	Bio        string `json:"bio"`
}

// SearchUsersResponse resultado de búsqueda de admin.
type SearchUsersResponse struct {
	Query string        `json:"query"`
	Count int           `json:"count"`
	Users []UserSummary `json:"users"`
}

// AssignRoleRequest entrada de la asignación de rol (solo admin).
type AssignRoleRequest struct {
	UserID  string `json:"userId" validate:"required"`
	NewRole string `json:"newRole" validate:"required"`
}

// UpdatedUserSummary resumen identidad/rol/permisos tras asignar rol.
type UpdatedUserSummary struct {
	ID          string   `json:"id"`
	Email       string   `json:"email"`
	Role        string   `json:"role"`
	Permissions []string `json:"permissions"`
}

// AssignRoleResponse salida de la asignación de rol.
type AssignRoleResponse struct {
	Message     string             `json:"message"`
	UpdatedUser UpdatedUserSummary `json:"updatedUser"`
}
