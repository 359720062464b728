// Package rbac es la única fuente de verdad del mapeo rol → permisos.
// Los permisos nunca se editan de forma independiente: siempre se derivan
// del rol en el momento de la asignación (ver Assignment).
package rbac

// Roles válidos del sistema.
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// Tabla canónica rol → permisos. El orden es parte del contrato con los
// clientes (UI de perfil y UI de admin), no reordenar.
var rolePermissions = map[string][]string{
	RoleUser: {
		"view_profile",
		"edit_profile",
		"join_events",
		"view_members",
		"participate_debates",
	},
	RoleAdmin: {
		"view_profile",
		"edit_profile",
		"join_events",
		"manage_users",
		"manage_events",
		"manage_gallery",
		"manage_alumni",
		"view_analytics",
		"system_settings",
	},
}

// CanonicalPermissions devuelve el conjunto canónico de permisos del rol.
// Es pura y total sobre la tabla fija; para un rol desconocido devuelve nil.
// Siempre retorna una copia: el llamador no puede mutar la tabla.
func CanonicalPermissions(role string) []string {
	perms, ok := rolePermissions[role]
	if !ok {
		return nil
	}
	out := make([]string, len(perms))
	copy(out, perms)
	return out
}

// IsValidRole informa si el nombre pertenece al conjunto fijo de roles.
func IsValidRole(role string) bool {
	_, ok := rolePermissions[role]
	return ok
}

// ValidRoles devuelve los roles válidos (para payloads de error).
func ValidRoles() []string {
	return []string{RoleAdmin, RoleUser}
}

// Assignment es un par (rol, permisos) garantizado consistente: solo se
// construye vía NewAssignment, de modo que ningún caso de uso puede persistir
// un registro con permisos divergentes de la tabla canónica.
type Assignment struct {
	role        string
	permissions []string
}

// NewAssignment construye el par rol/permisos canónico.
// Devuelve ok=false si el rol no pertenece al conjunto fijo.
func NewAssignment(role string) (Assignment, bool) {
	if !IsValidRole(role) {
		return Assignment{}, false
	}
	return Assignment{role: role, permissions: CanonicalPermissions(role)}, true
}

// Role devuelve el rol de la asignación.
func (a Assignment) Role() string { return a.role }

// Permissions devuelve una copia del conjunto de permisos.
func (a Assignment) Permissions() []string {
	out := make([]string, len(a.permissions))
	copy(out, a.permissions)
	return out
}

// HasPermission verifica pertenencia de un permiso en la asignación.
func (a Assignment) HasPermission(perm string) bool {
	for _, p := range a.permissions {
		if p == perm {
			return true
		}
	}
	return false
}
