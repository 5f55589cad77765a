package auth

// Action names a privileged operation guarded by a role capability rather
// than a hardcoded admin identity, so roles can be extended without touching
// core logic.
type Action string

const (
	ActionManageCatalog Action = "catalog:manage"
	ActionManagePromos  Action = "promos:manage"
)

const RoleAdmin = "admin"

var rolePermissions = map[string]map[Action]struct{}{
	RoleAdmin: {
		ActionManageCatalog: {},
		ActionManagePromos:  {},
	},
}

func Authorize(role string, action Action) bool {
	perms, ok := rolePermissions[role]
	if !ok {
		return false
	}
	_, ok = perms[action]
	return ok
}
