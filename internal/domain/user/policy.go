package user

type Operation string

const (
	OpCreateUser        Operation = "create_user"
	OpListUsers         Operation = "list_users"
	OpGenerateSlots     Operation = "generate_slots"
	OpQueryAvailability Operation = "query_availability"
	OpGetSlot           Operation = "get_slot"
	OpReserveSlot       Operation = "reserve_slot"
	OpListPending       Operation = "list_pending"
	OpFinalize          Operation = "finalize_inspection"
)

// permissions is the static authorization table; every authenticated endpoint
// resolves its operation against it.
var permissions = map[Operation][]Role{
	OpCreateUser:        {RoleAdmin},
	OpListUsers:         {RoleAdmin},
	OpGenerateSlots:     {RoleAdmin},
	OpQueryAvailability: {RoleClient, RoleInspector, RoleAdmin},
	OpGetSlot:           {RoleClient, RoleInspector, RoleAdmin},
	OpReserveSlot:       {RoleClient, RoleAdmin},
	OpListPending:       {RoleInspector, RoleAdmin},
	OpFinalize:          {RoleInspector, RoleAdmin},
}

// AllowedRoles returns the roles permitted to invoke op. The returned slice is
// shared; callers must not mutate it.
func AllowedRoles(op Operation) []Role {
	return permissions[op]
}

func (r Role) Can(op Operation) bool {
	for _, allowed := range permissions[op] {
		if r == allowed {
			return true
		}
	}
	return false
}
