package model

// Role is the viewer's permission class. It is a closed set: anything the
// session store hands back that is not one of the three known strings maps
// to RoleUnknown, which renders info-only cards with no actions.
type Role uint8

const (
	RoleUnknown Role = iota
	RoleAdmin
	RoleAnonymousPatient
	RoleAuthenticatedPatient
)

// Wire values persisted by the login pages.
const (
	roleAdminValue         = "admin"
	roleAnonymousValue     = "patient"
	roleAuthenticatedValue = "loggedPatient"
)

func ParseRole(s string) Role {
	switch s {
	case roleAdminValue:
		return RoleAdmin
	case roleAnonymousValue:
		return RoleAnonymousPatient
	case roleAuthenticatedValue:
		return RoleAuthenticatedPatient
	default:
		return RoleUnknown
	}
}

func (r Role) String() string {
	switch r {
	case RoleAdmin:
		return roleAdminValue
	case RoleAnonymousPatient:
		return roleAnonymousValue
	case RoleAuthenticatedPatient:
		return roleAuthenticatedValue
	default:
		return "unknown"
	}
}
