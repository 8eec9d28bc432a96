package domain

import "go.trai.ch/zerr"

// Role classifies why a library is used within an application category.
type Role string

const (
	// RoleSensor covers libraries that read sensors or devices.
	RoleSensor Role = "sens"
	// RoleProcessing covers libraries that process collected data.
	RoleProcessing Role = "proc"
	// RoleNetworking covers libraries that move data over the network.
	RoleNetworking Role = "net"
)

// Roles lists every role in report order.
var Roles = []Role{RoleSensor, RoleProcessing, RoleNetworking}

// ParseRole converts a role name into a Role.
func ParseRole(s string) (Role, error) {
	for _, r := range Roles {
		if string(r) == s {
			return r, nil
		}
	}
	return "", zerr.With(zerr.Wrap(ErrUnknownRole, "invalid role"), "role", s)
}

// Label returns the human-readable name of the role used in reports.
func (r Role) Label() string {
	switch r {
	case RoleSensor:
		return "sensor"
	case RoleProcessing:
		return "data processing"
	case RoleNetworking:
		return "networking"
	default:
		return string(r)
	}
}

// LibrarySet is the set of third-party packages one category uses for one role.
type LibrarySet struct {
	Category  string
	Role      Role
	Libraries []string
}

// CategoryLibraries pairs a category with a list of libraries.
type CategoryLibraries struct {
	Category  string
	Libraries []string
}

// StatsReport is the aggregate result of the statistics phase.
type StatsReport struct {
	// Apps is the number of distinct applications across categories.
	Apps int
	// Libraries is the number of distinct libraries across all category and role sets.
	Libraries int
	// Common holds, per role, the libraries used by two or more categories.
	Common map[Role][]FrequencyEntry
	// Unique holds, per role, the libraries used by exactly one category.
	Unique map[Role][]CategoryLibraries
	// NativeCalls counts native libraries detected by name pattern.
	NativeCalls []FrequencyEntry
}
