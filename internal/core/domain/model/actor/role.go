package actor

import (
	"fmt"

	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// Role represents an actor's permission tier within one organization membership.
// Roles are ranked only in the sense that policy rules name explicit role sets;
// there is no implicit hierarchy between them.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	// This value (0) helps catch uninitialized Role values.
	RoleUnknown Role = iota

	// RoleAdmin has full control within the organization.
	RoleAdmin

	// RoleCEO is an executive role with broad managerial rights.
	RoleCEO

	// RoleManager manages day-to-day organization operations.
	RoleManager

	// RoleOperations handles operational workflows.
	RoleOperations

	// RoleFinance handles billing and financial workflows.
	RoleFinance

	// RoleViewer has read-only access within the organization.
	RoleViewer
)

func getRoleStrings() map[Role]string {
	return map[Role]string{
		RoleUnknown:    "unknown",
		RoleAdmin:      "admin",
		RoleCEO:        "ceo",
		RoleManager:    "manager",
		RoleOperations: "operations",
		RoleFinance:    "finance",
		RoleViewer:     "viewer",
	}
}

func getValidRoleStrings() map[Role]string {
	//nolint:exhaustive // RoleUnknown is intentionally excluded as it's invalid
	return map[Role]string{
		RoleAdmin:      "admin",
		RoleCEO:        "ceo",
		RoleManager:    "manager",
		RoleOperations: "operations",
		RoleFinance:    "finance",
		RoleViewer:     "viewer",
	}
}

// Validate checks if the Role value is valid.
// RoleUnknown (0) and any other values outside the declared set are invalid.
func (r Role) Validate() error {
	if _, ok := getValidRoleStrings()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the lowercase name of the role as stored in memberships.
// Returns "unknown" for invalid role values.
func (r Role) String() string {
	if str, ok := getRoleStrings()[r]; ok {
		return str
	}
	return "unknown"
}

// RoleFromString parses a role from its membership string form.
// Returns an error for unrecognized values.
func RoleFromString(s string) (Role, error) {
	for role, str := range getValidRoleStrings() {
		if str == s {
			return role, nil
		}
	}
	return RoleUnknown, errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%q is not a valid role", s))
}

// IsManagerial reports whether the role belongs to the managerial tier
// {admin, ceo, manager} used by user and join-request rules.
func (r Role) IsManagerial() bool {
	return r == RoleAdmin || r == RoleCEO || r == RoleManager
}

// IsExecutive reports whether the role belongs to the executive tier
// {admin, ceo} used by user update/delete and invitation delete rules.
func (r Role) IsExecutive() bool {
	return r == RoleAdmin || r == RoleCEO
}
