package actor

import (
	"fmt"

	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// BusinessType is the category of an organization. It determines which
// workflows the organization may participate in: vessel owners place orders,
// shipping agencies fulfill order groups, and the portzapp team has
// platform-wide oversight.
type BusinessType int

const (
	// BusinessTypeUnknown represents an invalid or undefined business type.
	BusinessTypeUnknown BusinessType = iota

	// BusinessTypeVesselOwner organizations own vessels and place orders.
	BusinessTypeVesselOwner

	// BusinessTypeShippingAgency organizations own service catalogs and
	// fulfill order groups.
	BusinessTypeShippingAgency

	// BusinessTypePortzappTeam organizations administer the platform.
	// Membership in any portzapp_team organization grants the platform
	// override on view-class checks.
	BusinessTypePortzappTeam
)

func getBusinessTypeStrings() map[BusinessType]string {
	return map[BusinessType]string{
		BusinessTypeUnknown:        "unknown",
		BusinessTypeVesselOwner:    "vessel_owner",
		BusinessTypeShippingAgency: "shipping_agency",
		BusinessTypePortzappTeam:   "portzapp_team",
	}
}

func getValidBusinessTypeStrings() map[BusinessType]string {
	//nolint:exhaustive // BusinessTypeUnknown is intentionally excluded as it's invalid
	return map[BusinessType]string{
		BusinessTypeVesselOwner:    "vessel_owner",
		BusinessTypeShippingAgency: "shipping_agency",
		BusinessTypePortzappTeam:   "portzapp_team",
	}
}

// Validate checks if the BusinessType value is valid.
func (b BusinessType) Validate() error {
	if _, ok := getValidBusinessTypeStrings()[b]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("business type is invalid",
			fmt.Errorf("%d is not a valid business type", b))
	}
	return nil
}

// String returns the snake_case name of the business type.
// Returns "unknown" for invalid values.
func (b BusinessType) String() string {
	if str, ok := getBusinessTypeStrings()[b]; ok {
		return str
	}
	return "unknown"
}

// BusinessTypeFromString parses a business type from its string form.
// "platform_admin" appears in legacy seed data and maps to portzapp_team;
// it is not a distinct enforcement category.
func BusinessTypeFromString(s string) (BusinessType, error) {
	if s == "platform_admin" {
		return BusinessTypePortzappTeam, nil
	}
	for bt, str := range getValidBusinessTypeStrings() {
		if str == s {
			return bt, nil
		}
	}
	return BusinessTypeUnknown, errs.NewValueIsInvalidErrorWithCause("business type is invalid",
		fmt.Errorf("%q is not a valid business type", s))
}
