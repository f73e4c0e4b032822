// Package wizard provides the OrderWizardSession aggregate. A session stores
// a user's in-progress order draft so the order placement flow survives page
// reloads. Sessions are personal: only their owner may read or change them.
package wizard

import (
	"errors"
	"fmt"
	"time"

	"github.com/PortzApp/portzapp-web-sub002/internal/core/domain/model/kernel"
	"github.com/PortzApp/portzapp-web-sub002/internal/pkg/errs"
)

// Step is the wizard page the user is currently on.
type Step int

const (
	// StepUnknown is the invalid zero value.
	StepUnknown Step = iota
	// StepVesselPort collects the vessel and the port of call.
	StepVesselPort
	// StepServices collects the requested service selections.
	StepServices
	// StepReview shows the draft before placement.
	StepReview
	// StepCompleted marks a session consumed by a placed order.
	StepCompleted
)

var (
	// ErrSessionIsNotConstructed is returned when using an improperly
	// initialized Session.
	ErrSessionIsNotConstructed = errors.New(
		"Session must be created via NewSession constructor")

	// ErrSessionIsCompleted is returned when mutating a consumed session.
	ErrSessionIsCompleted = errs.NewValueIsInvalidError(
		"wizard session has already been completed")

	// ErrDraftIsIncomplete is returned when completing a session that is
	// missing a vessel, a port, or service selections.
	ErrDraftIsIncomplete = errs.NewValueIsInvalidError(
		"wizard draft is missing vessel, port, or services")
)

func getStepStrings() map[Step]string {
	return map[Step]string{
		StepUnknown:    "unknown",
		StepVesselPort: "vessel_port",
		StepServices:   "services",
		StepReview:     "review",
		StepCompleted:  "completed",
	}
}

// String returns the snake_case wire form of the step.
func (s Step) String() string {
	return getStepStrings()[s]
}

// Validate returns an error if the step is not one of the defined values.
func (s Step) Validate() error {
	if s == StepUnknown {
		return errs.NewValueIsRequiredError("step")
	}
	if _, ok := getStepStrings()[s]; !ok {
		return errs.NewValueIsInvalidError(fmt.Sprintf("unknown wizard step: %d", int(s)))
	}
	return nil
}

// StepFromString parses the wire form of a step.
func StepFromString(v string) (Step, error) {
	for step, str := range getStepStrings() {
		if str == v && step != StepUnknown {
			return step, nil
		}
	}
	return StepUnknown, errs.NewValueIsInvalidError(fmt.Sprintf("unknown wizard step: %s", v))
}

// Session is a user's in-progress order draft.
type Session struct {
	id     kernel.UUID
	userID kernel.UUID
	orgID  kernel.UUID
	step   Step

	vesselID   *kernel.UUID
	portID     *kernel.UUID
	serviceIDs []kernel.UUID

	updatedAt time.Time

	isConstructed bool
}

// NewSession starts an empty draft on the vessel and port step.
func NewSession(id, userID, orgID kernel.UUID, now time.Time) (*Session, error) {
	s := &Session{
		isConstructed: true,
	}

	if err := errors.Join(
		s.setID(id),
		s.setUserID(userID),
		s.setOrgID(orgID),
	); err != nil {
		return nil, err
	}

	s.step = StepVesselPort
	s.updatedAt = now
	return s, nil
}

// RestoreSession reconstructs a session from persistent storage.
func RestoreSession(
	id, userID, orgID kernel.UUID,
	step Step,
	vesselID, portID *kernel.UUID,
	serviceIDs []kernel.UUID,
	updatedAt time.Time,
) (*Session, error) {
	s, err := NewSession(id, userID, orgID, updatedAt)
	if err != nil {
		return nil, err
	}
	if err := step.Validate(); err != nil {
		return nil, err
	}
	s.step = step
	s.vesselID = vesselID
	s.portID = portID
	s.serviceIDs = serviceIDs
	return s, nil
}

// Validate ensures the session was created through a constructor.
func (s *Session) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrSessionIsNotConstructed
	}
	return nil
}

// ID returns the session's unique identifier.
func (s *Session) ID() kernel.UUID { return s.id }

// UserID returns the session's owner.
func (s *Session) UserID() kernel.UUID { return s.userID }

// OrgID returns the organization the draft order will be placed under.
func (s *Session) OrgID() kernel.UUID { return s.orgID }

// Step returns the wizard page the user is on.
func (s *Session) Step() Step { return s.step }

// VesselID returns the drafted vessel, nil until chosen.
func (s *Session) VesselID() *kernel.UUID { return s.vesselID }

// PortID returns the drafted port of call, nil until chosen.
func (s *Session) PortID() *kernel.UUID { return s.portID }

// ServiceIDs returns a copy of the drafted service selections.
func (s *Session) ServiceIDs() []kernel.UUID {
	out := make([]kernel.UUID, len(s.serviceIDs))
	copy(out, s.serviceIDs)
	return out
}

// UpdatedAt returns the last mutation time.
func (s *Session) UpdatedAt() time.Time { return s.updatedAt }

// OwnedBy reports whether the session belongs to the given user.
func (s *Session) OwnedBy(userID kernel.UUID) bool { return s.userID.IsEqual(userID) }

// SelectVesselAndPort records the vessel and port choice and advances to the
// services step.
func (s *Session) SelectVesselAndPort(vesselID, portID kernel.UUID, now time.Time) error {
	if s.step == StepCompleted {
		return ErrSessionIsCompleted
	}
	if err := errors.Join(vesselID.Validate(), portID.Validate()); err != nil {
		return err
	}
	s.vesselID = &vesselID
	s.portID = &portID
	s.step = StepServices
	s.updatedAt = now
	return nil
}

// SelectServices replaces the drafted service selections and advances to the
// review step when at least one service is chosen.
func (s *Session) SelectServices(serviceIDs []kernel.UUID, now time.Time) error {
	if s.step == StepCompleted {
		return ErrSessionIsCompleted
	}
	for _, id := range serviceIDs {
		if err := id.Validate(); err != nil {
			return err
		}
	}
	s.serviceIDs = append([]kernel.UUID(nil), serviceIDs...)
	if len(serviceIDs) > 0 {
		s.step = StepReview
	} else {
		s.step = StepServices
	}
	s.updatedAt = now
	return nil
}

// Complete marks the session consumed by a placed order. The draft must name
// a vessel, a port, and at least one service.
func (s *Session) Complete(now time.Time) error {
	if s.step == StepCompleted {
		return ErrSessionIsCompleted
	}
	if s.vesselID == nil || s.portID == nil || len(s.serviceIDs) == 0 {
		return ErrDraftIsIncomplete
	}
	s.step = StepCompleted
	s.updatedAt = now
	return nil
}

func (s *Session) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	s.id = id
	return nil
}

func (s *Session) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("userID")
	}
	s.userID = id
	return nil
}

func (s *Session) setOrgID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredError("orgID")
	}
	s.orgID = id
	return nil
}
