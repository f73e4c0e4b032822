// Package services provides domain services that evaluate business rules
// spanning multiple aggregates. Its centerpiece is the set of access
// policies: one policy type per entity kind, each exposing boolean decision
// methods for the actions the platform supports.
//
// The package includes:
//   - OrderPolicy / OrderGroupPolicy: marketplace order visibility and writes
//   - ServicePolicy / VesselPolicy / PortPolicy: catalog, fleet and reference data
//   - OrganizationPolicy / UserPolicy: tenant and roster administration
//   - JoinRequestPolicy / InvitationPolicy: membership workflows
//   - ChatConversationPolicy / WizardSessionPolicy: per-user surfaces
//
// Policies are pure predicates with no side effects. They never log, never
// return errors, and fail closed when handed nil or unconstructed values.
package services
