// Package actor provides the value objects describing the authenticated user
// evaluated against permission rules: the Actor itself, its organization
// Memberships, and the Role and BusinessType enums.
//
// Memberships carry the business type and role resolved at load time so the
// access policies in the services package stay pure functions of in-memory
// state. The acting organization is always passed explicitly to policy checks;
// the actor holds no ambient "current organization" field.
package actor
