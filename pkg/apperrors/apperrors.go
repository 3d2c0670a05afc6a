// Package apperrors defines the typed error taxonomy shared by services and
// the HTTP error middleware. Handlers never match on message strings; they
// match on these types.
package apperrors

import (
	"fmt"
	"strings"
)

// NotFoundError reports an entity the store does not have.
type NotFoundError struct {
	Entity string
	Key    string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.Key)
}

func NewNotFound(entity, key string) *NotFoundError {
	return &NotFoundError{Entity: entity, Key: key}
}

// ReferenceError reports a dangling or illegal reference, such as a missing
// parent or a cycle.
type ReferenceError struct {
	Entity string
	Reason string
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
}

func NewReference(entity, reason string) *ReferenceError {
	return &ReferenceError{Entity: entity, Reason: reason}
}

// ConflictError reports a state the operation may not change: a unique value
// already taken, dependents that block a delete, or an illegal transition.
type ConflictError struct {
	Entity string
	Reason string
	Count  int64 // dependent count where applicable, 0 otherwise
}

func (e *ConflictError) Error() string {
	if e.Count > 0 {
		return fmt.Sprintf("%s: %s (%d)", e.Entity, e.Reason, e.Count)
	}
	return fmt.Sprintf("%s: %s", e.Entity, e.Reason)
}

func NewConflict(entity, reason string) *ConflictError {
	return &ConflictError{Entity: entity, Reason: reason}
}

func NewConflictCount(entity, reason string, count int64) *ConflictError {
	return &ConflictError{Entity: entity, Reason: reason, Count: count}
}

// AuthorizationError reports that the caller lacks one or more required
// permissions. It stays distinct from NotFoundError so the HTTP layer can
// collapse both into an opaque status without losing the distinction in logs.
type AuthorizationError struct {
	Missing []string
}

func (e *AuthorizationError) Error() string {
	return "missing permissions: " + strings.Join(e.Missing, ", ")
}

func NewAuthorization(missing ...string) *AuthorizationError {
	return &AuthorizationError{Missing: missing}
}

// ConfigError reports invalid build-time configuration, such as an unknown
// role name.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return "config error: " + e.Reason
}

func NewConfig(reason string) *ConfigError {
	return &ConfigError{Reason: reason}
}
