// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"dealsmarket/internal/domain/entity"

	"github.com/google/uuid"
)

// Domain-specific errors for identity persistence.
var (
	// ErrIdentityNotFound is returned when no identity matches the lookup.
	ErrIdentityNotFound = errors.New("identity not found")
	// ErrCredentialNotFound is returned when no email/password credential matches the lookup.
	ErrCredentialNotFound = errors.New("credential not found")
)

// IdentityRepository stores the identity provider's view of a person: who they are and how they log in.
type IdentityRepository interface {
	// Create persists a new identity together with its email/password credential.
	Create(ctx context.Context, identity *entity.Identity, credential *entity.Credential) error

	// FindByID retrieves an identity by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Identity, error)

	// FindCredentialByEmail retrieves the login credential registered for an email address.
	FindCredentialByEmail(ctx context.Context, email string) (*entity.Credential, error)
}
