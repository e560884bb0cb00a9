package services

import (
	"context"
	"fmt"

	"github.com/factforge/factforge/ent"
	entuser "github.com/factforge/factforge/ent/user"
	"github.com/factforge/factforge/pkg/models"
)

// UserService manages user identity rows. Authentication happens in the
// fronting gateway; this service only mirrors identities so review
// assignments have a foreign key to point at.
type UserService struct {
	client *ent.Client
}

// NewUserService creates a new UserService
func NewUserService(client *ent.Client) *UserService {
	if client == nil {
		panic("UserService requires a non-nil ent client")
	}
	return &UserService{client: client}
}

// Ensure makes sure a user row exists for the given identity, creating it
// on first sight and refreshing the role when the gateway reports a new
// one. Returns the current row.
func (s *UserService) Ensure(ctx context.Context, id, username string, role models.Role) (*ent.User, error) {
	if id == "" {
		return nil, NewValidationError("user_id", "required")
	}
	if !role.Valid() {
		return nil, NewValidationError("role", fmt.Sprintf("unknown role %q", role))
	}
	if username == "" {
		username = id
	}

	existing, err := s.client.User.Query().
		Where(entuser.IDEQ(id)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, fmt.Errorf("failed to look up user: %w", err)
	}

	if existing != nil {
		if existing.Role == entuser.Role(role) {
			return existing, nil
		}
		updated, err := existing.Update().
			SetRole(entuser.Role(role)).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to update user role: %w", err)
		}
		return updated, nil
	}

	created, err := s.client.User.Create().
		SetID(id).
		SetUsername(username).
		SetRole(entuser.Role(role)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			// Concurrent first sight of the same identity; the winner's
			// row is authoritative.
			return s.Get(ctx, id)
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// Get retrieves a user by id
func (s *UserService) Get(ctx context.Context, id string) (*ent.User, error) {
	user, err := s.client.User.Query().
		Where(entuser.IDEQ(id)).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return user, nil
}
