package botlist

import (
	"context"

	"github.com/PancyStudios/PancyListGo/pkg/models"
)

// GetUser returns a stored user profile
func (s *Service) GetUser(ctx context.Context, id string) (*models.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, &TransportError{Op: "find user", Err: err}
	}
	if user == nil {
		return nil, &NotFoundError{Resource: "User"}
	}
	return user, nil
}

// RegisterLogin mirrors the identity provider's profile into the user
// collection. Called on every successful identity resolution.
func (s *Service) RegisterLogin(ctx context.Context, user *models.User) error {
	if user.Bots == nil {
		user.Bots = []string{}
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return &TransportError{Op: "upsert user", Err: err}
	}
	return nil
}
