package service

import (
	"context"
	"errors"

	"scrumboard/internal/auth"
	"scrumboard/internal/model"
	"scrumboard/internal/repository"

	"go.uber.org/zap"
)

type UserService struct {
	users   UserStore
	members MembershipStore
	log     *zap.SugaredLogger
}

func NewUserService(users UserStore, members MembershipStore, log *zap.SugaredLogger) *UserService {
	return &UserService{users: users, members: members, log: log}
}

// Resolve records the token's user and organization membership and returns the caller.
// It runs on every authenticated request.
func (s *UserService) Resolve(ctx context.Context, claims *auth.Claims, role model.OrgRole) (model.Caller, error) {
	user := &model.User{
		ExternalID: claims.Subject,
		Email:      claims.Email,
		Name:       claims.Name,
		ImageURL:   claims.ImageURL,
	}
	if user.Name == "" {
		user.Name = user.Email
	}
	if err := s.users.Upsert(ctx, user); err != nil {
		return model.Caller{}, err
	}
	if err := s.members.Record(ctx, claims.OrgID, user.ID, role); err != nil {
		return model.Caller{}, err
	}
	s.log.Debugw("caller resolved", "user", user.ID, "org", claims.OrgID, "role", role)
	return model.Caller{UserID: user.ID, OrganizationID: claims.OrgID, Role: role}, nil
}

// Me returns the caller's user record.
func (s *UserService) Me(ctx context.Context, caller model.Caller) (*model.User, error) {
	user, err := s.users.GetByID(ctx, caller.UserID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return user, nil
}

// Members lists the users of the caller's organization with their roles.
func (s *UserService) Members(ctx context.Context, caller model.Caller) ([]model.Membership, error) {
	return s.members.ListMembers(ctx, caller.OrganizationID)
}
