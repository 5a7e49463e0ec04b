package client

import (
	"context"
	"fmt"
	"net/http"

	"assetflow/models"
	"assetflow/policy"
)

func (s *Session) ListUsers(ctx context.Context, q UserQuery) ([]models.Identity, error) {
	if err := s.precheck(policy.ViewUsers, nil); err != nil {
		return nil, err
	}
	var out struct {
		Users []models.Identity `json:"users"`
	}
	if err := s.getJSON(ctx, "/users/", q.values(), &out); err != nil {
		return nil, err
	}
	if out.Users == nil {
		out.Users = []models.Identity{}
	}
	return out.Users, nil
}

func (s *Session) GetUser(ctx context.Context, id int64) (models.Identity, error) {
	if err := s.precheck(policy.ViewUsers, nil); err != nil {
		return models.Identity{}, err
	}
	var user models.Identity
	if err := s.getJSON(ctx, fmt.Sprintf("/users/%d", id), nil, &user); err != nil {
		return models.Identity{}, err
	}
	return user, nil
}

// UpdateUser changes role, department, email or the active flag.
func (s *Session) UpdateUser(ctx context.Context, id int64, in UserUpdate) (models.Identity, error) {
	if err := s.precheck(policy.ManageUsers, nil); err != nil {
		return models.Identity{}, err
	}
	var user models.Identity
	if err := s.sendJSON(ctx, http.MethodPut, fmt.Sprintf("/users/%d", id), in, &user); err != nil {
		return models.Identity{}, err
	}
	return user, nil
}

func (s *Session) DeleteUser(ctx context.Context, id int64) error {
	if err := s.precheck(policy.ManageUsers, nil); err != nil {
		return err
	}
	return s.call(ctx, request{method: http.MethodDelete, path: fmt.Sprintf("/users/%d", id)}, nil)
}
