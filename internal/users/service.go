// Package users lists registered users and performs the one privileged
// operation the panel has: granting the admin role.
package users

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/framecraft/admin/internal/docstore"
	"github.com/framecraft/admin/internal/models"
)

// ErrPermissionDenied is returned when the caller lacks the admin
// claim required for a privileged operation.
var ErrPermissionDenied = errors.New("permission denied: admin claim required")

// Claims describes the caller of a privileged operation.
type Claims struct {
	Email string
	Admin bool
}

type Service struct {
	col docstore.Collection
	now func() time.Time
}

func NewService(store docstore.Store) *Service {
	return &Service{col: store.Collection("users"), now: time.Now}
}

func decodeUser(doc docstore.Document) models.User {
	var u models.User
	_ = json.Unmarshal(doc.Data, &u)
	u.ID = doc.ID
	return u
}

// List returns all users sorted by email.
func (s *Service) List(ctx context.Context) ([]models.User, error) {
	docs, err := s.col.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	users := make([]models.User, 0, len(docs))
	for _, doc := range docs {
		users = append(users, decodeUser(doc))
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Email < users[j].Email
	})
	return users, nil
}

// GrantAdmin sets role=admin on the target user. Only callers already
// carrying the admin claim may invoke it; everyone else gets
// ErrPermissionDenied before any read happens. A missing target is
// docstore.ErrNotFound; any store failure comes back wrapped so the
// transport layer can tell "denied" from "broken".
func (s *Service) GrantAdmin(ctx context.Context, caller Claims, targetID string) (models.User, error) {
	if !caller.Admin {
		return models.User{}, ErrPermissionDenied
	}

	doc, err := s.col.Get(ctx, targetID)
	if err != nil {
		return models.User{}, err
	}

	var raw map[string]any
	if err := json.Unmarshal(doc.Data, &raw); err != nil {
		return models.User{}, fmt.Errorf("failed to decode user %s: %w", targetID, err)
	}
	raw["role"] = models.RoleAdmin
	raw["updatedAt"] = s.now().UTC().Format(time.RFC3339)

	data, err := json.Marshal(raw)
	if err != nil {
		return models.User{}, fmt.Errorf("failed to encode user %s: %w", targetID, err)
	}
	if err := s.col.Update(ctx, targetID, data); err != nil {
		return models.User{}, fmt.Errorf("failed to update role for user %s: %w", targetID, err)
	}

	return decodeUser(docstore.Document{ID: targetID, Data: data}), nil
}
