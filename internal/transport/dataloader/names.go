package dataloader

import (
	"context"
	"fmt"

	"github.com/google/uuid"
)

// UserNames resolves display names for user ids. Inside a request it goes
// through the request's loader; elsewhere it queries the repository.
type UserNames struct {
	users userRepo
}

// NewUserNames creates a resolver backed by users.
func NewUserNames(users userRepo) *UserNames {
	return &UserNames{users: users}
}

// Names returns the names of the known ids. Unknown ids are absent from the map.
func (n *UserNames) Names(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]string, error) {
	out := make(map[uuid.UUID]string, len(ids))
	if len(ids) == 0 {
		return out, nil
	}

	if l := FromContext(ctx); l != nil {
		users, errs := l.UsersByID.LoadMany(ctx, ids)()
		for i, u := range users {
			if len(errs) > i && errs[i] != nil {
				return nil, fmt.Errorf("load user %s: %w", ids[i], errs[i])
			}
			if u != nil {
				out[u.ID] = u.Name
			}
		}
		return out, nil
	}

	users, err := n.users.ListByIDs(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("load users: %w", err)
	}
	for _, u := range users {
		out[u.ID] = u.Name
	}
	return out, nil
}
