package userlang

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/dmitrymomot/intl/middlewares"
)

// User adapts a stored preference to the middlewares.User contract. A user
// without a preference reports middlewares.ErrNoLanguage, so the negotiated
// locale is kept.
func User(store Store, userID uuid.UUID) middlewares.User {
	return storedUser{store: store, id: userID}
}

type storedUser struct {
	store Store
	id    uuid.UUID
}

func (u storedUser) Language(ctx context.Context) (middlewares.Language, error) {
	lang, err := u.store.Language(ctx, u.id)
	if errors.Is(err, ErrNotFound) {
		return middlewares.Language{}, fmt.Errorf("%w: %w", middlewares.ErrNoLanguage, err)
	}
	if err != nil {
		return middlewares.Language{}, err
	}
	return middlewares.Language{Code: lang.Code}, nil
}
