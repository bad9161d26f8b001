package userlang

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/text/language"
)

// Language is a user's stored language preference.
type Language struct {
	Code      string    `json:"code"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Store persists user language preferences.
type Store interface {
	// Language returns the stored preference or ErrNotFound.
	Language(ctx context.Context, userID uuid.UUID) (Language, error)
	// SetLanguage stores code as the user's preference. The code must be a
	// valid BCP 47 tag and is stored in canonical form.
	SetLanguage(ctx context.Context, userID uuid.UUID, code string) error
}

// ParseUserID parses a user id in any form accepted by uuid.Parse.
func ParseUserID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil || id == uuid.Nil {
		return uuid.Nil, fmt.Errorf("%w: %q", ErrInvalidUserID, s)
	}
	return id, nil
}

// CanonicalCode validates a language code and returns its canonical form,
// e.g. "EN_us" becomes "en-US".
func CanonicalCode(code string) (string, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return "", fmt.Errorf("%w: empty", ErrInvalidLanguage)
	}
	tag, err := language.Parse(code)
	if err != nil {
		return "", fmt.Errorf("%w: %q: %v", ErrInvalidLanguage, code, err)
	}
	return tag.String(), nil
}

func checkUserID(id uuid.UUID) error {
	if id == uuid.Nil {
		return ErrInvalidUserID
	}
	return nil
}
