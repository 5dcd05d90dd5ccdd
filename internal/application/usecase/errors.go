package usecase

import (
	"errors"
	"fmt"

	"github.com/biztime/api/internal/domain"
)

// resourceErr names the missing resource when the repository reports a miss,
// so the HTTP error body can say which key was not found. Other errors pass
// through untouched.
func resourceErr(err error, kind, key string) error {
	if errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("no such %s: %s: %w", kind, key, domain.ErrNotFound)
	}
	return err
}

func invalidf(format string, args ...any) error {
	return fmt.Errorf(format+": %w", append(args, domain.ErrInvalidInput)...)
}
