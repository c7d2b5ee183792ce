package youversion

import (
	"errors"
	"fmt"

	"github.com/youversion-community/go-youversion/internal/types"
)

// Validation sentinels, re-exported from the shared types package so
// callers compare against a single symbol with errors.Is. All validation
// failures surface immediately at the point of bad input; none are
// retried. Transport and HTTP failures are returned as-is from the
// underlying request.
var (
	ErrUnsupportedLanguage = types.ErrUnsupportedLanguage
	ErrInvalidBibleVersion = types.ErrInvalidBibleVersion
	ErrInvalidImageSize    = types.ErrInvalidImageSize
	ErrDayOutOfBounds      = types.ErrDayOutOfBounds
)

// IsUnsupportedLanguage reports whether err is a language lookup failure.
func IsUnsupportedLanguage(err error) bool { return errors.Is(err, ErrUnsupportedLanguage) }

// IsInvalidBibleVersion reports whether err is a translation lookup failure.
func IsInvalidBibleVersion(err error) bool { return errors.Is(err, ErrInvalidBibleVersion) }

// IsInvalidImageSize reports whether err is an image dimension failure.
func IsInvalidImageSize(err error) bool { return errors.Is(err, ErrInvalidImageSize) }

// IsDayOutOfBounds reports whether err is a day-of-year bounds failure.
func IsDayOutOfBounds(err error) bool { return errors.Is(err, ErrDayOutOfBounds) }

func invalidBibleVersionError(abbreviation string) error {
	return fmt.Errorf("%w: %q", ErrInvalidBibleVersion, abbreviation)
}
