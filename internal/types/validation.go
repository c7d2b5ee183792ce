package types

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
)

// ------------------------------
// Bounds
// ------------------------------

const (
	// MaxImageSize is the largest width or height the image proxy serves.
	MaxImageSize = 1280

	// MinDay and MaxDay bound the day-of-year argument.
	MinDay = 1
	MaxDay = 366
)

// ------------------------------
// Shared Errors
// ------------------------------

// Validation sentinels. Defined here so both the internal layers and the
// public package compare against a single symbol; the root package
// re-exports them.
var (
	ErrUnsupportedLanguage = errors.New("unsupported language")
	ErrInvalidBibleVersion = errors.New("invalid bible version")
	ErrInvalidImageSize    = errors.New("invalid image size")
	ErrDayOutOfBounds      = errors.New("day out of bounds")
)

// CheckDay validates a day-of-year argument.
func CheckDay(day int) error {
	if day < MinDay || day > MaxDay {
		return fmt.Errorf("%w: %d (want %d..%d)", ErrDayOutOfBounds, day, MinDay, MaxDay)
	}
	return nil
}

// CheckImageSize validates a single image dimension against MaxImageSize.
func CheckImageSize(size int) error {
	if size > MaxImageSize {
		return fmt.Errorf("%w: %d (max %d)", ErrInvalidImageSize, size, MaxImageSize)
	}
	return nil
}

// Slugify reduces a string to its lower-cased alphanumeric runes,
// dropping whitespace and punctuation. Used for default download names.
func Slugify(s string) string {
	var b strings.Builder
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}
