package youversion

import "github.com/youversion-community/go-youversion/internal/types"

// Public type aliases so SDK consumers can import only this package.
type (
	// Domain entities
	BibleVersion      = types.BibleVersion
	Verse             = types.Verse
	Image             = types.Image
	VerseOfTheDay     = types.VerseOfTheDay
	VerseOfTheDayList = types.VerseOfTheDayList
)

// Bounds shared with the validation layer.
const (
	// MaxImageSize is the largest width or height the image proxy serves.
	MaxImageSize = types.MaxImageSize

	// MinDay and MaxDay bound the verse-of-the-day argument.
	MinDay = types.MinDay
	MaxDay = types.MaxDay
)

// KJV returns the built-in King James Version, the default translation
// for every new Client.
func KJV() BibleVersion { return types.KJV() }
