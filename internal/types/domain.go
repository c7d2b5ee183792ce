package types

import (
	"strconv"
	"strings"
)

// ------------------------------
// Core Domain Entities
// ------------------------------

// BibleVersion identifies a single Bible translation.
type BibleVersion struct {
	ID                int    `json:"id"`
	Title             string `json:"title"`
	Abbreviation      string `json:"abbreviation"`
	LocalTitle        string `json:"local_title"`
	LocalAbbreviation string `json:"local_abbreviation"`
	Copyright         string `json:"copyright_short"`
}

// KJV returns the built-in King James Version. It is the default
// translation for a new client and needs no network call.
func KJV() BibleVersion {
	return BibleVersion{
		ID:                1,
		Title:             "King James Version",
		Abbreviation:      "KJV",
		LocalTitle:        "King James Version",
		LocalAbbreviation: "KJV",
		Copyright:         "Crown Copyright in UK",
	}
}

// IsZero reports whether the version carries no translation id.
func (v BibleVersion) IsZero() bool { return v.ID == 0 }

// Verse is a single scripture passage as returned by the API.
type Verse struct {
	BibleVersion BibleVersion
	Reference    string   // human-readable, e.g. "John 3:16"
	Text         string   // plain text
	HTML         string   // formatted markup
	URL          string   // canonical page on bible.com
	USFMs        []string // canonical passage identifiers
}

// Image is the artwork associated with a verse. Its URL is a template
// carrying {width} and {height} placeholders that are substituted on demand.
type Image struct {
	Verse       *Verse // verse the artwork belongs to
	Attribution string
	URLTemplate string
}

// NewImage builds an Image from its wire form. Scheme-relative template
// URLs (the API returns "//imageproxy...") are pinned to https.
func NewImage(verse *Verse, raw ImageResponse) Image {
	u := raw.URL
	if strings.HasPrefix(u, "//") {
		u = "https:" + u
	}
	return Image{Verse: verse, Attribution: raw.Attribution, URLTemplate: u}
}

// URL renders the template for the given dimensions. Either dimension
// above MaxImageSize fails with ErrInvalidImageSize.
func (i Image) URL(width, height int) (string, error) {
	if err := CheckImageSize(width); err != nil {
		return "", err
	}
	if err := CheckImageSize(height); err != nil {
		return "", err
	}
	u := strings.ReplaceAll(i.URLTemplate, "{width}", strconv.Itoa(width))
	return strings.ReplaceAll(u, "{height}", strconv.Itoa(height)), nil
}

// SquareURL renders the template for a square image of the given size.
func (i Image) SquareURL(size int) (string, error) { return i.URL(size, size) }

// Filename derives the default on-disk name for a downloaded copy,
// a slug of the verse reference plus a jpg extension.
func (i Image) Filename() string {
	slug := ""
	if i.Verse != nil {
		slug = Slugify(i.Verse.Reference)
	}
	if slug == "" {
		slug = "verse"
	}
	return slug + ".jpg"
}

// VerseOfTheDay is the daily-rotating passage with its artwork.
type VerseOfTheDay struct {
	Day          int // day of year, 1..366
	BibleVersion BibleVersion
	Verse        Verse
	Image        Image
}

// NewVerseOfTheDay assembles the domain object from its wire form,
// threading the selected translation through the verse and linking the
// image back to its verse.
func NewVerseOfTheDay(version BibleVersion, raw VerseOfTheDayResponse) *VerseOfTheDay {
	v := &VerseOfTheDay{
		Day:          raw.Day,
		BibleVersion: version,
		Verse: Verse{
			BibleVersion: version,
			Reference:    raw.Verse.HumanReference,
			Text:         raw.Verse.Text,
			HTML:         raw.Verse.HTML,
			URL:          raw.Verse.URL,
			USFMs:        raw.Verse.USFMs,
		},
	}
	v.Image = NewImage(&v.Verse, raw.Image)
	return v
}

// VerseOfTheDayList is one page of the bulk verse-of-the-day resource.
type VerseOfTheDayList struct {
	HasMore bool            // another page is available upstream
	Count   int             // entries reported for this page
	Days    []VerseOfTheDay // nil when the response carried no data
}
