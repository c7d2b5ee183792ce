package types

// ------------------------------
// Response Types
// ------------------------------

// VersionListResponse wraps the versions resource payload.
type VersionListResponse struct {
	Data []BibleVersion `json:"data"`
}

// VerseResponse is the wire form of a verse inside a verse-of-the-day.
type VerseResponse struct {
	HumanReference string   `json:"human_reference"`
	Text           string   `json:"text"`
	HTML           string   `json:"html"`
	URL            string   `json:"url"`
	USFMs          []string `json:"usfms"`
}

// ImageResponse is the wire form of verse artwork. URL is scheme-relative
// and carries {width}/{height} placeholders.
type ImageResponse struct {
	URL         string `json:"url"`
	Attribution string `json:"attribution"`
}

// VerseOfTheDayResponse is the wire form of a single verse-of-the-day.
type VerseOfTheDayResponse struct {
	Day   int           `json:"day"`
	Verse VerseResponse `json:"verse"`
	Image ImageResponse `json:"image"`
}

// VerseOfTheDayListResponse wraps the bulk resource payload.
type VerseOfTheDayListResponse struct {
	Data     []VerseOfTheDayResponse `json:"data"`
	NextPage bool                    `json:"next_page"`
	PageSize int                     `json:"page_size"`
}
