package api

import (
	"context"
	"fmt"

	"github.com/youversion-community/go-youversion/internal/types"
)

// GetVerseOfTheDay fetches the verse for one day of the year, rendered in
// the given translation.
func GetVerseOfTheDay(ctx context.Context, httpClient Doer, baseURL, lang string, day int, version types.BibleVersion) (*types.VerseOfTheDay, error) {
	if err := types.CheckDay(day); err != nil {
		return nil, err
	}
	var raw types.VerseOfTheDayResponse
	url := fmt.Sprintf("%s/verse_of_the_day/%d?version_id=%d", baseURL, day, version.ID)
	if err := getJSON(ctx, httpClient, url, lang, "verse_of_the_day", &raw); err != nil {
		return nil, err
	}
	return types.NewVerseOfTheDay(version, raw), nil
}

// ListVerseOfTheDay fetches the bulk verse-of-the-day resource. The
// upstream API does not implement pagination yet, so no paging
// parameters are sent; next_page and page_size are still decoded so
// callers are ready when it does.
func ListVerseOfTheDay(ctx context.Context, httpClient Doer, baseURL, lang string, version types.BibleVersion) (*types.VerseOfTheDayList, error) {
	var raw types.VerseOfTheDayListResponse
	url := fmt.Sprintf("%s/verse_of_the_day?version_id=%d", baseURL, version.ID)
	if err := getJSON(ctx, httpClient, url, lang, "verse_of_the_day_list", &raw); err != nil {
		return nil, err
	}
	if len(raw.Data) == 0 {
		return &types.VerseOfTheDayList{}, nil
	}

	days := make([]types.VerseOfTheDay, 0, len(raw.Data))
	for _, d := range raw.Data {
		days = append(days, *types.NewVerseOfTheDay(version, d))
	}
	count := raw.PageSize
	if count == 0 {
		count = len(days)
	}
	return &types.VerseOfTheDayList{HasMore: raw.NextPage, Count: count, Days: days}, nil
}
