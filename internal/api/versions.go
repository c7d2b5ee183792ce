package api

import (
	"context"
	"fmt"

	"github.com/youversion-community/go-youversion/internal/types"
)

// ListVersions fetches every Bible translation the API offers for the
// given language.
func ListVersions(ctx context.Context, httpClient Doer, baseURL, lang string) ([]types.BibleVersion, error) {
	var res types.VersionListResponse
	url := fmt.Sprintf("%s/versions", baseURL)
	if err := getJSON(ctx, httpClient, url, lang, "versions", &res); err != nil {
		return nil, err
	}
	return res.Data, nil
}
