package api

import (
	"context"
	"io"
	"net/http"
	"os"
	"strconv"

	clienterrors "github.com/youversion-community/go-youversion/internal/errors"
)

// DownloadImage streams the image at imageURL into savePath and returns
// the path written. The partial file is removed when the copy fails so a
// broken download never masquerades as a finished one.
func DownloadImage(ctx context.Context, httpClient Doer, imageURL, savePath string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, imageURL, nil)
	if err != nil {
		return "", err
	}

	resp, err := httpClient.Do(req)
	if err != nil {
		requestsTotal.WithLabelValues("image", "error").Inc()
		return "", clienterrors.NewNetworkError("image download", err)
	}
	defer func() { _ = resp.Body.Close() }()

	requestsTotal.WithLabelValues("image", strconv.Itoa(resp.StatusCode)).Inc()
	if resp.StatusCode != http.StatusOK {
		return "", clienterrors.NewHTTPError(resp.StatusCode, "", "image download")
	}

	f, err := os.Create(savePath)
	if err != nil {
		return "", err
	}
	_, err = io.Copy(f, resp.Body)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		_ = os.Remove(savePath)
		return "", err
	}
	return savePath, nil
}
