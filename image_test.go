package youversion

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
)

func imageServer(t *testing.T, payload []byte) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write(payload)
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestDownloadImage_ExplicitPath(t *testing.T) {
	t.Parallel()
	payload := []byte("jpeg-bytes")
	srv := imageServer(t, payload)

	c, err := New("tok", WithRetryAttempts(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	verse := Verse{Reference: "John 3:16"}
	img := Image{Verse: &verse, URLTemplate: srv.URL + "/{width}x{height}/votd.jpg"}

	dst := filepath.Join(t.TempDir(), "custom.jpg")
	path, err := c.DownloadImage(context.Background(), img, 640, 640, dst)
	if err != nil {
		t.Fatalf("DownloadImage: %v", err)
	}
	if path != dst {
		t.Fatalf("path = %q, want %q", path, dst)
	}
	got, err := os.ReadFile(path)
	if err != nil || string(got) != string(payload) {
		t.Fatalf("read back: %q err=%v", got, err)
	}
}

func TestDownloadImage_DefaultPath(t *testing.T) {
	payload := []byte("jpeg-bytes")
	srv := imageServer(t, payload)
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatalf("Chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(wd) })

	c, err := New("tok", WithRetryAttempts(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	verse := Verse{Reference: "John 3:16"}
	img := Image{Verse: &verse, URLTemplate: srv.URL + "/{width}x{height}/votd.jpg"}

	path, err := c.DownloadImage(context.Background(), img, 300, 300, "")
	if err != nil {
		t.Fatalf("DownloadImage: %v", err)
	}
	if filepath.Base(path) != "john316.jpg" {
		t.Fatalf("default name = %q", filepath.Base(path))
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("stat: %v", err)
	}
}

func TestDownloadImage_Oversize(t *testing.T) {
	t.Parallel()
	c, err := New("tok", WithRetryAttempts(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img := Image{URLTemplate: "http://127.0.0.1:1/{width}x{height}.jpg"}
	if _, err := c.DownloadImage(context.Background(), img, MaxImageSize+1, 100, ""); !errors.Is(err, ErrInvalidImageSize) {
		t.Fatalf("want ErrInvalidImageSize, got %v", err)
	}
}

func TestDownloadImage_HTTPError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	t.Cleanup(srv.Close)

	c, err := New("tok", WithRetryAttempts(1))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	img := Image{URLTemplate: srv.URL + "/{width}x{height}.jpg"}
	dst := filepath.Join(t.TempDir(), "x.jpg")
	if _, err := c.DownloadImage(context.Background(), img, 100, 100, dst); err == nil {
		t.Fatal("expected transport error to propagate")
	}
}
