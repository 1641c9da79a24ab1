package assets

import (
	"bytes"
	"context"
	"encoding/base64"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/framecraft/framecraft/pkg/errors"
)

// pngBytes encodes a small solid image as PNG.
func pngBytes(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := range h {
		for x := range w {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatal(err)
	}
	return buf.Bytes()
}

func TestLoadDataURI(t *testing.T) {
	data := pngBytes(t, 4, 3)
	ref := "data:image/png;base64," + base64.StdEncoding.EncodeToString(data)

	img, err := NewLoader().Load(context.Background(), ref)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 4 || b.Dy() != 3 {
		t.Errorf("bounds = %v", b)
	}
}

func TestLoadDataURIMalformed(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), "data:image/png;base64")
	if !errors.Is(err, errors.ErrCodeAsset) {
		t.Errorf("err = %v, want ASSET_ERROR", err)
	}
}

func TestLoadLocalFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "img.png")
	if err := os.WriteFile(path, pngBytes(t, 2, 2), 0644); err != nil {
		t.Fatal(err)
	}

	img, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 2 || b.Dy() != 2 {
		t.Errorf("bounds = %v", b)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "nope.png"))
	if !errors.Is(err, errors.ErrCodeFileNotFound) {
		t.Errorf("err = %v, want FILE_NOT_FOUND", err)
	}
}

func TestLoadRemoteWithCache(t *testing.T) {
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		w.Write(pngBytes(t, 8, 8))
	}))
	defer srv.Close()

	l := NewLoader(WithCacheDir(t.TempDir()))

	for range 3 {
		img, err := l.Load(context.Background(), srv.URL+"/avatar.png")
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if b := img.Bounds(); b.Dx() != 8 {
			t.Errorf("bounds = %v", b)
		}
	}

	if got := hits.Load(); got != 1 {
		t.Errorf("server hit %d times, want 1 (cache miss only)", got)
	}
}

func TestLoadRemoteRetriesTransientFailures(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		w.Write(pngBytes(t, 4, 4))
	}))
	defer srv.Close()

	l := NewLoader(WithHTTPClient(srv.Client()))
	// Shrink the backoff so the test stays fast.
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if _, err := l.Load(ctx, srv.URL); err != nil {
		t.Fatalf("Load after retries: %v", err)
	}
	if calls.Load() != 3 {
		t.Errorf("server called %d times, want 3", calls.Load())
	}
}

func TestLoadRemoteClientErrorNotRetried(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := NewLoader().Load(context.Background(), srv.URL); err == nil {
		t.Fatal("expected error for 404")
	}
	if calls.Load() != 1 {
		t.Errorf("4xx retried: %d calls", calls.Load())
	}
}
