// Package assets resolves the opaque pixel references items carry — data
// URIs, local files, remote URLs — into decoded images for the exporter.
//
// Remote fetches (avatar URLs in particular) go through a file-backed
// byte cache so repeated exports do not refetch, and through a small
// retry loop for transient network failures. The loader is read-only
// from the engine's perspective: it never mutates composition state.
package assets

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	// Register decoders for the formats item sources arrive in.
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"

	"github.com/framecraft/framecraft/pkg/errors"
)

// maxAssetBytes caps how much a single asset fetch or read may occupy.
const maxAssetBytes = 32 << 20 // 32 MiB

// Loader resolves asset references to decoded images.
type Loader struct {
	client   *http.Client
	cacheDir string // "" disables the fetch cache
}

// Option configures a Loader.
type Option func(*Loader)

// WithHTTPClient replaces the HTTP client used for remote references.
func WithHTTPClient(c *http.Client) Option {
	return func(l *Loader) { l.client = c }
}

// WithCacheDir enables a file-backed byte cache for remote fetches.
func WithCacheDir(dir string) Option {
	return func(l *Loader) { l.cacheDir = dir }
}

// NewLoader creates a loader with a 30-second HTTP timeout and no cache.
func NewLoader(opts ...Option) *Loader {
	l := &Loader{
		client: &http.Client{Timeout: 30 * time.Second},
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load resolves ref to a decoded image. The reference forms, in the order
// they are recognized: data: URIs, http(s) URLs, local file paths.
func (l *Loader) Load(ctx context.Context, ref string) (image.Image, error) {
	data, err := l.bytes(ctx, ref)
	if err != nil {
		return nil, err
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAsset, err, "decode asset %s", describeRef(ref))
	}
	return img, nil
}

func (l *Loader) bytes(ctx context.Context, ref string) ([]byte, error) {
	switch {
	case strings.HasPrefix(ref, "data:"):
		return decodeDataURI(ref)
	case strings.HasPrefix(ref, "http://"), strings.HasPrefix(ref, "https://"):
		return l.fetch(ctx, ref)
	default:
		return readLocalFile(ref)
	}
}

// decodeDataURI extracts the base64 payload of a data: URI.
func decodeDataURI(ref string) ([]byte, error) {
	_, payload, found := strings.Cut(ref, ",")
	if !found {
		return nil, errors.New(errors.ErrCodeAsset, "malformed data URI")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAsset, err, "decode data URI payload")
	}
	return data, nil
}

func readLocalFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "asset file %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeAsset, err, "read asset file %s", path)
	}
	if len(data) > maxAssetBytes {
		return nil, errors.New(errors.ErrCodeAsset, "asset file %s exceeds %d bytes", path, maxAssetBytes)
	}
	return data, nil
}

// fetch retrieves a remote asset, consulting the byte cache first.
// Transient failures (network errors, 5xx) are retried with backoff.
func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	if data, ok := l.cacheGet(url); ok {
		return data, nil
	}

	var data []byte
	err := retry(ctx, 3, time.Second, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return err
		}
		resp, err := l.client.Do(req)
		if err != nil {
			return retryable(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return retryable(fmt.Errorf("status %d", resp.StatusCode))
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("status %d", resp.StatusCode)
		}

		data, err = io.ReadAll(io.LimitReader(resp.Body, maxAssetBytes))
		if err != nil {
			return retryable(err)
		}
		return nil
	})
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeAsset, err, "fetch asset %s", url)
	}

	l.cacheSet(url, data)
	return data, nil
}

// cacheGet reads a cached fetch result. Misses and read failures both
// report a miss; the cache is advisory.
func (l *Loader) cacheGet(url string) ([]byte, bool) {
	if l.cacheDir == "" {
		return nil, false
	}
	data, err := os.ReadFile(l.cachePath(url))
	if err != nil {
		return nil, false
	}
	return data, true
}

func (l *Loader) cacheSet(url string, data []byte) {
	if l.cacheDir == "" {
		return
	}
	path := l.cachePath(url)
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return
	}
	_ = os.WriteFile(path, data, 0644)
}

// cachePath hashes the URL so keys are filesystem-safe, with a two-char
// fan-out subdirectory to keep directory listings small.
func (l *Loader) cachePath(url string) string {
	sum := sha256.Sum256([]byte(url))
	hash := hex.EncodeToString(sum[:])
	return filepath.Join(l.cacheDir, hash[:2], hash[2:])
}

func describeRef(ref string) string {
	if strings.HasPrefix(ref, "data:") {
		return "data URI"
	}
	return ref
}
