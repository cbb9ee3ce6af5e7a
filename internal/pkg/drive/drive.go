// Package drive resolves Google Drive share links to their direct
// download form and fetches the file. No authentication is involved;
// only links shared as "anyone with the link" will resolve.
package drive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"mime"
	"net/http"
	"net/url"
	"strings"
	"time"
)

var ErrInvalidURL = errors.New("not a recognizable Google Drive share URL")

// DirectDownloadURL translates the share-link forms
//
//	https://drive.google.com/file/d/<id>/view
//	https://drive.google.com/open?id=<id>
//	https://drive.google.com/uc?id=<id>
//
// into https://drive.google.com/uc?export=download&id=<id>.
func DirectDownloadURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Host != "drive.google.com" {
		return "", fmt.Errorf("%w: host %q", ErrInvalidURL, u.Host)
	}

	id := u.Query().Get("id")
	if id == "" {
		// /file/d/<id>/view form
		parts := strings.Split(strings.Trim(u.Path, "/"), "/")
		if len(parts) >= 3 && parts[0] == "file" && parts[1] == "d" {
			id = parts[2]
		}
	}
	if id == "" {
		return "", fmt.Errorf("%w: no file id in %q", ErrInvalidURL, rawURL)
	}

	return "https://drive.google.com/uc?export=download&id=" + id, nil
}

type Fetcher interface {
	// Fetch downloads the file behind a share URL and returns its
	// contents plus a filename usable for format detection.
	Fetch(ctx context.Context, rawURL string) ([]byte, string, error)
}

type fetcherImpl struct {
	client   *http.Client
	maxBytes int64
}

func NewFetcher(maxBytes int64) Fetcher {
	return &fetcherImpl{
		client:   &http.Client{Timeout: 30 * time.Second},
		maxBytes: maxBytes,
	}
}

func (f *fetcherImpl) Fetch(ctx context.Context, rawURL string) ([]byte, string, error) {
	directURL, err := DirectDownloadURL(rawURL)
	if err != nil {
		return nil, "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, directURL, nil)
	if err != nil {
		return nil, "", fmt.Errorf("failed to build request: %w", err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("failed to fetch file: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("failed to fetch file: status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, f.maxBytes))
	if err != nil {
		return nil, "", fmt.Errorf("failed to read file body: %w", err)
	}

	return body, filenameFor(resp), nil
}

// filenameFor picks a name for format detection: the Content-Disposition
// filename when present, otherwise a guess from the Content-Type.
func filenameFor(resp *http.Response) string {
	if cd := resp.Header.Get("Content-Disposition"); cd != "" {
		if _, params, err := mime.ParseMediaType(cd); err == nil {
			if name := params["filename"]; name != "" {
				return name
			}
		}
	}
	if ct := resp.Header.Get("Content-Type"); strings.Contains(ct, "csv") {
		return "roster.csv"
	}
	return "roster.xlsx"
}
