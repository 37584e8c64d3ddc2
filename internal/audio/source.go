package audio

import (
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strings"
	"time"
)

// ErrNoSource is returned by Play when no source URL has been set.
var ErrNoSource = errors.New("audio: no source")

// The client bounds connection setup and headers only; the body is a
// stream that lasts as long as the song.
var httpClient = &http.Client{
	Transport: &http.Transport{
		Proxy:                 http.ProxyFromEnvironment,
		DialContext:           (&net.Dialer{Timeout: 10 * time.Second}).DialContext,
		TLSHandshakeTimeout:   10 * time.Second,
		ResponseHeaderTimeout: 15 * time.Second,
	},
}

// openSource opens an http(s) URL or a local file path for reading.
func openSource(src string) (io.ReadCloser, error) {
	switch {
	case strings.TrimSpace(src) == "":
		return nil, ErrNoSource
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		resp, err := httpClient.Get(src)
		if err != nil {
			return nil, fmt.Errorf("fetch %s: %w", src, err)
		}
		if resp.StatusCode != http.StatusOK {
			resp.Body.Close()
			return nil, fmt.Errorf("fetch %s: %s", src, resp.Status)
		}
		return resp.Body, nil
	default:
		f, err := os.Open(strings.TrimPrefix(src, "file://"))
		if err != nil {
			return nil, fmt.Errorf("open %s: %w", src, err)
		}
		return f, nil
	}
}
