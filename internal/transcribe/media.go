package transcribe

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// maxMediaBytes bounds a downloaded voice note; Speech sync recognition
// rejects larger payloads anyway.
const maxMediaBytes = 10 << 20

// FetchMedia downloads a media attachment (e.g. a Twilio MediaUrl) and
// returns the bytes plus the reported content type.
func FetchMedia(ctx context.Context, client *http.Client, url string) ([]byte, string, error) {
	if client == nil {
		client = http.DefaultClient
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, "", fmt.Errorf("build media request: %w", err)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, "", fmt.Errorf("fetch media: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, "", fmt.Errorf("fetch media: unexpected status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxMediaBytes))
	if err != nil {
		return nil, "", fmt.Errorf("read media body: %w", err)
	}

	return body, resp.Header.Get("Content-Type"), nil
}
