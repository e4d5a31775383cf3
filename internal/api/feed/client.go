package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/omarshaarawi/spottergrid/internal/models"
	"github.com/omarshaarawi/spottergrid/internal/roster"
)

const maxPayloadBytes = 1 << 20

// Client downloads roster payloads published at a URL.
type Client struct {
	httpClient *http.Client
}

func NewClient(timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Fetch(ctx context.Context, url string) (models.Roster, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return models.Roster{}, fmt.Errorf("error creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return models.Roster{}, fmt.Errorf("error making request: %w", StripURL(err))
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return models.Roster{}, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	r, err := roster.Parse(io.LimitReader(resp.Body, maxPayloadBytes))
	if err != nil {
		return models.Roster{}, fmt.Errorf("error decoding roster: %w", err)
	}

	return r, nil
}

// StripURL drops the request URL from transport errors. Telegram file URLs
// carry the bot token in their path.
func StripURL(err error) error {
	var urlErr *url.Error
	if errors.As(err, &urlErr) {
		return urlErr.Err
	}
	return err
}
