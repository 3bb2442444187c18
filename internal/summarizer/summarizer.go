package summarizer

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/sirupsen/logrus"

	"nagorik_desk/internal/config"
)

const defaultURL = "https://api.apyhub.com/ai/summarize-text"

// Client calls an apyhub-compatible text summarization endpoint.
type Client struct {
	URL   string
	Token string
	HTTP  *http.Client
}

// Default is the client used by the summary aggregator; main wires it at boot.
var Default = &Client{URL: defaultURL, HTTP: &http.Client{Timeout: 20 * time.Second}}

// Setup configures Default from SUMMARIZER_URL and APY_HUB_TOKEN.
func Setup() {
	Default.URL = config.GetEnv("SUMMARIZER_URL", defaultURL)
	Default.Token = config.GetEnv("APY_HUB_TOKEN", "")
}

// Summarize condenses text via the external service. On any failure it
// returns the input unchanged: callers must never fail because the
// summarizer is down.
func (c *Client) Summarize(text string) string {
	summary, err := c.call(text)
	if err != nil {
		logrus.WithError(err).Warn("text summarization failed, using raw text")
		return text
	}
	return summary
}

func (c *Client) call(text string) (string, error) {
	payload, err := json.Marshal(map[string]string{"text": text})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequest(http.MethodPost, c.URL, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("apy-token", c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("summarizer returned status %d", resp.StatusCode)
	}

	var body struct {
		Summary string `json:"summary"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", err
	}
	if body.Summary == "" {
		return "", fmt.Errorf("summarizer returned empty summary")
	}
	return body.Summary, nil
}
