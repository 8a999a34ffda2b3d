// Package slack posts notifications to a Slack incoming webhook.
package slack

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io/ioutil"
	"net/http"
	"net/url"
	"time"

	"github.com/pkg/errors"
)

// Format of a slack incoming webhook
type slackWebhookMessage struct {
	Text string `json:"text"`
}

var client = &http.Client{Timeout: 30 * time.Second}

// Simple webhook message.  A nil or empty webhook sends nothing.
func Message(ctx context.Context, webhook *url.URL, text string, args ...interface{}) error {
	if webhook == nil || webhook.String() == "" {
		return nil
	}

	data := slackWebhookMessage{
		Text: fmt.Sprintf(text, args...),
	}
	buf, err := json.Marshal(data)
	if err != nil {
		return err
	}
	req, err := http.NewRequest("POST", webhook.String(), bytes.NewBuffer(buf))
	if err != nil {
		return err
	}
	req = req.WithContext(ctx)
	req.Header.Set("Content-Type", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return errors.Wrap(err, "slack webhook")
	}
	defer resp.Body.Close()
	body, err := ioutil.ReadAll(resp.Body)
	if err != nil {
		return err
	}
	if resp.StatusCode != http.StatusOK {
		return errors.Errorf("slack webhook returned %s: %s", resp.Status, body)
	}
	return nil
}
