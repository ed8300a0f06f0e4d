// Package bridge talks to a Philips Hue bridge over its local REST API.
package bridge

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/amimof/huego"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/huectl/huectl/logging"
)

// DefaultHost is the mDNS name most bridges answer to.
const DefaultHost = "philips-hue.local"

var logger zerolog.Logger

func init() {
	logging.ComponentLogger("bridge", &logger)
}

// Client issues commands to a single Hue bridge.
//
// Reads go through huego. Partial state writes are issued directly,
// because huego.State cannot omit its "on" field and the bridge treats
// absent fields as "leave untouched".
type Client struct {
	host  string
	token string

	bridge *huego.Bridge
	http   *http.Client
}

// New creates a client for the bridge at host using the given API token.
// An empty host selects DefaultHost.
func New(host, token string) *Client {
	if host == "" {
		host = DefaultHost
	}
	return &Client{
		host:   host,
		token:  token,
		bridge: huego.New(host, token),
		http:   &http.Client{Timeout: 10 * time.Second},
	}
}

// Lights fetches all lights known to the bridge.
func (c *Client) Lights(ctx context.Context) ([]huego.Light, error) {
	lights, err := c.bridge.GetLightsContext(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "unable to list lights")
	}

	logger.Debug().Int("count", len(lights)).Msg("listed lights")
	return lights, nil
}

// SetState applies change to the light with the given bridge ID.
// Only the fields present in change end up in the request body; a zero
// change sends an empty body.
func (c *Client) SetState(ctx context.Context, id int, change StateChange) error {
	body, err := json.Marshal(change)
	if err != nil {
		return errors.Wrap(err, "unable to encode state change")
	}

	url := fmt.Sprintf("http://%s/api/%s/lights/%d/state", c.host, c.token, id)
	req, err := http.NewRequestWithContext(ctx, http.MethodPut, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "unable to build request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return errors.Wrapf(err, "unable to reach light %d", id)
	}
	defer resp.Body.Close()

	respBody, _ := io.ReadAll(resp.Body)
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("light %d: bridge returned %s: %s", id, resp.Status, respBody)
	}

	logger.Debug().Int("light", id).RawJSON("change", body).Msg("state applied")
	return nil
}
