package warmtransfer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/asecurityteam/settings/v2"
)

// TransferAPIConfig contains the settings for reaching the warm
// transfer API.
type TransferAPIConfig struct {
	URL         string        `description:"Default warm transfer API endpoint."`
	APIKey      string        `description:"API key sent in the x-api-key header."`
	Timeout     time.Duration `description:"Timeout applied to each API request."`
	RulesBucket string        `description:"Optional S3 bucket holding per-queue routing rules."`
	RulesKey    string        `description:"Optional S3 key of the routing rules document."`
}

// Name of the configuration root.
func (*TransferAPIConfig) Name() string {
	return "transferapi"
}

// TransferAPIComponent implements the settings.Component interface
// for the warm transfer API client.
type TransferAPIComponent struct{}

// Settings generates a config populated with defaults.
func (*TransferAPIComponent) Settings() *TransferAPIConfig {
	return &TransferAPIConfig{
		Timeout: 5 * time.Second,
	}
}

// New constructs a Client from the config. Routing rules are loaded
// once here so that invocations never block on S3.
func (*TransferAPIComponent) New(ctx context.Context, conf *TransferAPIConfig) (*Client, error) {
	if conf.URL == "" {
		return nil, fmt.Errorf("transferapi: URL is required")
	}
	rules := &RoutingRules{Default: conf.URL}
	if conf.RulesBucket != "" && conf.RulesKey != "" {
		loaded, err := loadRoutingRules(conf.RulesBucket, conf.RulesKey)
		if err != nil {
			return nil, err
		}
		if loaded.Default == "" {
			loaded.Default = conf.URL
		}
		rules = loaded
	}
	return &Client{
		HTTP:   &http.Client{Timeout: conf.Timeout},
		Rules:  rules,
		apiKey: conf.APIKey,
	}, nil
}

// NewTransferClient constructs the warm transfer API client from the
// service settings source.
func NewTransferClient(ctx context.Context, s settings.Source) (*Client, error) {
	c := new(Client)
	err := settings.NewComponent(
		ctx,
		&settings.PrefixSource{Source: s, Prefix: []string{settingsPrefix}},
		&TransferAPIComponent{},
		c,
	)
	return c, err
}

// transferRequest is the JSON body of a warm transfer POST.
type transferRequest struct {
	PhoneNumber string                 `json:"phone_number"`
	Data        map[string]interface{} `json:"data"`
}

// Client calls the warm transfer API. It implements TransferAPI.
type Client struct {
	HTTP   *http.Client
	Rules  *RoutingRules
	apiKey string
}

// Transfer posts the customer phone number and custom data to the
// destination configured for the queue.
func (c *Client) Transfer(ctx context.Context, queue string, phone string, data map[string]interface{}) (map[string]interface{}, error) {
	if c.apiKey == "" {
		return nil, &APIError{Reason: "missing API key"}
	}
	body, err := json.Marshal(transferRequest{PhoneNumber: phone, Data: data})
	if err != nil {
		return nil, &APIError{Reason: "encoding request body", Cause: err}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.Rules.Destination(queue), bytes.NewReader(body))
	if err != nil {
		return nil, &APIError{Reason: "building request", Cause: err}
	}
	req.Header.Set("x-api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	return c.do(req)
}

// Status looks up the current transfer state for a phone number. The
// lookup always goes to the default destination.
func (c *Client) Status(ctx context.Context, phone string) (map[string]interface{}, error) {
	if c.apiKey == "" {
		return nil, &APIError{Reason: "missing API key"}
	}
	u, err := url.Parse(c.Rules.Destination(""))
	if err != nil {
		return nil, &APIError{Reason: "building request", Cause: err}
	}
	q := u.Query()
	q.Set("phone_number", phone)
	u.RawQuery = q.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), http.NoBody)
	if err != nil {
		return nil, &APIError{Reason: "building request", Cause: err}
	}
	req.Header.Set("x-api-key", c.apiKey)
	return c.do(req)
}

func (c *Client) do(req *http.Request) (map[string]interface{}, error) {
	resp, err := c.HTTP.Do(req)
	if err != nil {
		return nil, &APIError{Reason: "request failed", Cause: err}
	}
	defer resp.Body.Close()
	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Reason: "reading response body", Cause: err}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &APIError{StatusCode: resp.StatusCode, Reason: string(b)}
	}
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, &APIError{StatusCode: resp.StatusCode, Reason: "decoding response body", Cause: err}
	}
	return out, nil
}
