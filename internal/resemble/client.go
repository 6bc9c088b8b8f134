package resemble

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

const (
	// DefaultSynthesizeURL is Resemble's streaming synthesis endpoint.
	DefaultSynthesizeURL = "https://f.cluster.resemble.ai/synthesize"
	// DefaultVoicesURL is Resemble's voice catalog endpoint.
	DefaultVoicesURL = "https://app.resemble.ai/api/v2/voices"

	// sampleRate is fixed by the synthesis request contract.
	sampleRate = 48000
)

// ClientConfig holds configuration for the Resemble client.
type ClientConfig struct {
	APIKey        string
	SynthesizeURL string // defaults to DefaultSynthesizeURL
	VoicesURL     string // defaults to DefaultVoicesURL
	HTTPClient    *http.Client
}

// Client talks to the Resemble AI HTTP API. It issues exactly one outbound
// request per call; there is no retry or backoff.
type Client struct {
	apiKey        string
	synthesizeURL string
	voicesURL     string
	httpClient    *http.Client
}

// New creates a Resemble client. An injected HTTPClient is used as-is
// (the app shares one pooled client across calls); otherwise a client with
// a 30-second timeout is created.
func New(cfg ClientConfig) *Client {
	synthesizeURL := cfg.SynthesizeURL
	if synthesizeURL == "" {
		synthesizeURL = DefaultSynthesizeURL
	}
	voicesURL := cfg.VoicesURL
	if voicesURL == "" {
		voicesURL = DefaultVoicesURL
	}
	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 30 * time.Second}
	}
	return &Client{
		apiKey:        cfg.APIKey,
		synthesizeURL: synthesizeURL,
		voicesURL:     voicesURL,
		httpClient:    httpClient,
	}
}

// synthesizeRequest represents a Resemble synthesis request.
type synthesizeRequest struct {
	VoiceUUID    string `json:"voice_uuid"`
	Data         string `json:"data"`
	SampleRate   int    `json:"sample_rate"`
	OutputFormat string `json:"output_format"`
}

type synthesizeResponse struct {
	AudioContent string `json:"audio_content"`
}

// Synthesize converts text to speech and returns the decoded audio bytes.
// A 2xx response without a decodable audio_content field is reported as
// KindMalformed.
func (c *Client) Synthesize(ctx context.Context, text, voiceUUID, outputFormat string) ([]byte, error) {
	body, err := json.Marshal(synthesizeRequest{
		VoiceUUID:    voiceUUID,
		Data:         text,
		SampleRate:   sampleRate,
		OutputFormat: outputFormat,
	})
	if err != nil {
		return nil, &Error{Kind: KindMalformed, Msg: "marshal synthesize request", Err: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.synthesizeURL, bytes.NewReader(body))
	if err != nil {
		return nil, &Error{Kind: KindTransport, Msg: "create synthesize request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError("synthesize request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("read synthesize response", err)
	}
	if err := statusError(resp.StatusCode, respBody); err != nil {
		return nil, err
	}

	var sr synthesizeResponse
	if err := json.Unmarshal(respBody, &sr); err != nil {
		return nil, &Error{Kind: KindMalformed, Msg: "unmarshal synthesize response", Err: err}
	}
	if sr.AudioContent == "" {
		return nil, &Error{Kind: KindMalformed, Msg: "response has no audio_content"}
	}

	audio, err := base64.StdEncoding.DecodeString(sr.AudioContent)
	if err != nil {
		return nil, &Error{Kind: KindMalformed, Msg: "decode audio_content", Err: err}
	}
	return audio, nil
}

// ListVoices fetches one page of the provider's voice catalog and returns
// the response body verbatim, with no local reshaping.
func (c *Client) ListVoices(ctx context.Context, page, pageSize int) (json.RawMessage, error) {
	u, err := url.Parse(c.voicesURL)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Msg: "parse voices url", Err: err}
	}
	q := u.Query()
	q.Set("page", strconv.Itoa(page))
	q.Set("page_size", strconv.Itoa(pageSize))
	u.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u.String(), nil)
	if err != nil {
		return nil, &Error{Kind: KindTransport, Msg: "create voices request", Err: err}
	}
	req.Header.Set("Authorization", "Bearer "+c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, transportError("voices request", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, transportError("read voices response", err)
	}
	if err := statusError(resp.StatusCode, respBody); err != nil {
		return nil, err
	}
	return json.RawMessage(respBody), nil
}

func transportError(msg string, err error) *Error {
	kind := KindTransport
	var ne net.Error
	if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &ne) && ne.Timeout()) {
		kind = KindTimeout
	}
	return &Error{Kind: kind, Msg: msg, Err: err}
}

func statusError(status int, body []byte) error {
	if status >= 200 && status < 300 {
		return nil
	}
	kind := KindHTTP
	if status == http.StatusUnauthorized || status == http.StatusForbidden {
		kind = KindAuth
	}
	snippet := string(body)
	if len(snippet) > 256 {
		snippet = snippet[:256]
	}
	return &Error{Kind: kind, Status: status, Msg: fmt.Sprintf("status %d: %s", status, snippet)}
}
