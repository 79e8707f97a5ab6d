package enhance

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"net/http"
	"sync"
	"time"

	"github.com/disintegration/imaging"

	"github.com/framesketch/framesketch/pkg/errors"
)

// Client talks to a diffusion sidecar over HTTP. Models load lazily on the
// first enhancement and stay resident until Unload.
type Client struct {
	baseURL string
	http    *http.Client

	mu      sync.Mutex
	loaded  bool
	loading bool
	device  string
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *Client) { c.http = hc }
}

// NewClient creates a sidecar client. Enhancement passes can run for
// minutes, so the default timeout is generous.
func NewClient(baseURL string, opts ...ClientOption) *Client {
	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 5 * time.Minute},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

type statusResponse struct {
	Loaded bool   `json:"loaded"`
	Device string `json:"device"`
}

type enhanceRequest struct {
	Prompt        string  `json:"prompt"`
	Image         string  `json:"image"`
	Steps         int     `json:"steps"`
	GuidanceScale float64 `json:"guidance_scale"`
}

type enhanceResponse struct {
	Image string `json:"image"`
	Error string `json:"error,omitempty"`
}

// Load asks the sidecar to load its models. Concurrent callers share one
// load; repeat calls on a loaded client return immediately.
func (c *Client) Load(ctx context.Context) error {
	c.mu.Lock()
	if c.loaded {
		c.mu.Unlock()
		return nil
	}
	if c.loading {
		c.mu.Unlock()
		return fmt.Errorf("model load already in progress: %w", ErrUnavailable)
	}
	c.loading = true
	c.mu.Unlock()

	err := c.post(ctx, "/load", nil, nil)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		return errors.Wrap(errors.ErrCodeEnhanceUnavailable, err, "loading enhancement models")
	}
	c.loaded = true
	return nil
}

// Unload releases the sidecar's model memory.
func (c *Client) Unload(ctx context.Context) error {
	c.mu.Lock()
	c.loaded = false
	c.mu.Unlock()
	return c.post(ctx, "/unload", nil, nil)
}

// Status reports the client's view of the lifecycle; it does not call the
// sidecar.
func (c *Client) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		Available: true,
		Loaded:    c.loaded,
		Loading:   c.loading,
		Device:    c.device,
	}
}

// Probe refreshes the lifecycle state from the sidecar.
func (c *Client) Probe(ctx context.Context) (Status, error) {
	var resp statusResponse
	if err := c.get(ctx, "/status", &resp); err != nil {
		return Status{}, errors.Wrap(errors.ErrCodeEnhanceUnavailable, err, "probing enhancer")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.loaded = resp.Loaded
	c.device = resp.Device
	return c.statusLocked(), nil
}

// statusLocked builds a Status snapshot. Callers must hold the lock.
func (c *Client) statusLocked() Status {
	return Status{Available: true, Loaded: c.loaded, Loading: c.loading, Device: c.device}
}

// Enhance sends the wireframe as the conditioning image and returns the
// diffusion output. Models load lazily on first use.
func (c *Client) Enhance(ctx context.Context, prompt string, condition image.Image, params Params) (image.Image, error) {
	if err := c.Load(ctx); err != nil {
		return nil, err
	}
	params = params.Clamped()

	encoded, err := encodeCondition(condition)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEnhanceFailed, err, "encoding condition image")
	}

	req := enhanceRequest{
		Prompt:        prompt,
		Image:         encoded,
		Steps:         params.Steps,
		GuidanceScale: params.GuidanceScale,
	}
	var resp enhanceResponse
	if err := c.post(ctx, "/enhance", req, &resp); err != nil {
		return nil, errors.Wrap(errors.ErrCodeEnhanceFailed, err, "enhancement request")
	}
	if resp.Error != "" {
		return nil, errors.New(errors.ErrCodeEnhanceFailed, "sidecar: %s", resp.Error)
	}

	data, err := base64.StdEncoding.DecodeString(resp.Image)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEnhanceFailed, err, "decoding enhanced image")
	}
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeEnhanceFailed, err, "decoding enhanced png")
	}
	return img, nil
}

// encodeCondition resizes the wireframe so both dimensions are multiples of
// eight, as the diffusion UNet requires, then base64-encodes it as PNG.
func encodeCondition(img image.Image) (string, error) {
	bounds := img.Bounds()
	w := bounds.Dx() / 8 * 8
	h := bounds.Dy() / 8 * 8
	if w == 0 || h == 0 {
		return "", fmt.Errorf("condition image %dx%d too small", bounds.Dx(), bounds.Dy())
	}
	if w != bounds.Dx() || h != bounds.Dy() {
		img = imaging.Resize(img, w, h, imaging.Lanczos)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(buf.Bytes()), nil
}

func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return err
	}
	return c.do(req, out)
}

func (c *Client) post(ctx context.Context, path string, in, out any) error {
	var body bytes.Buffer
	if in != nil {
		if err := json.NewEncoder(&body).Encode(in); err != nil {
			return err
		}
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, &body)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	return c.do(req, out)
}

func (c *Client) do(req *http.Request, out any) error {
	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("sidecar returned %s", resp.Status)
	}
	if out == nil {
		return nil
	}
	return json.NewDecoder(resp.Body).Decode(out)
}

var _ Enhancer = (*Client)(nil)
