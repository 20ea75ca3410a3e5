package catalog

import (
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
)

const defaultFetchTimeout = 2 * time.Second

// Remote fetches a catalog bundle over HTTP. A successful fetch is cached for
// the lifetime of the Remote.
type Remote struct {
	url     string
	timeout time.Duration
	client  *fasthttp.Client
	logger  *zap.Logger

	mu     sync.Mutex
	cached *Catalog
}

// NewRemote returns a Remote for url. A zero timeout uses 2s.
func NewRemote(url string, timeout time.Duration, logger *zap.Logger) *Remote {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Remote{
		url:     url,
		timeout: timeout,
		logger:  logger,
		client: &fasthttp.Client{
			Name:                "repse-simulator",
			MaxConnsPerHost:     4,
			MaxIdleConnDuration: 90 * time.Second,
			ReadTimeout:         timeout,
			WriteTimeout:        timeout,
		},
	}
}

// Fetch downloads, decodes and validates the catalog. YAML is accepted when
// the server says so in Content-Type or the URL ends in .yaml/.yml.
func (r *Remote) Fetch() (*Catalog, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.cached != nil {
		return r.cached, nil
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(r.url)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Accept", "application/json, application/yaml")

	start := time.Now()
	if err := r.client.DoTimeout(req, resp, r.timeout); err != nil {
		return nil, fmt.Errorf("fetch catalog %s: %w", r.url, err)
	}
	if resp.StatusCode() != fasthttp.StatusOK {
		return nil, fmt.Errorf("fetch catalog %s: unexpected status %d", r.url, resp.StatusCode())
	}

	c, err := Decode(resp.Body(), r.format(string(resp.Header.ContentType())))
	if err != nil {
		return nil, fmt.Errorf("fetch catalog %s: %w", r.url, err)
	}
	r.logger.Info("Fetched remote catalog",
		zap.String("url", r.url),
		zap.Int("documents", len(c.Documents)),
		zap.Int("questions", len(c.Questions)),
		zap.Duration("elapsed", time.Since(start)))
	r.cached = c
	return c, nil
}

func (r *Remote) format(contentType string) string {
	ct := strings.ToLower(contentType)
	if strings.Contains(ct, "yaml") {
		return ".yaml"
	}
	u := strings.ToLower(r.url)
	if i := strings.IndexAny(u, "?#"); i >= 0 {
		u = u[:i]
	}
	if strings.HasSuffix(u, ".yaml") || strings.HasSuffix(u, ".yml") {
		return ".yaml"
	}
	return ".json"
}

// Source selects where the catalog comes from.
type Source struct {
	Path    string
	URL     string
	Timeout time.Duration
}

// Load resolves src. A configured file must load; a remote bundle that
// cannot be fetched falls back to the built-in catalog.
func Load(src Source, logger *zap.Logger) (*Catalog, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if src.Path != "" {
		c, err := LoadFile(src.Path)
		if err != nil {
			return nil, err
		}
		logger.Info("Loaded catalog file", zap.String("path", src.Path))
		return c, nil
	}
	if src.URL != "" {
		c, err := NewRemote(src.URL, src.Timeout, logger).Fetch()
		if err == nil {
			return c, nil
		}
		logger.Warn("Remote catalog unavailable, using built-in catalog", zap.Error(err))
	}
	return Default(), nil
}
