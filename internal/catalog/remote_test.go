package catalog

import (
	"net"
	"sync/atomic"
	"testing"
	"time"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
	"github.com/valyala/fasthttp/fasthttputil"
)

// serveCatalog starts an in-memory fasthttp server and returns a Remote
// wired to it plus a counter of handled requests.
func serveCatalog(t *testing.T, handler fasthttp.RequestHandler) (*Remote, *int32) {
	t.Helper()
	ln := fasthttputil.NewInmemoryListener()
	var hits int32
	srv := &fasthttp.Server{Handler: func(ctx *fasthttp.RequestCtx) {
		atomic.AddInt32(&hits, 1)
		handler(ctx)
	}}
	go srv.Serve(ln) //nolint:errcheck
	t.Cleanup(func() { ln.Close() })

	r := NewRemote("http://catalog.local/catalog.json", time.Second, nil)
	r.client.Dial = func(addr string) (net.Conn, error) { return ln.Dial() }
	return r, &hits
}

func TestRemoteFetchCaches(t *testing.T) {
	body, err := json.Marshal(Default())
	if err != nil {
		t.Fatal(err)
	}
	r, hits := serveCatalog(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetContentType("application/json")
		ctx.SetBody(body)
	})

	c, err := r.Fetch()
	if err != nil {
		t.Fatalf("Fetch: %v", err)
	}
	if len(c.Documents) != len(Default().Documents) {
		t.Fatalf("expected %d documents, got %d", len(Default().Documents), len(c.Documents))
	}
	if _, err := r.Fetch(); err != nil {
		t.Fatalf("second Fetch: %v", err)
	}
	if n := atomic.LoadInt32(hits); n != 1 {
		t.Fatalf("expected 1 request, got %d", n)
	}
}

func TestRemoteFetchStatusError(t *testing.T) {
	r, _ := serveCatalog(t, func(ctx *fasthttp.RequestCtx) {
		ctx.SetStatusCode(fasthttp.StatusServiceUnavailable)
	})
	if _, err := r.Fetch(); err == nil {
		t.Fatal("expected error on 503")
	}
}

func TestRemoteFormat(t *testing.T) {
	tests := []struct {
		url, contentType, want string
	}{
		{"http://x/catalog.json", "application/json", ".json"},
		{"http://x/catalog", "application/yaml", ".yaml"},
		{"http://x/catalog.yml?v=2", "text/plain", ".yaml"},
		{"http://x/catalog", "", ".json"},
	}
	for _, tt := range tests {
		r := NewRemote(tt.url, 0, nil)
		if got := r.format(tt.contentType); got != tt.want {
			t.Errorf("format(%q, %q) = %q, want %q", tt.url, tt.contentType, got, tt.want)
		}
	}
}

func TestLoadFallsBackToBuiltin(t *testing.T) {
	c, err := Load(Source{URL: "http://127.0.0.1:1/catalog.json", Timeout: 200 * time.Millisecond}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.Documents) != len(Default().Documents) {
		t.Fatal("expected built-in catalog")
	}
}

func TestLoadDefault(t *testing.T) {
	c, err := Load(Source{}, nil)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(c.InspectionTypes) != 3 {
		t.Fatalf("expected 3 inspection types, got %d", len(c.InspectionTypes))
	}
}
