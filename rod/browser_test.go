//go:build integration

package rod_test

import (
	"context"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/fwojciec/marsnap"
	"github.com/fwojciec/marsnap/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Browser implements marsnap.Browser.
var _ marsnap.Browser = (*rod.Browser)(nil)

func launch(t *testing.T, opts ...rod.Option) *rod.Browser {
	t.Helper()
	b, err := rod.NewLauncher(opts...).Launch(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = b.Close() })
	return b.(*rod.Browser)
}

func serveHTML(t *testing.T, pages map[string]string) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		html, ok := pages[r.URL.Path]
		if !ok {
			http.NotFound(w, r)
			return
		}
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(html))
	}))
	t.Cleanup(srv.Close)
	return srv
}

func TestBrowser_Load_ReturnsRenderedHTML(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, map[string]string{"/": `<!DOCTYPE html>
<html><body>
<div id="content">Loading...</div>
<script>document.getElementById('content').textContent = 'JavaScript Rendered';</script>
</body></html>`})

	b := launch(t)
	html, err := b.Load(context.Background(), srv.URL+"/", marsnap.WaitCondition{})

	require.NoError(t, err)
	assert.Contains(t, html, "JavaScript Rendered")
	assert.NotContains(t, html, "Loading...")
}

func TestBrowser_Load_WaitsForLateElement(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, map[string]string{"/": `<!DOCTYPE html>
<html><body>
<script>
setTimeout(function () {
	var d = document.createElement('div');
	d.className = 'list_text';
	d.textContent = 'late news';
	document.body.appendChild(d);
}, 300);
</script>
</body></html>`})

	b := launch(t)
	html, err := b.Load(context.Background(), srv.URL+"/", marsnap.WaitFor("div.list_text", 3*time.Second))

	require.NoError(t, err)
	assert.Contains(t, html, "late news")
}

func TestBrowser_Load_UnsatisfiedWaitReturnsMarkup(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, map[string]string{"/": `<html><body><p>present</p></body></html>`})

	b := launch(t)
	html, err := b.Load(context.Background(), srv.URL+"/", marsnap.WaitFor("div.never", 200*time.Millisecond))

	require.NoError(t, err)
	assert.Contains(t, html, "present")
}

func TestBrowser_Load_UnreachableHostIsUnavailable(t *testing.T) {
	t.Parallel()

	// Reserve a port and release it so nothing listens there.
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	b := launch(t)
	_, err = b.Load(context.Background(), "http://"+addr+"/", marsnap.WaitCondition{})

	require.Error(t, err)
	assert.Equal(t, marsnap.EUNAVAILABLE, marsnap.ErrorCode(err))
}

func TestBrowser_Load_ContextCancellation(t *testing.T) {
	t.Parallel()

	b := launch(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := b.Load(ctx, "http://example.com", marsnap.WaitCondition{})

	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestBrowser_Click(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, map[string]string{"/": `<!DOCTYPE html>
<html><body>
<button>Home</button>
<button onclick="var i = document.createElement('img'); i.className = 'fancybox-image'; i.src = 'image/full.jpg'; document.body.appendChild(i);">FULL IMAGE</button>
</body></html>`})

	t.Run("activates the indexed element", func(t *testing.T) {
		t.Parallel()

		b := launch(t)
		_, err := b.Load(context.Background(), srv.URL+"/", marsnap.WaitCondition{})
		require.NoError(t, err)

		html, err := b.Click(context.Background(), "button", 1, marsnap.WaitFor("img.fancybox-image", 2*time.Second))

		require.NoError(t, err)
		assert.Contains(t, html, `class="fancybox-image"`)
	})

	t.Run("reports missing element as not found", func(t *testing.T) {
		t.Parallel()

		b := launch(t)
		_, err := b.Load(context.Background(), srv.URL+"/", marsnap.WaitCondition{})
		require.NoError(t, err)

		_, err = b.Click(context.Background(), "button", 5, marsnap.WaitCondition{})

		require.Error(t, err)
		assert.Equal(t, marsnap.ENOTFOUND, marsnap.ErrorCode(err))
	})
}

func TestBrowser_Click_UnusableControl(t *testing.T) {
	t.Parallel()

	srv := serveHTML(t, map[string]string{
		"/covered": `<!DOCTYPE html>
<html><body>
<button>Home</button>
<button id="full">FULL IMAGE</button>
<div style="position:fixed;top:0;left:0;width:100%;height:100%;background:#fff;z-index:10"></div>
</body></html>`,
		"/disabled": `<!DOCTYPE html>
<html><body>
<button>Home</button>
<button disabled>FULL IMAGE</button>
</body></html>`,
	})

	for _, path := range []string{"/covered", "/disabled"} {
		t.Run(path, func(t *testing.T) {
			t.Parallel()

			b := launch(t, rod.WithWaitTimeout(500*time.Millisecond))
			_, err := b.Load(context.Background(), srv.URL+path, marsnap.WaitCondition{})
			require.NoError(t, err)

			start := time.Now()
			_, err = b.Click(context.Background(), "button", 1, marsnap.WaitCondition{})

			require.Error(t, err)
			assert.Equal(t, marsnap.ENOTFOUND, marsnap.ErrorCode(err))
			assert.Less(t, time.Since(start), 10*time.Second, "should give up after the wait timeout")
		})
	}
}

func TestBrowser_Close_Idempotent(t *testing.T) {
	t.Parallel()

	b, err := rod.NewLauncher().Launch(context.Background())
	require.NoError(t, err)

	require.NoError(t, b.Close())
	require.NoError(t, b.Close())
}

func TestBrowser_Load_AfterClose_ReturnsError(t *testing.T) {
	t.Parallel()

	b, err := rod.NewLauncher().Launch(context.Background())
	require.NoError(t, err)
	require.NoError(t, b.Close())

	_, err = b.Load(context.Background(), "http://example.com", marsnap.WaitCondition{})

	require.Error(t, err)
	assert.Equal(t, marsnap.EINVALID, marsnap.ErrorCode(err))
	assert.Contains(t, marsnap.ErrorMessage(err), "closed")
}
