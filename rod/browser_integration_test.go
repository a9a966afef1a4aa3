//go:build integration

package rod_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/rjoshi/ecourts"
	ecrod "github.com/rjoshi/ecourts/rod"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func portalStub(t *testing.T) (*httptest.Server, *atomic.Value) {
	t.Helper()

	var lastQuery atomic.Value
	lastQuery.Store("")

	mux := http.NewServeMux()
	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		lastQuery.Store(r.URL.RawQuery)
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(`<!DOCTYPE html>
<html>
<body>
<input id="cino" type="text">
</body>
</html>`))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv, &lastQuery
}

func TestBrowser_OpenCauseList(t *testing.T) {
	t.Parallel()

	srv, lastQuery := portalStub(t)

	browser, err := ecrod.NewBrowser(srv.URL)
	require.NoError(t, err)
	defer browser.Close()

	err = browser.OpenCauseList(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "p=cause_list/index", lastQuery.Load())
}

func TestBrowser_OpenCaseStatus_PrefillsCNR(t *testing.T) {
	t.Parallel()

	srv, _ := portalStub(t)

	browser, err := ecrod.NewBrowser(srv.URL)
	require.NoError(t, err)
	defer browser.Close()

	err = browser.OpenCaseStatus(context.Background(), "DLND010012342024")
	require.NoError(t, err)

	el, err := browser.Page().Element("#cino")
	require.NoError(t, err)
	value, err := el.Property("value")
	require.NoError(t, err)
	assert.Equal(t, "DLND010012342024", value.String())
}

func TestBrowser_Close_Idempotent(t *testing.T) {
	t.Parallel()

	srv, _ := portalStub(t)

	browser, err := ecrod.NewBrowser(srv.URL)
	require.NoError(t, err)

	require.NoError(t, browser.Close())
	require.NoError(t, browser.Close())
}

func TestBrowser_RejectsInvalidBaseURL(t *testing.T) {
	t.Parallel()

	_, err := ecrod.NewBrowser("://not-a-url")

	require.Error(t, err)
	assert.Equal(t, ecourts.EINVALID, ecourts.ErrorCode(err))
}
