package renderer_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"deliveryops/internal/adapters/out/renderer"
	"deliveryops/internal/core/ports"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestClient_Render(t *testing.T) {
	t.Run("posts the document and returns the file", func(t *testing.T) {
		var got map[string]any
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, http.MethodPost, r.Method)
			assert.Equal(t, "/render", r.URL.Path)
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
			w.Header().Set("Content-Type", "application/pdf")
			_, _ = w.Write([]byte("%PDF-1.7"))
		}))
		defer ts.Close()

		client := renderer.NewClient(ts.URL+"/", time.Second, nil)

		out, err := client.Render(t.Context(), "<p>slip</p>", ports.A4)

		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.7"), out)
		assert.Equal(t, map[string]any{"html": "<p>slip</p>", "widthMm": 210.0, "heightMm": 297.0}, got)
	})

	t.Run("non-2xx answers are errors", func(t *testing.T) {
		ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			http.Error(w, "chromium crashed", http.StatusBadGateway)
		}))
		defer ts.Close()

		_, err := renderer.NewClient(ts.URL, time.Second, nil).Render(t.Context(), "<p/>", ports.A4)

		assert.ErrorContains(t, err, "unexpected status 502: chromium crashed")
	})

	t.Run("transport failures are logged", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		ts.Close()

		_, err := renderer.NewClient(ts.URL, time.Second, zap.New(core)).Render(t.Context(), "<p/>", ports.A4)

		require.Error(t, err)
		assert.Equal(t, 1, logs.FilterMessage("HTTP Request Failed").Len())
	})

	t.Run("successful requests are logged at debug", func(t *testing.T) {
		core, logs := observer.New(zap.DebugLevel)
		ts := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
		defer ts.Close()

		_, err := renderer.NewClient(ts.URL, 0, zap.New(core)).Render(t.Context(), "<p/>", ports.A4)

		require.NoError(t, err)
		entries := logs.FilterMessage("HTTP Request Completed").All()
		require.Len(t, entries, 1)
		assert.Equal(t, int64(http.StatusOK), entries[0].ContextMap()["status_code"])
	})
}
