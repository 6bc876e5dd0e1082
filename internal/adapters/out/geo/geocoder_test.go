package geo

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"backoffice/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGeocoder_Geocode(t *testing.T) {
	ctx := t.Context()

	t.Run("should_resolve_first_result", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/search", r.URL.Path)
			assert.Equal(t, "12 Tahrir Square", r.URL.Query().Get("q"))
			assert.Equal(t, "json", r.URL.Query().Get("format"))
			_, _ = w.Write([]byte(`[
				{"lat": "30.0444", "lon": "31.2357"},
				{"lat": "0", "lon": "0"}
			]`))
		}))
		defer server.Close()

		point, err := NewHTTPGeocoder(server.URL).Geocode(ctx, "12 Tahrir Square")

		require.NoError(t, err)
		assert.InDelta(t, 30.0444, point.Lat(), 0.0001)
		assert.InDelta(t, 31.2357, point.Lng(), 0.0001)
	})

	t.Run("should_return_not_found_on_empty_results", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[]`))
		}))
		defer server.Close()

		_, err := NewHTTPGeocoder(server.URL).Geocode(ctx, "nowhere")

		require.ErrorIs(t, err, errs.ErrObjectNotFound)
	})

	t.Run("should_fail_on_unparseable_coordinates", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(`[{"lat": "north", "lon": "31.2"}]`))
		}))
		defer server.Close()

		_, err := NewHTTPGeocoder(server.URL).Geocode(ctx, "somewhere")

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should_fail_on_service_error", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTooManyRequests)
		}))
		defer server.Close()

		_, err := NewHTTPGeocoder(server.URL).Geocode(ctx, "somewhere")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "429")
	})
}
