package apiclient

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/config"
)

func newTestClient(t *testing.T, h http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(h)
	t.Cleanup(srv.Close)
	return New(config.API{BaseURL: srv.URL + "/api/", Token: "tok", ClientToken: "web-client"})
}

func TestClientGetSendsHeadersAndDecodes(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/drivers", r.URL.Path)
		assert.Equal(t, "true", r.URL.Query().Get("isActive"))
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))
		assert.Equal(t, "web-client", r.Header.Get(HeaderClientToken))
		assert.NotEmpty(t, r.Header.Get(HeaderRequestID))
		assert.Empty(t, r.Header.Get("Content-Type"))
		_, _ = w.Write([]byte(`[{"id":"d1"},{"id":"d2"}]`))
	})

	var out []struct {
		ID string `json:"id"`
	}
	err := c.Get(context.Background(), "/drivers", url.Values{"isActive": {"true"}}, &out)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, "d2", out[1].ID)
}

func TestClientPostEncodesBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		var got map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&got))
		assert.Equal(t, map[string]any{"name": "Bến xe Miền Đông"}, got)
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"loc-1","name":"Bến xe Miền Đông"}`))
	})

	var out struct {
		ID string `json:"id"`
	}
	err := c.Post(context.Background(), "/locations", map[string]string{"name": "Bến xe Miền Đông"}, &out)
	require.NoError(t, err)
	assert.Equal(t, "loc-1", out.ID)
}

func TestClientErrorMapping(t *testing.T) {
	testCases := []struct {
		name           string
		method         string
		status         int
		wantNotFound   bool
		wantValidation bool
	}{
		{name: "get 404", method: http.MethodGet, status: http.StatusNotFound, wantNotFound: true},
		{name: "put 404", method: http.MethodPut, status: http.StatusNotFound, wantNotFound: true},
		{name: "post 422", method: http.MethodPost, status: http.StatusUnprocessableEntity, wantValidation: true},
		{name: "put 400", method: http.MethodPut, status: http.StatusBadRequest, wantValidation: true},
		{name: "get 400", method: http.MethodGet, status: http.StatusBadRequest},
		{name: "post 500", method: http.MethodPost, status: http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, `{"message":"nope"}`, tc.status)
			})

			var err error
			switch tc.method {
			case http.MethodGet:
				err = c.Get(context.Background(), "/operators/x", nil, &struct{}{})
			case http.MethodPost:
				err = c.Post(context.Background(), "/operators", struct{}{}, &struct{}{})
			case http.MethodPut:
				err = c.Put(context.Background(), "/operators/x", struct{}{}, &struct{}{})
			}

			var he *HTTPError
			require.ErrorAs(t, err, &he)
			assert.Equal(t, tc.status, he.Status)
			assert.Equal(t, tc.status, StatusCode(err))
			assert.Contains(t, he.Body, "nope")
			assert.Equal(t, tc.wantNotFound, errors.Is(err, ErrNotFound))
			assert.Equal(t, tc.wantValidation, errors.Is(err, ErrValidation))
		})
	}
}

func TestClientNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	base := srv.URL
	srv.Close()

	c := New(config.API{BaseURL: base})
	err := c.Get(context.Background(), "/services", nil, &[]struct{}{})

	var ne *NetworkError
	require.ErrorAs(t, err, &ne)
	assert.Equal(t, http.MethodGet, ne.Method)
	assert.Equal(t, 0, StatusCode(err))
}

func TestClientDeleteIgnoresBody(t *testing.T) {
	calls := 0
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		assert.Equal(t, http.MethodDelete, r.Method)
		body, _ := io.ReadAll(r.Body)
		assert.Empty(t, body)
		if calls > 1 {
			http.Error(w, "gone", http.StatusNotFound)
			return
		}
		_, _ = w.Write([]byte(`not json at all`))
	})

	require.NoError(t, c.Delete(context.Background(), "/vehicle-types/vt-1"))
	err := c.Delete(context.Background(), "/vehicle-types/vt-1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClientEmptyBodyIsAnError(t *testing.T) {
	testCases := []struct {
		name   string
		status int
		call   func(c *Client, out any) error
	}{
		{name: "get 204", status: http.StatusNoContent, call: func(c *Client, out any) error {
			return c.Get(context.Background(), "/drivers/d1", nil, out)
		}},
		{name: "post 201 no body", status: http.StatusCreated, call: func(c *Client, out any) error {
			return c.Post(context.Background(), "/drivers", struct{}{}, out)
		}},
		{name: "put 200 blank body", status: http.StatusOK, call: func(c *Client, out any) error {
			return c.Put(context.Background(), "/drivers/d1", struct{}{}, out)
		}},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tc.status)
				if tc.status == http.StatusOK {
					_, _ = w.Write([]byte("  \n"))
				}
			})
			out := struct {
				ID string `json:"id"`
			}{ID: "kept"}
			err := tc.call(c, &out)
			assert.ErrorIs(t, err, ErrEmptyBody)
			assert.Equal(t, "kept", out.ID)
		})
	}
}

func TestClientNilOutAcceptsEmptyBody(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})
	require.NoError(t, c.Post(context.Background(), "/rpc/exec_sql", map[string]string{"sql": "SELECT 1"}, nil))
}
