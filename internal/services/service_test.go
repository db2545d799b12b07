package services

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/htung0403/quan-li-ben-xe-sub001/internal/apiclient"
	"github.com/htung0403/quan-li-ben-xe-sub001/internal/config"
)

func TestServicesClient(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet:
			assert.Equal(t, "/services/s1", r.URL.Path)
			_, _ = w.Write([]byte(`{"id":"s1","name":"Phí ra bến","unit":"lượt","price":25000,"isActive":true}`))
		case http.MethodPut:
			var body map[string]any
			assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, map[string]any{"price": float64(30000)}, body)
			_, _ = w.Write([]byte(`{"id":"s1","name":"Phí ra bến","unit":"lượt","price":30000,"isActive":true}`))
		}
	}))
	defer srv.Close()

	c := NewClient(apiclient.New(config.API{BaseURL: srv.URL}))
	ctx := context.Background()

	got, err := c.GetByID(ctx, "s1")
	require.NoError(t, err)
	assert.Equal(t, 25000.0, got.Price)

	price := 30000.0
	got, err = c.Update(ctx, "s1", Update{Price: &price})
	require.NoError(t, err)
	assert.Equal(t, 30000.0, got.Price)
	assert.Equal(t, Path, c.Path())
}
