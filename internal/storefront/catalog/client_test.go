package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClient_ListAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products", r.URL.Path)
		assert.Equal(t, "100", r.URL.Query().Get("limit"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"products":[{"id":1,"title":"iPhone 9","price":549,"stock":94},{"id":2,"title":"iPhone X","price":899,"stock":34}],"total":2,"skip":0,"limit":100}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL)
	got, err := c.ListAll(context.Background())

	assert.NoError(t, err)
	assert.Len(t, got, 2)
	assert.Equal(t, "iPhone 9", got[0].Title)
	assert.Equal(t, float64(549), got[0].Price)
}

func TestClient_ListAll_EmptyProducts(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[],"total":0}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).ListAll(context.Background())

	assert.NoError(t, err)
	assert.NotNil(t, got)
	assert.Len(t, got, 0)
}

func TestClient_ListAll_ServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).ListAll(context.Background())

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "status 500")
}

func TestClient_GetByID(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/products/7", r.URL.Path)
		w.Write([]byte(`{"id":7,"title":"Perfume Oil","price":13.99,"category":"fragrances"}`))
	}))
	defer srv.Close()

	got, err := NewClient(srv.URL).GetByID(context.Background(), 7)

	assert.NoError(t, err)
	assert.Equal(t, int64(7), got.ID)
	assert.Equal(t, "fragrances", got.Category)
}

// 404は専用エラーに変換する
func TestClient_GetByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL).GetByID(context.Background(), 9999)

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestClient_GetByID_ContextCancelled(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"id":1}`))
	}))
	defer srv.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewClient(srv.URL).GetByID(ctx, 1)

	assert.Error(t, err)
}
