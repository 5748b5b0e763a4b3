package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListLoader_SuccessTransitions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"products":[{"id":1,"title":"Beans"}]}`))
	}))
	defer srv.Close()

	l := NewListLoader(NewClient(srv.URL))

	done := l.Load(context.Background())
	<-done

	got := l.State()
	assert.False(t, got.Loading)
	assert.Equal(t, "", got.Err)
	assert.Len(t, got.Products, 1)
	assert.Equal(t, "Beans", got.Products[0].Title)
}

// 失敗したら既存の商品リストは残さない
func TestListLoader_FailureClearsProducts(t *testing.T) {
	var fail atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if fail.Load() {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		w.Write([]byte(`{"products":[{"id":1,"title":"Beans"}]}`))
	}))
	defer srv.Close()

	l := NewListLoader(NewClient(srv.URL))

	<-l.Load(context.Background())
	assert.Len(t, l.State().Products, 1)

	fail.Store(true)
	<-l.Load(context.Background())

	got := l.State()
	assert.False(t, got.Loading)
	assert.NotEqual(t, "", got.Err)
	assert.Len(t, got.Products, 0)
}

// 追い越されたリクエストの結果（エラー含む）は状態に反映されない
func TestListLoader_SupersededRequestIsDropped(t *testing.T) {
	var calls atomic.Int64
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			<-release // 1本目は保留
			w.Write([]byte(`{"products":[{"id":1,"title":"Stale"}]}`))
			return
		}
		w.Write([]byte(`{"products":[{"id":2,"title":"Fresh"}]}`))
	}))
	defer srv.Close()

	l := NewListLoader(NewClient(srv.URL))

	done1 := l.Load(context.Background())
	done2 := l.Load(context.Background())
	<-done2
	close(release)
	<-done1

	got := l.State()
	assert.False(t, got.Loading)
	assert.Equal(t, "", got.Err)
	assert.Len(t, got.Products, 1)
	assert.Equal(t, "Fresh", got.Products[0].Title)
}

func TestDetailLoader_SuccessAndNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/products/1" {
			w.Write([]byte(`{"id":1,"title":"Beans"}`))
			return
		}
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	l := NewDetailLoader(NewClient(srv.URL))

	<-l.Load(context.Background(), 1)
	got := l.State()
	assert.Equal(t, "Beans", got.Product.Title)
	assert.Equal(t, "", got.Err)

	<-l.Load(context.Background(), 9999)
	got = l.State()
	assert.False(t, got.Loading)
	assert.NotEqual(t, "", got.Err)
	assert.Equal(t, Product{}, got.Product)
}

func TestDetailLoader_LoadingStateWhileInFlight(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
		w.Write([]byte(`{"id":1,"title":"Beans"}`))
	}))
	defer srv.Close()

	l := NewDetailLoader(NewClient(srv.URL))

	done := l.Load(context.Background(), 1)

	got := l.State()
	assert.True(t, got.Loading)
	assert.Equal(t, "", got.Err)

	close(release)
	<-done
	assert.False(t, l.State().Loading)
}
