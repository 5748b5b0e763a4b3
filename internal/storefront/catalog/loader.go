package catalog

import (
	"context"
	"sync"
)

// 一覧取得のtri-state。失敗時はProductsを空に戻す（部分結果は残さない）。
type ListState struct {
	Products []Product
	Loading  bool
	Err      string
}

// 詳細取得のtri-state。
type DetailState struct {
	Product Product
	Loading bool
	Err     string
}

// ListLoader は一覧リクエストのライフサイクルを持つ。
// 新しいLoadは先行リクエストをキャンセルし、遅れて返ってきた結果は捨てる。
type ListLoader struct {
	client *Client

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    int
	state  ListState
}

func NewListLoader(client *Client) *ListLoader {
	return &ListLoader{client: client}
}

// Load は非同期で一覧を取得する。返るチャネルはリクエスト決着時に閉じる。
func (l *ListLoader) Load(ctx context.Context) <-chan struct{} {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.seq++
	seq := l.seq
	l.state = ListState{Loading: true}
	l.mu.Unlock()

	done := make(chan struct{})

	go func() {
		defer close(done)

		products, err := l.client.ListAll(reqCtx)

		l.mu.Lock()
		defer l.mu.Unlock()

		// 追い越されたリクエストの結果は反映しない
		if seq != l.seq {
			return
		}

		if err != nil {
			l.state = ListState{Err: err.Error()}
			return
		}
		l.state = ListState{Products: products}
	}()

	return done
}

// State は現在のtri-stateのコピーを返す。
func (l *ListLoader) State() ListState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

// DetailLoader は商品詳細リクエストのライフサイクルを持つ。
// 表示対象のIDが変わったら前のリクエストを打ち切る。
type DetailLoader struct {
	client *Client

	mu     sync.Mutex
	cancel context.CancelFunc
	seq    int
	state  DetailState
}

func NewDetailLoader(client *Client) *DetailLoader {
	return &DetailLoader{client: client}
}

// Load は非同期でIDの商品を取得する。
func (l *DetailLoader) Load(ctx context.Context, id int64) <-chan struct{} {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	reqCtx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	l.seq++
	seq := l.seq
	l.state = DetailState{Loading: true}
	l.mu.Unlock()

	done := make(chan struct{})

	go func() {
		defer close(done)

		p, err := l.client.GetByID(reqCtx, id)

		l.mu.Lock()
		defer l.mu.Unlock()

		if seq != l.seq {
			return
		}

		if err != nil {
			l.state = DetailState{Err: err.Error()}
			return
		}
		l.state = DetailState{Product: p}
	}()

	return done
}

func (l *DetailLoader) State() DetailState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}
