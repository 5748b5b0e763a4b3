package state

// Action はストアに投げる意図。各スライスのreducerが型で振り分ける。
type Action interface {
	isAction()
}

// State はアプリ全体の状態。グローバル変数にはしない（明示的に持ち回る）。
type State struct {
	Cart   CartState
	Search SearchState
	Filter FilterState
}

// Reduce は全スライスのreducerを合成した純関数。
// 自分宛てでないActionは各スライスが無視する。
func Reduce(s State, a Action) State {
	return State{
		Cart:   reduceCart(s.Cart, a),
		Search: reduceSearch(s.Search, a),
		Filter: reduceFilter(s.Filter, a),
	}
}

// Store はトップレベルのディスパッチャ。
// UIイベント処理の単一スレッドから同期的に使う想定で、ロックは持たない。
type Store struct {
	state State
}

func NewStore() *Store {
	return &Store{}
}

// Dispatch は意図を適用して状態を進める。
func (s *Store) Dispatch(a Action) {
	s.state = Reduce(s.state, a)
}

// State は現在の状態を返す。
func (s *Store) State() State {
	return s.state
}
