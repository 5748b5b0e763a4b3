package state

// 検索テキストの状態。
type SearchState struct {
	Query string
}

// クエリをそのまま置き換える（trimしない）。
type SetSearchQuery struct {
	Query string
}

func (SetSearchQuery) isAction() {}

func reduceSearch(s SearchState, a Action) SearchState {
	switch t := a.(type) {
	case SetSearchQuery:
		return SearchState{Query: t.Query}
	default:
		return s
	}
}
