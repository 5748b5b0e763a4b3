package state

// カテゴリ絞り込みの状態。空文字は「絞り込みなし」。
type FilterState struct {
	SelectedCategory string
}

type SetCategoryFilter struct {
	Category string
}

type ClearCategoryFilter struct{}

func (SetCategoryFilter) isAction()   {}
func (ClearCategoryFilter) isAction() {}

func reduceFilter(s FilterState, a Action) FilterState {
	switch t := a.(type) {
	case SetCategoryFilter:
		return FilterState{SelectedCategory: t.Category}
	case ClearCategoryFilter:
		return FilterState{}
	default:
		return s
	}
}
