package state

import "shoppyglobe/internal/storefront/catalog"

// CartLine はカート1行。追加時点の商品スナップショットを持つので、
// あとからカタログが変わってもカートの中身は変わらない。
type CartLine struct {
	ProductID int64
	Title     string
	Price     float64
	Thumbnail string
	Quantity  int64
}

// CartState はCartLineの並び（追加順を保持）。
type CartState struct {
	Lines []CartLine
}

// ===== intents =====

// 追加。既にあれば数量+1、無ければquantity=1で末尾に追加。
type AddToCart struct {
	Product catalog.Product
}

// 行ごと削除。無ければ何もしない。
type RemoveFromCart struct {
	ProductID int64
}

// 数量の上書き。1未満は1に切り上げる。対象なしは何もしない。
type SetQuantity struct {
	ProductID int64
	Quantity  int64
}

// 全行削除（注文確定後など）。
type ClearCart struct{}

func (AddToCart) isAction()      {}
func (RemoveFromCart) isAction() {}
func (SetQuantity) isAction()    {}
func (ClearCart) isAction()      {}

// reduceCart は純関数。同じ状態と意図なら必ず同じ結果になる。
func reduceCart(s CartState, a Action) CartState {
	switch t := a.(type) {
	case AddToCart:
		for i, line := range s.Lines {
			if line.ProductID == t.Product.ID {
				lines := copyLines(s.Lines)
				lines[i].Quantity++
				return CartState{Lines: lines}
			}
		}

		lines := copyLines(s.Lines)
		lines = append(lines, CartLine{
			ProductID: t.Product.ID,
			Title:     t.Product.Title,
			Price:     t.Product.Price,
			Thumbnail: t.Product.Thumbnail,
			Quantity:  1,
		})
		return CartState{Lines: lines}

	case RemoveFromCart:
		lines := make([]CartLine, 0, len(s.Lines))
		for _, line := range s.Lines {
			if line.ProductID != t.ProductID {
				lines = append(lines, line)
			}
		}
		return CartState{Lines: lines}

	case SetQuantity:
		qty := t.Quantity
		if qty < 1 {
			qty = 1
		}

		lines := copyLines(s.Lines)
		for i := range lines {
			if lines[i].ProductID == t.ProductID {
				lines[i].Quantity = qty
			}
		}
		return CartState{Lines: lines}

	case ClearCart:
		return CartState{Lines: []CartLine{}}

	default:
		return s
	}
}

func copyLines(lines []CartLine) []CartLine {
	out := make([]CartLine, len(lines))
	copy(out, lines)
	return out
}

// ===== derived views（毎回計算する。キャッシュしない） =====

// Items は行の並びを返す。
func (s CartState) Items() []CartLine {
	return s.Lines
}

// Count は数量の合計。
func (s CartState) Count() int64 {
	var total int64
	for _, line := range s.Lines {
		total += line.Quantity
	}
	return total
}

// Total は単価×数量の合計（元通貨）。
func (s CartState) Total() float64 {
	var total float64
	for _, line := range s.Lines {
		total += line.Price * float64(line.Quantity)
	}
	return total
}

// IsInCart は商品がカートにあるか。
func (s CartState) IsInCart(productID int64) bool {
	for _, line := range s.Lines {
		if line.ProductID == productID {
			return true
		}
	}
	return false
}
