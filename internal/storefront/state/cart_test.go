package state

import (
	"testing"

	"shoppyglobe/internal/storefront/catalog"

	"github.com/stretchr/testify/assert"
)

func productP1() catalog.Product {
	return catalog.Product{ID: 1, Title: "Beans", Price: 10, Thumbnail: "p1.jpg", Category: "groceries"}
}

func productP2() catalog.Product {
	return catalog.Product{ID: 2, Title: "Phone", Price: 549, Thumbnail: "p2.jpg", Category: "smartphones"}
}

// 同一商品を2回追加→1行で数量2
func TestCart_AddSameProductTwice_AccumulatesQuantity(t *testing.T) {
	s := CartState{}

	s = reduceCart(s, AddToCart{Product: productP1()})
	s = reduceCart(s, AddToCart{Product: productP1()})

	assert.Len(t, s.Lines, 1)
	assert.Equal(t, int64(2), s.Lines[0].Quantity)
	assert.Equal(t, float64(20), s.Total())
}

func TestCart_Add_SnapshotsProductFields(t *testing.T) {
	s := reduceCart(CartState{}, AddToCart{Product: productP1()})

	assert.Equal(t, int64(1), s.Lines[0].ProductID)
	assert.Equal(t, "Beans", s.Lines[0].Title)
	assert.Equal(t, float64(10), s.Lines[0].Price)
	assert.Equal(t, "p1.jpg", s.Lines[0].Thumbnail)
	assert.Equal(t, int64(1), s.Lines[0].Quantity)
}

// 追加順が保持されるか
func TestCart_Add_PreservesInsertionOrder(t *testing.T) {
	s := CartState{}
	s = reduceCart(s, AddToCart{Product: productP1()})
	s = reduceCart(s, AddToCart{Product: productP2()})
	s = reduceCart(s, AddToCart{Product: productP1()})

	assert.Len(t, s.Lines, 2)
	assert.Equal(t, int64(1), s.Lines[0].ProductID)
	assert.Equal(t, int64(2), s.Lines[1].ProductID)
}

func TestCart_Remove_KeepsOtherLines(t *testing.T) {
	s := CartState{}
	s = reduceCart(s, AddToCart{Product: productP1()})
	s = reduceCart(s, AddToCart{Product: productP2()})

	s = reduceCart(s, RemoveFromCart{ProductID: 1})

	assert.Len(t, s.Lines, 1)
	assert.Equal(t, int64(2), s.Lines[0].ProductID)
}

// 無いIDの削除は何も変えない
func TestCart_Remove_AbsentID_IsNoop(t *testing.T) {
	s := CartState{}
	s = reduceCart(s, AddToCart{Product: productP1()})
	before := s

	s = reduceCart(s, RemoveFromCart{ProductID: 99})

	assert.Equal(t, before.Lines, s.Lines)
}

// 0以下はちょうど1に切り上げ
func TestCart_SetQuantity_ClampsToOne(t *testing.T) {
	for _, qty := range []int64{0, -1, -100} {
		s := reduceCart(CartState{}, AddToCart{Product: productP1()})
		s = reduceCart(s, SetQuantity{ProductID: 1, Quantity: qty})

		assert.Equal(t, int64(1), s.Lines[0].Quantity)
	}
}

func TestCart_SetQuantity_Overwrites(t *testing.T) {
	s := reduceCart(CartState{}, AddToCart{Product: productP1()})
	s = reduceCart(s, SetQuantity{ProductID: 1, Quantity: 5})

	assert.Equal(t, int64(5), s.Lines[0].Quantity)
	assert.Equal(t, float64(50), s.Total())
}

func TestCart_SetQuantity_AbsentID_IsNoop(t *testing.T) {
	s := reduceCart(CartState{}, AddToCart{Product: productP1()})
	before := s

	s = reduceCart(s, SetQuantity{ProductID: 99, Quantity: 5})

	assert.Equal(t, before.Lines, s.Lines)
}

func TestCart_Clear_AlwaysEmpties(t *testing.T) {
	s := CartState{}
	s = reduceCart(s, AddToCart{Product: productP1()})
	s = reduceCart(s, AddToCart{Product: productP2()})

	s = reduceCart(s, ClearCart{})

	assert.Len(t, s.Lines, 0)
	assert.Equal(t, int64(0), s.Count())
	assert.Equal(t, float64(0), s.Total())

	//空のカートにClearしても空のまま
	s = reduceCart(s, ClearCart{})
	assert.Len(t, s.Lines, 0)
}

func TestCart_CountAndTotal(t *testing.T) {
	s := CartState{}
	assert.Equal(t, int64(0), s.Count())
	assert.Equal(t, float64(0), s.Total())

	s = reduceCart(s, AddToCart{Product: productP1()}) // 10
	s = reduceCart(s, AddToCart{Product: productP2()}) // 549
	s = reduceCart(s, SetQuantity{ProductID: 1, Quantity: 3})

	assert.Equal(t, int64(4), s.Count())
	assert.Equal(t, float64(10*3+549), s.Total())
}

func TestCart_IsInCart(t *testing.T) {
	s := reduceCart(CartState{}, AddToCart{Product: productP1()})

	assert.True(t, s.IsInCart(1))
	assert.False(t, s.IsInCart(2))
}

// 純関数であること：同じ状態＋同じ意図→同じ結果、元の状態は不変
func TestCart_ReducerIsPure(t *testing.T) {
	base := reduceCart(CartState{}, AddToCart{Product: productP1()})

	a := reduceCart(base, SetQuantity{ProductID: 1, Quantity: 7})
	b := reduceCart(base, SetQuantity{ProductID: 1, Quantity: 7})

	assert.Equal(t, a, b)
	assert.Equal(t, int64(1), base.Lines[0].Quantity)
}
