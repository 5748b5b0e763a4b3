package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strconv"
	"strings"

	"shoppyglobe/internal/config"
	"shoppyglobe/internal/storefront/catalog"
	"shoppyglobe/internal/storefront/currency"
	"shoppyglobe/internal/storefront/state"

	"github.com/joho/godotenv"
)

// 端末で browse → detail → cart → checkout を一通り回すストアフロント。
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	client := catalog.NewClient(cfg.CatalogBaseURL)
	listLoader := catalog.NewListLoader(client)
	detailLoader := catalog.NewDetailLoader(client)
	store := state.NewStore()

	fmt.Println("ShoppyGlobe storefront")
	fmt.Println("loading catalog...")

	<-listLoader.Load(ctx)
	if st := listLoader.State(); st.Err != "" {
		fmt.Printf("catalog error: %s\n", st.Err)
	} else {
		fmt.Printf("%d products loaded\n", len(st.Products))
	}
	fmt.Println(`commands: list / search <text> / category <name> / nocategory / show <id> / add <id> / remove <id> / qty <id> <n> / cart / checkout / quit`)

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			return
		}

		fields := strings.Fields(scanner.Text())
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "quit", "exit":
			return

		case "list":
			printList(listLoader.State(), store.State())

		case "search":
			//クエリはそのまま保持する
			store.Dispatch(state.SetSearchQuery{Query: strings.Join(fields[1:], " ")})
			printList(listLoader.State(), store.State())

		case "category":
			store.Dispatch(state.SetCategoryFilter{Category: strings.Join(fields[1:], " ")})
			printList(listLoader.State(), store.State())

		case "nocategory":
			store.Dispatch(state.ClearCategoryFilter{})
			printList(listLoader.State(), store.State())

		case "show":
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			<-detailLoader.Load(ctx, id)
			printDetail(detailLoader.State(), store.State())

		case "add":
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			p, found := findProduct(listLoader.State().Products, id)
			if !found {
				fmt.Println("unknown product id")
				continue
			}
			store.Dispatch(state.AddToCart{Product: p})
			fmt.Printf("added %q (cart: %d items)\n", p.Title, store.State().Cart.Count())

		case "remove":
			id, ok := parseID(fields)
			if !ok {
				continue
			}
			store.Dispatch(state.RemoveFromCart{ProductID: id})
			printCart(store.State().Cart)

		case "qty":
			if len(fields) < 3 {
				fmt.Println("usage: qty <id> <n>")
				continue
			}
			id, err1 := strconv.ParseInt(fields[1], 10, 64)
			n, err2 := strconv.ParseInt(fields[2], 10, 64)
			if err1 != nil || err2 != nil {
				fmt.Println("usage: qty <id> <n>")
				continue
			}
			store.Dispatch(state.SetQuantity{ProductID: id, Quantity: n})
			printCart(store.State().Cart)

		case "cart":
			printCart(store.State().Cart)

		case "checkout":
			cart := store.State().Cart
			if len(cart.Items()) == 0 {
				fmt.Println("cart is empty")
				continue
			}
			printCart(cart)
			fmt.Printf("order placed: %d items, %s\n", cart.Count(), currency.FormatPrice(cart.Total()))
			store.Dispatch(state.ClearCart{})

		default:
			fmt.Println("unknown command")
		}
	}
}

func parseID(fields []string) (int64, bool) {
	if len(fields) < 2 {
		fmt.Println("product id required")
		return 0, false
	}
	id, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		fmt.Println("product id must be a number")
		return 0, false
	}
	return id, true
}

func findProduct(products []catalog.Product, id int64) (catalog.Product, bool) {
	for _, p := range products {
		if p.ID == id {
			return p, true
		}
	}
	return catalog.Product{}, false
}

// 検索・カテゴリで絞った一覧を表示
func printList(list catalog.ListState, st state.State) {
	if list.Loading {
		fmt.Println("loading...")
		return
	}
	if list.Err != "" {
		fmt.Printf("error: %s\n", list.Err)
		return
	}

	filtered := catalog.Filter(list.Products, st.Search.Query, st.Filter.SelectedCategory)
	for _, p := range filtered {
		mark := " "
		if st.Cart.IsInCart(p.ID) {
			mark = "*"
		}
		fmt.Printf("%s %4d  %-40s %10s  [%s]\n", mark, p.ID, p.Title, currency.FormatPrice(p.Price), p.Category)
	}
	fmt.Printf("%d / %d products\n", len(filtered), len(list.Products))
}

func printDetail(d catalog.DetailState, st state.State) {
	if d.Loading {
		fmt.Println("loading...")
		return
	}
	if d.Err != "" {
		fmt.Printf("error: %s\n", d.Err)
		return
	}

	p := d.Product
	fmt.Printf("%s (%s / %s)\n", p.Title, p.Brand, p.Category)
	fmt.Printf("  %s  rating %.2f  stock %d\n", currency.FormatPrice(p.Price), p.Rating, p.Stock)
	fmt.Printf("  %s\n", p.Description)
	if st.Cart.IsInCart(p.ID) {
		fmt.Println("  (already in cart)")
	}
}

func printCart(cart state.CartState) {
	for _, line := range cart.Items() {
		fmt.Printf("  %4d  %-40s x%-3d %10s\n",
			line.ProductID, line.Title, line.Quantity,
			currency.FormatPrice(line.Price*float64(line.Quantity)))
	}
	fmt.Printf("total: %d items, %s\n", cart.Count(), currency.FormatPrice(cart.Total()))
}
