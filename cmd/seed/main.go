package main

import (
	"context"
	"log"

	"shoppyglobe/internal/config"
	"shoppyglobe/internal/domain/model"
	"shoppyglobe/internal/infra/db"
	infraRepo "shoppyglobe/internal/infra/repository"
	"shoppyglobe/internal/storefront/catalog"

	"github.com/joho/godotenv"
)

// DummyJSONのカタログをDBに取り込む。
func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	ctx := context.Background()

	gormDB, err := db.Connect()
	if err != nil {
		log.Fatalf("db connection failed: %v", err)
	}

	if err := gormDB.AutoMigrate(&model.Product{}); err != nil {
		log.Fatalf("auto migrate failed: %v", err)
	}

	//既に入っていれば何もしない
	var count int64
	if err := gormDB.Model(&model.Product{}).Count(&count).Error; err != nil {
		log.Fatalf("count failed: %v", err)
	}
	if count > 0 {
		log.Printf("products already seeded (%d rows), nothing to do", count)
		return
	}

	client := catalog.NewClient(cfg.CatalogBaseURL)
	products, err := client.ListAll(ctx)
	if err != nil {
		log.Fatalf("catalog fetch failed: %v", err)
	}

	repo := infraRepo.NewProductGormRepository(gormDB)

	seeded := 0
	for _, p := range products {
		_, err := repo.Create(ctx, model.Product{
			Title:              p.Title,
			Description:        p.Description,
			Price:              p.Price,
			DiscountPercentage: p.DiscountPercentage,
			Rating:             p.Rating,
			Stock:              p.Stock,
			Brand:              p.Brand,
			Category:           p.Category,
			Thumbnail:          p.Thumbnail,
		})
		if err != nil {
			log.Printf("seed failed for %q: %v", p.Title, err)
			continue
		}
		seeded++
	}

	log.Printf("seeded %d products", seeded)
}
