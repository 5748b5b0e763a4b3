package model

import "time"

// 商品。カタログ（DummyJSON）と同じ項目構成で保存する。
type Product struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Title              string    `gorm:"type:varchar(255);not null" json:"title"`
	Description        string    `gorm:"type:text" json:"description"`
	Price              float64   `gorm:"not null" json:"price"`
	DiscountPercentage float64   `gorm:"not null;default:0" json:"discountPercentage"`
	Rating             float64   `gorm:"not null;default:0" json:"rating"`
	Stock              int64     `gorm:"not null" json:"stock"`
	Brand              string    `gorm:"type:varchar(255)" json:"brand"`
	Category           string    `gorm:"type:varchar(255);index" json:"category"`
	Thumbnail          string    `gorm:"type:text" json:"thumbnail"`
	CreatedAt          time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
