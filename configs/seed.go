package configs

import (
	"log"

	"github.com/flounder11/online-coffee-api/entity"
)

func intPtr(v int) *int { return &v }

// SeedCatalog loads sample products and additives on first boot.
func SeedCatalog() error {
	db := DB()

	var productCount int64
	if err := db.Model(&entity.Product{}).Count(&productCount).Error; err != nil {
		return err
	}
	if productCount == 0 {
		products := []entity.Product{
			{Title: "Cappuccino", Img: "/images/cappuccino.png", Price: 140, Volume: intPtr(200), Category: "drinks", Popular: true, Description: "Classic cappuccino"},
			{Title: "Ice Latte", Img: "/images/ice-latte.png", Price: 190, Volume: intPtr(200), Category: "drinks", Popular: true, Description: "Classic ice latte"},
			{Title: "Matcha Tonic", Img: "/images/matcha-tonic.png", Price: 190, Volume: intPtr(200), Category: "drinks", Description: "Classic matcha tonic"},
			{Title: "Americano", Img: "/images/americano.png", Price: 190, Volume: intPtr(200), Category: "drinks", Popular: true, Description: "Classic americano"},
			{Title: "Cocoa", Img: "/images/cocoa.png", Price: 120, Volume: intPtr(200), Category: "drinks", Description: "Classic cocoa"},
			{Title: "Baguette", Img: "/images/baguette.png", Price: 90, Category: "bakery", Description: "Crispy baguette"},
			{Title: "Coffee Beans", Img: "/images/beans.png", Price: 450, Category: "stock", Description: "Whole beans, 250g"},
		}
		if err := db.Create(&products).Error; err != nil {
			return err
		}
		log.Println("sample products seeded")
	}

	var additiveCount int64
	if err := db.Model(&entity.Additive{}).Count(&additiveCount).Error; err != nil {
		return err
	}
	if additiveCount == 0 {
		additives := []entity.Additive{
			{Title: "Sugar", Price: 10, Category: "sweeteners", Available: true},
			{Title: "Cinnamon", Price: 15, Category: "spices", Available: true},
			{Title: "Vanilla Syrup", Price: 30, Category: "syrups", Available: true},
			{Title: "Caramel Syrup", Price: 30, Category: "syrups", Available: true},
			{Title: "Cream", Price: 25, Category: "dairy", Available: true},
			{Title: "Milk", Price: 20, Category: "dairy", Available: true},
			{Title: "Chocolate Chips", Price: 25, Category: "toppings", Available: true},
		}
		if err := db.Create(&additives).Error; err != nil {
			return err
		}
		log.Println("sample additives seeded")
	}

	return nil
}
