package store

import (
	"time"

	"freshcart/internal/model"
)

// seed fills the primary maps with the demo catalog and banners shown to
// a fresh install. It writes the maps directly; buildIndexes runs right
// after and derives the indexes in one pass.
func (s *MemStore) seed() {
	cats := []model.Category{
		{Name: "Fruits & Vegetables", Slug: "fruits-vegetables", SortOrder: 1},
		{Name: "Dairy & Eggs", Slug: "dairy-eggs", SortOrder: 2},
		{Name: "Meat & Fish", Slug: "meat-fish", SortOrder: 3},
		{Name: "Bakery", Slug: "bakery", SortOrder: 4},
		{Name: "Snacks & Drinks", Slug: "snacks-drinks", SortOrder: 5},
		{Name: "Ready Meals", Slug: "ready-meals", SortOrder: 6},
	}
	catBySlug := make(map[string]string, len(cats))
	for _, c := range cats {
		c.ID = newID()
		s.categories[c.ID] = c
		catBySlug[c.Slug] = c.ID
	}

	prods := []model.Product{
		{Name: "Gala Apples", Description: "Sweet red apples", Price: 159, Weight: "1kg",
			CategoryID: catBySlug["fruits-vegetables"], InStock: true, IsPopular: true},
		{Name: "Bananas", Description: "Ripe bananas", Price: 120, Weight: "1kg",
			CategoryID: catBySlug["fruits-vegetables"], InStock: true},
		{Name: "Whole Milk 3.2%", Description: "Pasteurized whole milk", Price: 75, Weight: "930ml",
			CategoryID: catBySlug["dairy-eggs"], InStock: true, IsPopular: true},
		{Name: "Farm Eggs", Description: "10 medium eggs", Price: 95, Weight: "10pc",
			CategoryID: catBySlug["dairy-eggs"], InStock: true},
		{Name: "Chicken Breast", Description: "Chilled chicken fillet", Price: 320, Weight: "600g",
			CategoryID: catBySlug["meat-fish"], InStock: true},
		{Name: "Borodinsky Bread", Description: "Rye bread with coriander", Price: 89, Weight: "500g",
			CategoryID: catBySlug["bakery"], InStock: true, IsPopular: true},
		{Name: "Sparkling Water", Description: "Mineral sparkling water", Price: 45, Weight: "1l",
			CategoryID: catBySlug["snacks-drinks"], InStock: true},
		{Name: "Beef Pilaf", Description: "Ready-to-eat pilaf", Price: 350, Weight: "400g",
			CategoryID: catBySlug["ready-meals"], InStock: true, IsPopular: true},
	}
	for _, p := range prods {
		p.ID = newID()
		s.products[p.ID] = p
	}

	banners := []model.Banner{
		{
			Title:           "Delivery in 15 minutes",
			Message:         "Groceries at your door in 10-15 minutes",
			Type:            "info",
			BackgroundColor: "#6366f1",
			TextColor:       "#ffffff",
			IsActive:        true,
			Priority:        1,
		},
		{
			Title:           "Free delivery",
			Message:         "No delivery fee on orders over 300",
			Type:            "promo",
			BackgroundColor: "#10b981",
			TextColor:       "#ffffff",
			IsActive:        true,
			Priority:        2,
		},
	}
	now := time.Now()
	for _, b := range banners {
		b.ID = newID()
		b.CreatedAt = now
		s.banners[b.ID] = b
	}
}
