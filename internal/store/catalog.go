package store

import (
	"strings"

	"freshcart/internal/model"

	"golang.org/x/exp/slices"
)

func (s *MemStore) GetCategories() []model.Category {
	if v, ok := s.cache.get(cacheKeyCategories); ok {
		return v.([]model.Category)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	cs := make([]model.Category, 0, len(s.categories))
	for _, c := range s.categories {
		cs = append(cs, c)
	}
	slices.SortFunc(cs, func(a, b model.Category) bool {
		if a.SortOrder != b.SortOrder {
			return a.SortOrder < b.SortOrder
		}
		return a.Name < b.Name
	})

	s.cache.set(cacheKeyCategories, cs)
	return cs
}

func (s *MemStore) CreateCategory(c model.Category) model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()

	c.ID = newID()
	s.categories[c.ID] = c

	s.cache.invalidate("categories", c.ID)
	return c
}

// GetProducts returns the in-stock products, read off the in-stock index
// rather than the full product map.
func (s *MemStore) GetProducts() []model.Product {
	if v, ok := s.cache.get(cacheKeyProductsInStock); ok {
		return v.([]model.Product)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	ps := make([]model.Product, 0, len(s.inStockProductIDs))
	for id := range s.inStockProductIDs {
		if p, ok := s.products[id]; ok {
			ps = append(ps, p)
		}
	}

	s.cache.set(cacheKeyProductsInStock, ps)
	return ps
}

func (s *MemStore) GetProduct(id string) (model.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.products[id]
	return p, ok
}

// GetProductsByCategory returns the in-stock products of one category.
// An unknown categoryID yields an empty slice, not an error.
func (s *MemStore) GetProductsByCategory(categoryID string) []model.Product {
	cacheKey := cacheKeyProductsByCatPfx + categoryID
	if v, ok := s.cache.get(cacheKey); ok {
		return v.([]model.Product)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	ids := s.productsByCategory[categoryID]
	ps := make([]model.Product, 0, len(ids))
	for id := range ids {
		if p, ok := s.products[id]; ok && p.InStock {
			ps = append(ps, p)
		}
	}

	s.cache.set(cacheKey, ps)
	return ps
}

func (s *MemStore) GetPopularProducts() []model.Product {
	if v, ok := s.cache.get(cacheKeyProductsPopular); ok {
		return v.([]model.Product)
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	ps := make([]model.Product, 0, len(s.popularProductIDs))
	for id := range s.popularProductIDs {
		if p, ok := s.products[id]; ok && p.InStock {
			ps = append(ps, p)
		}
	}

	s.cache.set(cacheKeyProductsPopular, ps)
	return ps
}

// SearchProducts matches query case-insensitively against name and
// description of in-stock products. Results are not cached: the query
// space is unbounded and would grow the cache without limit.
func (s *MemStore) SearchProducts(query string) []model.Product {
	q := strings.ToLower(query)

	s.mu.RLock()
	defer s.mu.RUnlock()
	var ps []model.Product
	for id := range s.inStockProductIDs {
		p, ok := s.products[id]
		if !ok {
			continue
		}
		if strings.Contains(strings.ToLower(p.Name), q) ||
			strings.Contains(strings.ToLower(p.Description), q) {
			ps = append(ps, p)
		}
	}
	return ps
}

func (s *MemStore) CreateProduct(p model.Product) model.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	p.ID = newID()
	s.products[p.ID] = p
	if p.CategoryID != "" {
		addToIndex(s.productsByCategory, p.CategoryID, p.ID)
	}
	if p.IsPopular {
		s.popularProductIDs.add(p.ID)
	}
	if p.InStock {
		s.inStockProductIDs.add(p.ID)
	}

	s.cache.invalidate("products", p.ID)
	return p
}

// UpdateProduct applies the non-nil fields of upd and re-slots the
// product in the category, popular and in-stock indexes.
func (s *MemStore) UpdateProduct(id string, upd model.ProductUpdate) (model.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.products[id]
	if !ok {
		return model.Product{}, false
	}

	if upd.Name != nil {
		p.Name = *upd.Name
	}
	if upd.Description != nil {
		p.Description = *upd.Description
	}
	if upd.Price != nil {
		p.Price = *upd.Price
	}
	if upd.Weight != nil {
		p.Weight = *upd.Weight
	}
	if upd.ImageURL != nil {
		p.ImageURL = *upd.ImageURL
	}
	if upd.CategoryID != nil && *upd.CategoryID != p.CategoryID {
		removeFromIndex(s.productsByCategory, p.CategoryID, id)
		p.CategoryID = *upd.CategoryID
		addToIndex(s.productsByCategory, p.CategoryID, id)
	}
	if upd.IsPopular != nil {
		p.IsPopular = *upd.IsPopular
		if p.IsPopular {
			s.popularProductIDs.add(id)
		} else {
			s.popularProductIDs.remove(id)
		}
	}
	if upd.InStock != nil {
		p.InStock = *upd.InStock
		if p.InStock {
			s.inStockProductIDs.add(id)
		} else {
			s.inStockProductIDs.remove(id)
		}
	}
	s.products[id] = p

	s.cache.invalidate("products", id)
	return p, true
}
