package store

import "freshcart/internal/model"

// GetCartItems returns the user's cart rows joined to their products.
// A row whose product no longer exists is dropped from the result rather
// than reported as an error.
func (s *MemStore) GetCartItems(userID string) []model.CartEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.cartItemsByUser[userID]
	entries := make([]model.CartEntry, 0, len(ids))
	for id := range ids {
		ci, ok := s.cartItems[id]
		if !ok {
			continue
		}
		p, ok := s.products[ci.ProductID]
		if !ok {
			continue
		}
		entries = append(entries, model.CartEntry{CartItem: ci, Product: p})
	}
	return entries
}

func (s *MemStore) GetCartItem(id string) (model.CartItem, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	ci, ok := s.cartItems[id]
	return ci, ok
}

// AddToCart inserts a cart row, or, when the user already has a row for
// the same product, increments that row's quantity instead. The lookup
// and the conditional insert run inside one critical section so two
// concurrent adds for the same (user, product) pair can never both miss
// and insert duplicates.
func (s *MemStore) AddToCart(item model.CartItem) model.CartItem {
	if item.Quantity < 1 {
		item.Quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for id := range s.cartItemsByUser[item.UserID] {
		existing, ok := s.cartItems[id]
		if ok && existing.ProductID == item.ProductID {
			existing.Quantity += item.Quantity
			s.cartItems[id] = existing
			return existing
		}
	}

	item.ID = newID()
	s.cartItems[item.ID] = item
	addToIndex(s.cartItemsByUser, item.UserID, item.ID)
	return item
}

func (s *MemStore) UpdateCartItem(id string, quantity int) (model.CartItem, bool) {
	if quantity < 1 {
		quantity = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ci, ok := s.cartItems[id]
	if !ok {
		return model.CartItem{}, false
	}
	ci.Quantity = quantity
	s.cartItems[id] = ci
	return ci, true
}

// RemoveFromCart deletes a cart row and its index entry, reporting
// whether the row existed.
func (s *MemStore) RemoveFromCart(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ci, ok := s.cartItems[id]
	if !ok {
		return false
	}
	delete(s.cartItems, id)
	removeFromIndex(s.cartItemsByUser, ci.UserID, id)
	return true
}

// ClearCart removes every cart row of the user, reporting whether any
// row was removed.
func (s *MemStore) ClearCart(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	ids, ok := s.cartItemsByUser[userID]
	if !ok || len(ids) == 0 {
		return false
	}
	for id := range ids {
		delete(s.cartItems, id)
	}
	delete(s.cartItemsByUser, userID)
	return true
}
