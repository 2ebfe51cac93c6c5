package store

import (
	"time"

	"freshcart/internal/model"

	"golang.org/x/exp/slices"
)

func (s *MemStore) CreateOrder(o model.Order) model.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	o.ID = newID()
	if o.Status == "" {
		o.Status = model.OrderStatusPending
	}
	o.CreatedAt = time.Now()
	s.orders[o.ID] = o
	addToIndex(s.ordersByUser, o.UserID, o.ID)
	return o
}

// GetUserOrders returns the user's orders, newest first.
func (s *MemStore) GetUserOrders(userID string) []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.ordersByUser[userID]
	os := make([]model.Order, 0, len(ids))
	for id := range ids {
		if o, ok := s.orders[id]; ok {
			os = append(os, o)
		}
	}
	sortOrdersNewestFirst(os)
	return os
}

func (s *MemStore) GetAllOrders() []model.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	os := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		os = append(os, o)
	}
	sortOrdersNewestFirst(os)
	return os
}

func (s *MemStore) GetOrder(id string) (model.Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	o, ok := s.orders[id]
	return o, ok
}

func (s *MemStore) UpdateOrderStatus(id string, status model.OrderStatus) (model.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return model.Order{}, false
	}
	o.Status = status
	s.orders[id] = o
	return o, true
}

func (s *MemStore) DeleteOrder(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	o, ok := s.orders[id]
	if !ok {
		return false
	}
	delete(s.orders, id)
	removeFromIndex(s.ordersByUser, o.UserID, id)
	return true
}

func sortOrdersNewestFirst(os []model.Order) {
	slices.SortFunc(os, func(a, b model.Order) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
}
