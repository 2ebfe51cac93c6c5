package store

import (
	"time"

	"freshcart/internal/model"

	"golang.org/x/exp/slices"
)

// GetActiveBanners returns the banners whose display window contains the
// current time, sorted ascending by priority (lower value shows first).
func (s *MemStore) GetActiveBanners() []model.Banner {
	if v, ok := s.cache.get(cacheKeyBannersActive); ok {
		return v.([]model.Banner)
	}

	now := time.Now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	bs := make([]model.Banner, 0, len(s.banners))
	for _, b := range s.banners {
		if b.ActiveAt(now) {
			bs = append(bs, b)
		}
	}
	slices.SortFunc(bs, func(a, b model.Banner) bool {
		if a.Priority != b.Priority {
			return a.Priority < b.Priority
		}
		return a.ID < b.ID
	})

	s.cache.set(cacheKeyBannersActive, bs)
	return bs
}

func (s *MemStore) GetAllBanners() []model.Banner {
	s.mu.RLock()
	defer s.mu.RUnlock()

	bs := make([]model.Banner, 0, len(s.banners))
	for _, b := range s.banners {
		bs = append(bs, b)
	}
	slices.SortFunc(bs, func(a, b model.Banner) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return bs
}

func (s *MemStore) CreateBanner(b model.Banner) model.Banner {
	s.mu.Lock()
	defer s.mu.Unlock()

	b.ID = newID()
	b.CreatedAt = time.Now()
	s.banners[b.ID] = b

	s.cache.invalidate("banners", b.ID)
	return b
}

func (s *MemStore) UpdateBanner(id string, upd model.BannerUpdate) (model.Banner, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	b, ok := s.banners[id]
	if !ok {
		return model.Banner{}, false
	}

	if upd.Title != nil {
		b.Title = *upd.Title
	}
	if upd.Subtitle != nil {
		b.Subtitle = *upd.Subtitle
	}
	if upd.Message != nil {
		b.Message = *upd.Message
	}
	if upd.Type != nil {
		b.Type = *upd.Type
	}
	if upd.BackgroundColor != nil {
		b.BackgroundColor = *upd.BackgroundColor
	}
	if upd.TextColor != nil {
		b.TextColor = *upd.TextColor
	}
	if upd.ButtonText != nil {
		b.ButtonText = *upd.ButtonText
	}
	if upd.ButtonLink != nil {
		b.ButtonLink = *upd.ButtonLink
	}
	if upd.IsActive != nil {
		b.IsActive = *upd.IsActive
	}
	if upd.Priority != nil {
		b.Priority = *upd.Priority
	}
	if upd.StartDate != nil {
		b.StartDate = upd.StartDate
	}
	if upd.EndDate != nil {
		b.EndDate = upd.EndDate
	}
	s.banners[id] = b

	s.cache.invalidate("banners", id)
	return b, true
}

func (s *MemStore) DeleteBanner(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.banners[id]; !ok {
		return false
	}
	delete(s.banners, id)

	s.cache.invalidate("banners", id)
	return true
}
