package store

import (
	"time"

	"freshcart/internal/misc"
	"freshcart/internal/model"

	"golang.org/x/exp/slices"
)

func (s *MemStore) CreateNotification(n model.Notification) model.Notification {
	s.mu.Lock()
	defer s.mu.Unlock()

	n.ID = newID()
	if n.Type == "" {
		n.Type = model.NotificationTypeInfo
	}
	n.CreatedAt = time.Now()
	s.notifications[n.ID] = n
	addToIndex(s.notificationsByUser, n.UserID, n.ID)
	if !n.IsRead {
		s.unreadCounts[n.UserID]++
	}
	return n
}

func (s *MemStore) GetNotification(id string) (model.Notification, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	n, ok := s.notifications[id]
	return n, ok
}

// GetUserNotifications returns the user's notifications, newest first.
func (s *MemStore) GetUserNotifications(userID string) []model.Notification {
	s.mu.RLock()
	defer s.mu.RUnlock()

	ids := s.notificationsByUser[userID]
	ns := make([]model.Notification, 0, len(ids))
	for id := range ids {
		if n, ok := s.notifications[id]; ok {
			ns = append(ns, n)
		}
	}
	slices.SortFunc(ns, func(a, b model.Notification) bool {
		if !a.CreatedAt.Equal(b.CreatedAt) {
			return a.CreatedAt.After(b.CreatedAt)
		}
		return a.ID < b.ID
	})
	return ns
}

// GetUnreadNotificationCount is an O(1) counter lookup; the counter is
// maintained by every mutation that flips IsRead, never recomputed by
// scanning.
func (s *MemStore) GetUnreadNotificationCount(userID string) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.unreadCounts[userID]
}

// MarkNotificationAsRead flips the read flag and decrements the owner's
// unread counter. Marking an already-read notification is a no-op that
// returns the record unchanged.
func (s *MemStore) MarkNotificationAsRead(id string) (model.Notification, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	n, ok := s.notifications[id]
	if !ok {
		return model.Notification{}, false
	}
	if n.IsRead {
		return n, true
	}
	n.IsRead = true
	s.notifications[id] = n
	s.unreadCounts[n.UserID] = misc.Max(0, s.unreadCounts[n.UserID]-1)
	return n, true
}

// MarkAllNotificationsAsRead flips every unread notification of the user
// and zeroes the counter, reporting whether anything changed.
func (s *MemStore) MarkAllNotificationsAsRead(userID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	changed := false
	for id := range s.notificationsByUser[userID] {
		n, ok := s.notifications[id]
		if !ok || n.IsRead {
			continue
		}
		n.IsRead = true
		s.notifications[id] = n
		changed = true
	}
	if changed {
		s.unreadCounts[userID] = 0
	}
	return changed
}
