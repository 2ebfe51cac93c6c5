package store

import (
	"sync"

	"freshcart/internal/model"

	"github.com/google/uuid"
)

// MemStore holds all entity state in memory. Reads that would otherwise
// scan a primary map go through secondary indexes, and expensive
// aggregate reads are kept in a short-lived result cache. Every mutation
// updates the affected indexes and drops the affected cache keys inside
// the same critical section, so the indexes are always a consistent view
// over the primary maps.
//
// A single RWMutex guards the primary maps and all indexes. The cache
// carries its own lock and is best-effort: a reader that raced ahead of
// an invalidation may return a just-stale value.
type MemStore struct {
	mu sync.RWMutex

	users         map[string]model.User
	categories    map[string]model.Category
	products      map[string]model.Product
	cartItems     map[string]model.CartItem
	orders        map[string]model.Order
	notifications map[string]model.Notification
	banners       map[string]model.Banner
	codes         map[string]model.VerificationCode
	sessions      map[string]model.Session

	userIDByPhone       map[string]string
	productsByCategory  map[string]idSet
	popularProductIDs   idSet
	inStockProductIDs   idSet
	cartItemsByUser     map[string]idSet
	ordersByUser        map[string]idSet
	notificationsByUser map[string]idSet
	unreadCounts        map[string]int
	codeIDsByPhone      map[string]idSet
	sessionIDByDigest   map[string]string

	cache *resultCache
}

// New returns a store seeded with the demo catalog and banners, with all
// secondary indexes built in one scan over the primary maps.
func New() *MemStore {
	s := newStore()
	s.seed()
	s.buildIndexes()
	return s
}

func newStore() *MemStore {
	return &MemStore{
		users:         make(map[string]model.User),
		categories:    make(map[string]model.Category),
		products:      make(map[string]model.Product),
		cartItems:     make(map[string]model.CartItem),
		orders:        make(map[string]model.Order),
		notifications: make(map[string]model.Notification),
		banners:       make(map[string]model.Banner),
		codes:         make(map[string]model.VerificationCode),
		sessions:      make(map[string]model.Session),

		userIDByPhone:       make(map[string]string),
		productsByCategory:  make(map[string]idSet),
		popularProductIDs:   make(idSet),
		inStockProductIDs:   make(idSet),
		cartItemsByUser:     make(map[string]idSet),
		ordersByUser:        make(map[string]idSet),
		notificationsByUser: make(map[string]idSet),
		unreadCounts:        make(map[string]int),
		codeIDsByPhone:      make(map[string]idSet),
		sessionIDByDigest:   make(map[string]string),

		cache: newResultCache(defaultCacheTTL),
	}
}

// buildIndexes derives every secondary index from the primary maps.
// Called once at construction; afterwards each mutation maintains the
// indexes incrementally.
func (s *MemStore) buildIndexes() {
	s.mu.Lock()
	defer s.mu.Unlock()

	for id, u := range s.users {
		s.userIDByPhone[u.Phone] = id
	}

	for id, p := range s.products {
		if p.CategoryID != "" {
			addToIndex(s.productsByCategory, p.CategoryID, id)
		}
		if p.IsPopular {
			s.popularProductIDs.add(id)
		}
		if p.InStock {
			s.inStockProductIDs.add(id)
		}
	}

	for id, ci := range s.cartItems {
		addToIndex(s.cartItemsByUser, ci.UserID, id)
	}

	for id, o := range s.orders {
		addToIndex(s.ordersByUser, o.UserID, id)
	}

	for id, n := range s.notifications {
		addToIndex(s.notificationsByUser, n.UserID, id)
		if !n.IsRead {
			s.unreadCounts[n.UserID]++
		}
	}

	for id, c := range s.codes {
		addToIndex(s.codeIDsByPhone, c.Phone, id)
	}

	for id, sess := range s.sessions {
		s.sessionIDByDigest[sess.TokenDigest] = id
	}
}

func newID() string {
	return uuid.NewString()
}
