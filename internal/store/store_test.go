package store

import (
	"testing"
	"time"

	"freshcart/internal/model"

	"golang.org/x/crypto/bcrypt"
)

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool    { return &b }

func TestSeededStore(t *testing.T) {
	s := New()

	cs := s.GetCategories()
	if len(cs) == 0 {
		t.Fatal("expected seeded categories")
	}
	for i := 1; i < len(cs); i++ {
		if cs[i-1].SortOrder > cs[i].SortOrder {
			t.Fatalf("categories not sorted by SortOrder: %d before %d", cs[i-1].SortOrder, cs[i].SortOrder)
		}
	}

	ps := s.GetProducts()
	if len(ps) == 0 {
		t.Fatal("expected seeded in-stock products")
	}
	for _, p := range ps {
		if !p.InStock {
			t.Fatalf("GetProducts returned out-of-stock product: %s", p.Name)
		}
	}

	for _, p := range s.GetPopularProducts() {
		if !p.IsPopular || !p.InStock {
			t.Fatalf("GetPopularProducts returned product that is not popular and in stock: %s", p.Name)
		}
	}

	if len(s.GetActiveBanners()) == 0 {
		t.Fatal("expected seeded active banners")
	}
}

func TestCreateUserPhoneUnique(t *testing.T) {
	s := newStore()

	u, ok := s.CreateUser(model.User{Phone: "+79990001122"})
	if !ok {
		t.Fatal("expected first CreateUser to succeed")
	}
	if _, ok := s.CreateUser(model.User{Phone: "+79990001122"}); ok {
		t.Fatal("expected CreateUser with taken phone to fail")
	}

	got, ok := s.GetUserByPhone("+79990001122")
	if !ok || got.ID != u.ID {
		t.Fatalf("GetUserByPhone returned %+v, want ID %s", got, u.ID)
	}
}

func TestUpdateUserPartial(t *testing.T) {
	s := newStore()
	u, _ := s.CreateUser(model.User{Phone: "+79990001122", FirstName: "Ann", Address: "Old St 1"})

	got, ok := s.UpdateUser(u.ID, model.UserUpdate{Address: strPtr("New St 2")})
	if !ok {
		t.Fatal("expected UpdateUser to succeed")
	}
	if got.Address != "New St 2" || got.FirstName != "Ann" {
		t.Fatalf("partial update changed wrong fields: %+v", got)
	}
}

func TestAddToCartIncrementsExistingRow(t *testing.T) {
	s := newStore()
	p := s.CreateProduct(model.Product{Name: "Milk", Price: 75, InStock: true})

	first := s.AddToCart(model.CartItem{UserID: "u1", ProductID: p.ID, Quantity: 2})
	second := s.AddToCart(model.CartItem{UserID: "u1", ProductID: p.ID, Quantity: 3})

	if second.ID != first.ID {
		t.Fatalf("expected same cart row, got %s and %s", first.ID, second.ID)
	}
	if second.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", second.Quantity)
	}

	entries := s.GetCartItems("u1")
	if len(entries) != 1 {
		t.Fatalf("expected 1 cart entry, got %d", len(entries))
	}
	if entries[0].Product.Name != "Milk" {
		t.Fatalf("cart entry joined to wrong product: %s", entries[0].Product.Name)
	}
}

func TestAddToCartMinimumQuantity(t *testing.T) {
	s := newStore()
	p := s.CreateProduct(model.Product{Name: "Bread", Price: 89, InStock: true})

	ci := s.AddToCart(model.CartItem{UserID: "u1", ProductID: p.ID, Quantity: 0})
	if ci.Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", ci.Quantity)
	}
}

func TestClearCart(t *testing.T) {
	s := newStore()
	p1 := s.CreateProduct(model.Product{Name: "Milk", Price: 75, InStock: true})
	p2 := s.CreateProduct(model.Product{Name: "Bread", Price: 89, InStock: true})
	s.AddToCart(model.CartItem{UserID: "u1", ProductID: p1.ID, Quantity: 1})
	s.AddToCart(model.CartItem{UserID: "u1", ProductID: p2.ID, Quantity: 1})
	s.AddToCart(model.CartItem{UserID: "u2", ProductID: p1.ID, Quantity: 1})

	if !s.ClearCart("u1") {
		t.Fatal("expected ClearCart to report removal")
	}
	if len(s.GetCartItems("u1")) != 0 {
		t.Fatal("expected u1 cart to be empty")
	}
	if len(s.GetCartItems("u2")) != 1 {
		t.Fatal("expected u2 cart to be untouched")
	}
	if s.ClearCart("u1") {
		t.Fatal("expected second ClearCart to report nothing removed")
	}
}

func TestProductIndexesFollowUpdates(t *testing.T) {
	s := newStore()
	cat := s.CreateCategory(model.Category{Name: "Dairy", Slug: "dairy"})
	other := s.CreateCategory(model.Category{Name: "Bakery", Slug: "bakery"})
	p := s.CreateProduct(model.Product{Name: "Milk", Price: 75, CategoryID: cat.ID, InStock: true, IsPopular: true})

	if got := s.GetProductsByCategory(cat.ID); len(got) != 1 || got[0].ID != p.ID {
		t.Fatalf("expected product in category, got %+v", got)
	}
	if got := s.GetPopularProducts(); len(got) != 1 {
		t.Fatalf("expected 1 popular product, got %d", len(got))
	}

	// Moving category must re-slot the index and drop stale cached reads.
	if _, ok := s.UpdateProduct(p.ID, model.ProductUpdate{CategoryID: &other.ID}); !ok {
		t.Fatal("expected UpdateProduct to succeed")
	}
	if got := s.GetProductsByCategory(cat.ID); len(got) != 0 {
		t.Fatalf("expected old category to be empty, got %d products", len(got))
	}
	if got := s.GetProductsByCategory(other.ID); len(got) != 1 {
		t.Fatalf("expected new category to hold the product, got %d", len(got))
	}

	if _, ok := s.UpdateProduct(p.ID, model.ProductUpdate{InStock: boolPtr(false)}); !ok {
		t.Fatal("expected UpdateProduct to succeed")
	}
	if got := s.GetProducts(); len(got) != 0 {
		t.Fatalf("expected no in-stock products, got %d", len(got))
	}
	if got := s.GetPopularProducts(); len(got) != 0 {
		t.Fatalf("expected popular listing to exclude out-of-stock product, got %d", len(got))
	}
	if got := s.GetProductsByCategory(other.ID); len(got) != 0 {
		t.Fatalf("expected category listing to exclude out-of-stock product, got %d", len(got))
	}

	if _, ok := s.UpdateProduct(p.ID, model.ProductUpdate{InStock: boolPtr(true), IsPopular: boolPtr(false)}); !ok {
		t.Fatal("expected UpdateProduct to succeed")
	}
	if got := s.GetProducts(); len(got) != 1 {
		t.Fatalf("expected product back in stock, got %d", len(got))
	}
	if got := s.GetPopularProducts(); len(got) != 0 {
		t.Fatalf("expected no popular products after flag cleared, got %d", len(got))
	}
}

func TestSearchProducts(t *testing.T) {
	s := newStore()
	s.CreateProduct(model.Product{Name: "Whole Milk", Description: "Fresh dairy", Price: 75, InStock: true})
	s.CreateProduct(model.Product{Name: "Dark Bread", Description: "Rye flour", Price: 89, InStock: true})
	s.CreateProduct(model.Product{Name: "Goat Milk", Description: "Farm", Price: 120, InStock: false})

	if got := s.SearchProducts("MILK"); len(got) != 1 || got[0].Name != "Whole Milk" {
		t.Fatalf("case-insensitive name search failed: %+v", got)
	}
	if got := s.SearchProducts("rye"); len(got) != 1 || got[0].Name != "Dark Bread" {
		t.Fatalf("description search failed: %+v", got)
	}
	if got := s.SearchProducts("nothing-matches"); len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestOrdersNewestFirst(t *testing.T) {
	s := newStore()
	s.CreateOrder(model.Order{UserID: "u1", TotalAmount: 100})
	s.CreateOrder(model.Order{UserID: "u1", TotalAmount: 200})
	s.CreateOrder(model.Order{UserID: "u2", TotalAmount: 300})

	os := s.GetUserOrders("u1")
	if len(os) != 2 {
		t.Fatalf("expected 2 orders for u1, got %d", len(os))
	}
	for i := 1; i < len(os); i++ {
		if os[i-1].CreatedAt.Before(os[i].CreatedAt) {
			t.Fatal("orders not sorted newest first")
		}
	}
	if len(s.GetAllOrders()) != 3 {
		t.Fatal("expected 3 orders total")
	}
}

func TestUpdateOrderStatus(t *testing.T) {
	s := newStore()
	o := s.CreateOrder(model.Order{UserID: "u1", TotalAmount: 100})
	if o.Status != model.OrderStatusPending {
		t.Fatalf("expected new order to be pending, got %s", o.Status)
	}

	got, ok := s.UpdateOrderStatus(o.ID, model.OrderStatusDelivering)
	if !ok || got.Status != model.OrderStatusDelivering {
		t.Fatalf("UpdateOrderStatus returned %+v, ok=%v", got, ok)
	}
	if _, ok := s.UpdateOrderStatus("missing", model.OrderStatusCompleted); ok {
		t.Fatal("expected update of missing order to fail")
	}

	if !s.DeleteOrder(o.ID) {
		t.Fatal("expected DeleteOrder to succeed")
	}
	if len(s.GetUserOrders("u1")) != 0 {
		t.Fatal("expected no orders after delete")
	}
}

func TestNotificationUnreadCounter(t *testing.T) {
	s := newStore()
	n1 := s.CreateNotification(model.Notification{UserID: "u1", Title: "A", Message: "a"})
	s.CreateNotification(model.Notification{UserID: "u1", Title: "B", Message: "b"})
	s.CreateNotification(model.Notification{UserID: "u2", Title: "C", Message: "c"})

	if n1.Type != model.NotificationTypeInfo {
		t.Fatalf("expected default type info, got %s", n1.Type)
	}
	if got := s.GetUnreadNotificationCount("u1"); got != 2 {
		t.Fatalf("expected unread count 2, got %d", got)
	}

	if _, ok := s.MarkNotificationAsRead(n1.ID); !ok {
		t.Fatal("expected MarkNotificationAsRead to succeed")
	}
	if got := s.GetUnreadNotificationCount("u1"); got != 1 {
		t.Fatalf("expected unread count 1, got %d", got)
	}

	// Marking the same notification again must not decrement further.
	if _, ok := s.MarkNotificationAsRead(n1.ID); !ok {
		t.Fatal("expected repeat MarkNotificationAsRead to succeed")
	}
	if got := s.GetUnreadNotificationCount("u1"); got != 1 {
		t.Fatalf("expected unread count still 1, got %d", got)
	}

	if !s.MarkAllNotificationsAsRead("u1") {
		t.Fatal("expected MarkAllNotificationsAsRead to report a change")
	}
	if got := s.GetUnreadNotificationCount("u1"); got != 0 {
		t.Fatalf("expected unread count 0, got %d", got)
	}
	if s.MarkAllNotificationsAsRead("u1") {
		t.Fatal("expected second MarkAllNotificationsAsRead to report no change")
	}
	if got := s.GetUnreadNotificationCount("u2"); got != 1 {
		t.Fatalf("expected u2 unread count untouched, got %d", got)
	}
}

func TestBannerActiveWindowAndPriority(t *testing.T) {
	s := newStore()
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)

	s.CreateBanner(model.Banner{Title: "Second", IsActive: true, Priority: 2})
	s.CreateBanner(model.Banner{Title: "First", IsActive: true, Priority: 1})
	s.CreateBanner(model.Banner{Title: "Disabled", IsActive: false, Priority: 0})
	s.CreateBanner(model.Banner{Title: "Not yet", IsActive: true, Priority: 0, StartDate: &future})
	s.CreateBanner(model.Banner{Title: "Expired", IsActive: true, Priority: 0, EndDate: &past})

	bs := s.GetActiveBanners()
	if len(bs) != 2 {
		t.Fatalf("expected 2 active banners, got %d", len(bs))
	}
	if bs[0].Title != "First" || bs[1].Title != "Second" {
		t.Fatalf("banners not sorted by priority: %s, %s", bs[0].Title, bs[1].Title)
	}

	if len(s.GetAllBanners()) != 5 {
		t.Fatal("expected all 5 banners in admin listing")
	}
}

func TestUpdateBannerInvalidatesActiveListing(t *testing.T) {
	s := newStore()
	b := s.CreateBanner(model.Banner{Title: "Promo", IsActive: true})

	if got := s.GetActiveBanners(); len(got) != 1 {
		t.Fatalf("expected 1 active banner, got %d", len(got))
	}
	if _, ok := s.UpdateBanner(b.ID, model.BannerUpdate{IsActive: boolPtr(false)}); !ok {
		t.Fatal("expected UpdateBanner to succeed")
	}
	if got := s.GetActiveBanners(); len(got) != 0 {
		t.Fatalf("expected cached active listing to be dropped, got %d banners", len(got))
	}

	if !s.DeleteBanner(b.ID) {
		t.Fatal("expected DeleteBanner to succeed")
	}
	if s.DeleteBanner(b.ID) {
		t.Fatal("expected second DeleteBanner to fail")
	}
}

func TestCreateCategoryInvalidatesListing(t *testing.T) {
	s := newStore()
	s.CreateCategory(model.Category{Name: "Dairy", Slug: "dairy", SortOrder: 2})

	if got := s.GetCategories(); len(got) != 1 {
		t.Fatalf("expected 1 category, got %d", len(got))
	}
	s.CreateCategory(model.Category{Name: "Bakery", Slug: "bakery", SortOrder: 1})
	got := s.GetCategories()
	if len(got) != 2 {
		t.Fatalf("expected cached listing to be dropped, got %d categories", len(got))
	}
	if got[0].Name != "Bakery" {
		t.Fatalf("expected Bakery first by sort order, got %s", got[0].Name)
	}
}

func codeHash(t *testing.T, code string) []byte {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt error: %v", err)
	}
	return h
}

func TestConsumeVerificationCode(t *testing.T) {
	s := newStore()
	s.CreateVerificationCode("+79990001122", codeHash(t, "123456"), time.Minute)

	if _, ok := s.ConsumeVerificationCode("+79990001122", "654321"); ok {
		t.Fatal("expected wrong code to fail")
	}
	if _, ok := s.ConsumeVerificationCode("+79990001122", "123456"); !ok {
		t.Fatal("expected correct code to succeed")
	}
	// A code is single-use.
	if _, ok := s.ConsumeVerificationCode("+79990001122", "123456"); ok {
		t.Fatal("expected used code to be rejected")
	}
}

func TestConsumeVerificationCodeAttemptLimit(t *testing.T) {
	s := newStore()
	s.CreateVerificationCode("+79990001122", codeHash(t, "123456"), time.Minute)

	for i := 0; i < maxCodeAttempts; i++ {
		if _, ok := s.ConsumeVerificationCode("+79990001122", "000000"); ok {
			t.Fatal("expected wrong code to fail")
		}
	}
	// Attempts are exhausted; even the right code no longer works.
	if _, ok := s.ConsumeVerificationCode("+79990001122", "123456"); ok {
		t.Fatal("expected code to be locked out after max attempts")
	}
}

func TestConsumeVerificationCodeExpired(t *testing.T) {
	s := newStore()
	s.CreateVerificationCode("+79990001122", codeHash(t, "123456"), -time.Second)

	if _, ok := s.ConsumeVerificationCode("+79990001122", "123456"); ok {
		t.Fatal("expected expired code to be rejected")
	}
}

func TestSessionLifecycle(t *testing.T) {
	s := newStore()
	sess := s.CreateSession("u1", "digest-1", time.Now().Add(time.Hour))

	got, ok := s.GetSession("digest-1")
	if !ok || got.ID != sess.ID || got.UserID != "u1" {
		t.Fatalf("GetSession returned %+v, ok=%v", got, ok)
	}

	if !s.InvalidateSession("digest-1") {
		t.Fatal("expected InvalidateSession to succeed")
	}
	if _, ok := s.GetSession("digest-1"); ok {
		t.Fatal("expected invalidated session to be rejected")
	}

	s.CreateSession("u1", "digest-2", time.Now().Add(-time.Second))
	if _, ok := s.GetSession("digest-2"); ok {
		t.Fatal("expected expired session to be rejected")
	}
}

func TestCleanupExpiredAuth(t *testing.T) {
	s := newStore()
	s.CreateVerificationCode("+79990001122", codeHash(t, "123456"), -time.Second)
	s.CreateVerificationCode("+79990001122", codeHash(t, "654321"), time.Hour)
	s.CreateSession("u1", "live", time.Now().Add(time.Hour))
	s.CreateSession("u1", "dead", time.Now().Add(-time.Second))
	s.CreateSession("u1", "loggedout", time.Now().Add(time.Hour))
	s.InvalidateSession("loggedout")

	codes, sessions := s.CleanupExpiredAuth()
	if codes != 1 {
		t.Fatalf("expected 1 code removed, got %d", codes)
	}
	if sessions != 2 {
		t.Fatalf("expected 2 sessions removed, got %d", sessions)
	}

	if _, ok := s.GetSession("live"); !ok {
		t.Fatal("expected live session to survive cleanup")
	}
	if _, ok := s.ConsumeVerificationCode("+79990001122", "654321"); !ok {
		t.Fatal("expected fresh code to survive cleanup")
	}
}
