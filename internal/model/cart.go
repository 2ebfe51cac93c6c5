package model

type CartItem struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	ProductID string `json:"productId"`
	Quantity  int    `json:"quantity"`
}

// CartEntry is a cart row joined to its product for display.
type CartEntry struct {
	CartItem
	Product Product `json:"product"`
}
