package model

type Category struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Slug      string `json:"slug"`
	ImageURL  string `json:"imageUrl,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       int    `json:"price"`
	Weight      string `json:"weight,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	CategoryID  string `json:"categoryId,omitempty"`
	InStock     bool   `json:"inStock"`
	IsPopular   bool   `json:"isPopular"`
}

// ProductUpdate carries a partial product update; nil fields are left unchanged.
type ProductUpdate struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Price       *int    `json:"price"`
	Weight      *string `json:"weight"`
	ImageURL    *string `json:"imageUrl"`
	CategoryID  *string `json:"categoryId"`
	InStock     *bool   `json:"inStock"`
	IsPopular   *bool   `json:"isPopular"`
}
