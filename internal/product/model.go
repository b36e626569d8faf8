package product

import "time"

var Categories = []string{"men", "women", "kids", "accessories"}

var Sizes = []string{"XS", "S", "M", "L", "XL", "XXL"}

type Product struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	Sizes       []string  `json:"sizes"`
	Colors      []string  `json:"colors"`
	Stock       int       `json:"stock"`
	Featured    bool      `json:"featured"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ListFilter holds the optional equality filters of the catalog listing.
type ListFilter struct {
	Category string
	Featured *bool
}

type ListOptions struct {
	Filter ListFilter
	Page   int
	Limit  int
}

type ListResult struct {
	Items []Product
	Page  int
	Pages int
	Total int
}

type NewProduct struct {
	Name        string   `json:"name"`
	Description string   `json:"description"`
	Price       float64  `json:"price"`
	Category    string   `json:"category"`
	Images      []string `json:"images"`
	Sizes       []string `json:"sizes"`
	Colors      []string `json:"colors"`
	Stock       int      `json:"stock"`
	Featured    bool     `json:"featured"`
}

// UpdateProduct carries merge-patch semantics: nil fields are left
// untouched by the update.
type UpdateProduct struct {
	Name        *string   `json:"name"`
	Description *string   `json:"description"`
	Price       *float64  `json:"price"`
	Category    *string   `json:"category"`
	Images      *[]string `json:"images"`
	Sizes       *[]string `json:"sizes"`
	Colors      *[]string `json:"colors"`
	Stock       *int      `json:"stock"`
	Featured    *bool     `json:"featured"`
}
