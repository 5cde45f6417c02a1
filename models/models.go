package models

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// --- JWT & Auth ---

type JwtClaims struct {
	UserID string `json:"userId"`
	Role   string `json:"role"`
	jwt.RegisteredClaims
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest creates a customer or shopkeeper account. Shopkeeper
// registrations also create the shop row, so the shop fields are required
// for that role.
type RegisterRequest struct {
	Name      string   `json:"name"`
	Email     string   `json:"email"`
	Password  string   `json:"password"`
	Role      string   `json:"role"`
	ShopName  *string  `json:"shop_name,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// --- Core Models ---

// User represents an account in the system (customer or shopkeeper).
type User struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Shop represents a single neighborhood shop. Its ID equals the owning
// shopkeeper's user ID.
type Shop struct {
	ID             string     `json:"id"`
	Name           string     `json:"name"`
	Latitude       float64    `json:"latitude"`
	Longitude      float64    `json:"longitude"`
	IsOpen         bool       `json:"is_open"`
	Notice         *string    `json:"notice,omitempty"`
	Rating         float64    `json:"rating"`
	AiForecast     *string    `json:"ai_forecast,omitempty"`
	LastForecastAt *time.Time `json:"last_forecast_at,omitempty"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`

	// DistanceKm is filled in when the caller provides a location.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// Product is an item in a shop's inventory.
type Product struct {
	ID         string     `json:"id"`
	ShopID     string     `json:"shop_id"`
	Name       string     `json:"name"`
	Category   *string    `json:"category,omitempty"`
	Price      float64    `json:"price"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	OutOfStock bool       `json:"out_of_stock"`
	Expired    bool       `json:"expired"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Sale is one logged transaction. The item is the free-text label the
// shopkeeper picked, not a normalized product id.
type Sale struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	Item      string    `json:"item"`
	Quantity  int       `json:"quantity"`
	Price     float64   `json:"price"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"created_at"`
}

// Review is a customer rating for a shop.
type Review struct {
	ID        string    `json:"id"`
	ShopID    string    `json:"shop_id"`
	UserID    string    `json:"user_id"`
	UserName  string    `json:"user_name"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

// --- API Request/Response Structs ---

// UpdateShopRequest updates shop settings; nil fields are left unchanged.
type UpdateShopRequest struct {
	Name      *string  `json:"name,omitempty"`
	IsOpen    *bool    `json:"is_open,omitempty"`
	Notice    *string  `json:"notice,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty"`
	Longitude *float64 `json:"longitude,omitempty"`
}

// CreateProductRequest defines the body for adding an inventory item.
type CreateProductRequest struct {
	Name       string     `json:"name"`
	Category   *string    `json:"category,omitempty"`
	Price      float64    `json:"price"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
}

// UpdateProductRequest updates an inventory item; nil fields are left unchanged.
type UpdateProductRequest struct {
	Name       *string    `json:"name,omitempty"`
	Category   *string    `json:"category,omitempty"`
	Price      *float64   `json:"price,omitempty"`
	ExpiryDate *time.Time `json:"expiry_date,omitempty"`
	OutOfStock *bool      `json:"out_of_stock,omitempty"`
}

// CreateSaleRequest defines the body for logging a sale.
type CreateSaleRequest struct {
	Item     string  `json:"item"`
	Quantity int     `json:"quantity"`
	Price    float64 `json:"price"`
}

// CreateReviewRequest defines the body for posting a shop review.
type CreateReviewRequest struct {
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

// ShopDashboardSummary is the shopkeeper dashboard payload.
type ShopDashboardSummary struct {
	TodayRevenue      float64    `json:"today_revenue"`
	TodayTransactions int        `json:"today_transactions"`
	ItemsSoldToday    int        `json:"items_sold_today"`
	AiForecast        *string    `json:"ai_forecast,omitempty"`
	LastForecastAt    *time.Time `json:"last_forecast_at,omitempty"`
}

// --- Paginated Responses ---

// Pagination details for paginated responses.
type Pagination struct {
	TotalItems  int `json:"total_items"`
	TotalPages  int `json:"total_pages"`
	CurrentPage int `json:"current_page"`
	PageSize    int `json:"page_size"`
}

// PaginatedSalesResponse for the sales history listing.
type PaginatedSalesResponse struct {
	Data       []Sale     `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// PaginatedReviewsResponse for shop reviews.
type PaginatedReviewsResponse struct {
	Data       []Review   `json:"data"`
	Pagination Pagination `json:"pagination"`
}
