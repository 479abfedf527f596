package models

// Order is the canonical shape every order read path produces,
// regardless of how the stored record laid its fields out. Every field
// carries a real value or an explicit default, so views never
// null-check.
type Order struct {
	ID               string          `json:"id"`
	UserID           string          `json:"userId"`
	UserEmail        string          `json:"userEmail"`
	UserName         string          `json:"userName"`
	FrameID          string          `json:"frameId"`
	FrameName        string          `json:"frameName"`
	FrameImage       string          `json:"frameImage"`
	FrameOrientation string          `json:"frameOrientation"`
	FramePrice       float64         `json:"framePrice"`
	SizeID           string          `json:"sizeId"`
	SizeName         string          `json:"sizeName"`
	SizeMultiplier   float64         `json:"sizeMultiplier"`
	TotalPrice       float64         `json:"totalPrice"`
	FinalPrice       float64         `json:"finalPrice"`
	ImagePosition    ImagePosition   `json:"imagePosition"`
	ImageZoom        float64         `json:"imageZoom"` // percent
	ImageURL         string          `json:"imageUrl"`
	ShippingDetails  ShippingDetails `json:"shippingDetails"`
	PromoCode        string          `json:"promoCode"`
	DiscountAmount   float64         `json:"discountAmount"`
	Status           string          `json:"status"`
	CreatedAt        string          `json:"createdAt"` // ISO-8601
	UpdatedAt        string          `json:"updatedAt"` // ISO-8601
}

// ImagePosition is the 2D offset of the uploaded image on the frame.
type ImagePosition struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

type ShippingDetails struct {
	FullName   string `json:"fullName"`
	Email      string `json:"email"`
	Phone      string `json:"phone"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// Order statuses
const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
	OrderStatusCancelled  = "cancelled"
)

// ValidStatus reports whether s is in the closed order status set.
func ValidStatus(s string) bool {
	switch s {
	case OrderStatusPending, OrderStatusProcessing, OrderStatusShipped,
		OrderStatusDelivered, OrderStatusCancelled:
		return true
	}
	return false
}

type Category struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
}

type Product struct {
	ID          string        `json:"id"`
	Name        string        `json:"name"`
	Description string        `json:"description"`
	Price       float64       `json:"price"`
	Image       string        `json:"image"`
	Category    string        `json:"category"` // free-text reference, not a foreign key
	Sizes       []ProductSize `json:"sizes"`
	CreatedAt   string        `json:"createdAt"`
	UpdatedAt   string        `json:"updatedAt"`
}

// ProductSize is one per-size price entry, e.g. {"8x10 in", 24.99}.
type ProductSize struct {
	Dimensions string  `json:"dimensions"`
	Price      float64 `json:"price"`
}

type Frame struct {
	ID             string      `json:"id"`
	Name           string      `json:"name"`
	Image          string      `json:"image"`
	Price          float64     `json:"price"`
	Description    string      `json:"description"`
	ImagePublicID  string      `json:"imagePublicId"`
	AvailableSizes []FrameSize `json:"availableSizes"`
	CreatedAt      string      `json:"createdAt"`
	UpdatedAt      string      `json:"updatedAt"`
}

type FrameSize struct {
	ID          string  `json:"id"`
	Dimensions  string  `json:"dimensions"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Role      string `json:"role"`
	City      string `json:"city"`
	UpdatedAt string `json:"updatedAt"`
}

const RoleAdmin = "admin"
