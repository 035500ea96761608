package models

import "time"

// OrderItem is a cart line frozen at checkout. Later catalog price
// changes must not alter it.
type OrderItem struct {
	BookID     string  `json:"bookId" bson:"bookId"`
	Title      string  `json:"title" bson:"title"`
	Price      float64 `json:"price" bson:"price"`
	Quantity   int     `json:"quantity" bson:"quantity"`
	CoverImage string  `json:"coverImage" bson:"coverImage"`
}

type ShippingAddress struct {
	Street  string `json:"street" bson:"street"`
	City    string `json:"city" bson:"city"`
	State   string `json:"state" bson:"state"`
	ZipCode string `json:"zipCode" bson:"zipCode"`
}

// Order is a finalized order. All monetary fields are computed once
// at creation and never recomputed; only Status and UpdatedAt change
// afterwards.
type Order struct {
	OrderID         string          `json:"orderId" bson:"orderId"`
	UserID          string          `json:"userId" bson:"userId"`
	CustomerName    string          `json:"customerName" bson:"customerName"`
	CustomerEmail   string          `json:"customerEmail" bson:"customerEmail"`
	Items           []OrderItem     `json:"items" bson:"items"`
	ShippingAddress ShippingAddress `json:"shippingAddress" bson:"shippingAddress"`
	ShippingMethod  string          `json:"shippingMethod" bson:"shippingMethod"`
	Subtotal        float64         `json:"subtotal" bson:"subtotal"`
	Tax             float64         `json:"tax" bson:"tax"`
	ShippingCost    float64         `json:"shippingCost" bson:"shippingCost"`
	Total           float64         `json:"total" bson:"total"`
	Status          string          `json:"status" bson:"status"`
	CreatedAt       time.Time       `json:"createdAt" bson:"createdAt"`
	UpdatedAt       time.Time       `json:"updatedAt" bson:"updatedAt"`
}
