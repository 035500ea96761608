package models

import "time"

// CartItem represents a single line in the user's cart, one per book.
// Title, price and cover are snapshotted from the catalog when the
// line is first inserted.
type CartItem struct {
	UserID     string    `json:"userId" bson:"userId"`
	BookID     string    `json:"bookId" bson:"bookId"`
	Title      string    `json:"title" bson:"title"`
	Price      float64   `json:"price" bson:"price"`
	CoverImage string    `json:"coverImage" bson:"coverImage"`
	Quantity   int       `json:"quantity" bson:"quantity"`
	AddedAt    time.Time `json:"addedAt" bson:"addedAt"`
}

// CartView is what GET /api/cart returns: the lines plus totals
// derived on every read.
type CartView struct {
	Items      []CartItem `json:"items"`
	TotalItems int        `json:"totalItems"`
	Subtotal   float64    `json:"subtotal"`
}
