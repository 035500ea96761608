package models

// Book is read-only catalog data; records never change after seeding.
type Book struct {
	BookID          string  `json:"bookid" bson:"bookid"`
	Title           string  `json:"title" bson:"title"`
	Author          string  `json:"author" bson:"author"`
	Price           float64 `json:"price" bson:"price"`
	CoverImage      string  `json:"coverImage" bson:"coverImage"`
	Description     string  `json:"description" bson:"description"`
	Category        string  `json:"category" bson:"category"`
	Featured        bool    `json:"featured,omitempty" bson:"featured,omitempty"`
	PublicationDate string  `json:"publicationDate" bson:"publicationDate"`
	Pages           int     `json:"pages" bson:"pages"`
	Rating          float64 `json:"rating" bson:"rating"`
}
