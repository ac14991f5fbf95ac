package dto

import (
	"github.com/hongminglow/campus-library/internal/catalog"
	"github.com/hongminglow/campus-library/internal/models"
)

// BookRequest carries the editable metadata of a catalog record.
type BookRequest struct {
	ID          string `json:"id,omitempty"`
	Title       string `json:"title"`
	Author      string `json:"author"`
	ISBN        string `json:"isbn"`
	Category    string `json:"category"`
	PublishYear int    `json:"publishYear"`
	Pages       int    `json:"pages"`
	Description string `json:"description"`
	Type        string `json:"type"`
	Location    string `json:"location"`
	Collection  string `json:"collection"`
}

// ToBook converts the request into a book record.
func (r BookRequest) ToBook() models.Book {
	return models.Book{
		ID:          r.ID,
		Title:       r.Title,
		Author:      r.Author,
		ISBN:        r.ISBN,
		Category:    r.Category,
		PublishYear: r.PublishYear,
		Pages:       r.Pages,
		Description: r.Description,
		Type:        models.BookType(r.Type),
		Location:    r.Location,
		Collection:  models.Collection(r.Collection),
	}
}

// SearchResponse splits catalog matches the way the catalog page shows them.
type SearchResponse struct {
	Total    int           `json:"total"`
	Books    []models.Book `json:"books"`
	Hardcopy []models.Book `json:"hardcopy"`
	Ebook    []models.Book `json:"ebook"`
}

// NewSearchResponse groups books by type.
func NewSearchResponse(books []models.Book) SearchResponse {
	hard, ebook := catalog.ByType(books)
	return SearchResponse{Total: len(books), Books: books, Hardcopy: hard, Ebook: ebook}
}
