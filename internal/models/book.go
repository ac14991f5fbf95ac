package models

import "time"

type BookType string

const (
	BookTypeHardcopy BookType = "hardcopy"
	BookTypeEbook    BookType = "ebook"
)

// Collection groups the catalog the way the reading rooms are organised.
type Collection string

const (
	CollectionAcademic   Collection = "academic"
	CollectionNewspapers Collection = "newspapers"
	CollectionNovels     Collection = "novels"
	CollectionPapers     Collection = "papers"
)

var Collections = []Collection{
	CollectionAcademic,
	CollectionNewspapers,
	CollectionNovels,
	CollectionPapers,
}

// IsValidCollection reports whether name is a known collection.
func IsValidCollection(name string) bool {
	for _, c := range Collections {
		if string(c) == name {
			return true
		}
	}
	return false
}

// IsValidBookType reports whether t is hardcopy or ebook.
func IsValidBookType(t string) bool {
	return t == string(BookTypeHardcopy) || t == string(BookTypeEbook)
}

// Book is a catalog record. Available is owned by the loan ledger and
// flips only on issue and return.
type Book struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Author      string     `json:"author"`
	ISBN        string     `json:"isbn"`
	Category    string     `json:"category"`
	PublishYear int        `json:"publishYear"`
	Pages       int        `json:"pages"`
	Description string     `json:"description"`
	Available   bool       `json:"available"`
	Type        BookType   `json:"type"`
	Location    string     `json:"location"`
	Collection  Collection `json:"collection"`
	DateAdded   time.Time  `json:"dateAdded"`
	Popularity  int        `json:"popularity"`
}

const BookEntity = "book"
