// Package catalog filters, sorts and summarises book snapshots taken from the
// ledger. Every function is pure and never mutates its input.
package catalog

import (
	"slices"
	"strconv"
	"strings"

	"github.com/hongminglow/campus-library/internal/models"
)

const (
	AvailabilityAll         = "all"
	AvailabilityAvailable   = "available"
	AvailabilityUnavailable = "unavailable"

	TypeAll = "all"

	SortTitle  = "title"
	SortAuthor = "author"
	SortYear   = "year"
)

// Query selects books the way the catalog page does. Empty multi-select
// lists match everything.
type Query struct {
	Text         string
	Categories   []string
	Authors      []string
	Years        []int
	Availability string
	Type         string
	Collection   string
	Sort         string
}

// ParseYears converts year strings, skipping anything that is not a number.
func ParseYears(raw []string) []int {
	years := make([]int, 0, len(raw))
	for _, r := range raw {
		if y, err := strconv.Atoi(strings.TrimSpace(r)); err == nil {
			years = append(years, y)
		}
	}
	return years
}

// Search returns the books matching q in the requested order.
func Search(books []models.Book, q Query) []models.Book {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	out := make([]models.Book, 0, len(books))
	for _, b := range books {
		if matches(b, q, text) {
			out = append(out, b)
		}
	}
	sortBooks(out, q.Sort)
	return out
}

func matches(b models.Book, q Query, text string) bool {
	if text != "" &&
		!strings.Contains(strings.ToLower(b.Title), text) &&
		!strings.Contains(strings.ToLower(b.Author), text) &&
		!strings.Contains(b.ISBN, strings.TrimSpace(q.Text)) {
		return false
	}
	if len(q.Categories) > 0 && !slices.Contains(q.Categories, b.Category) {
		return false
	}
	if len(q.Authors) > 0 && !slices.Contains(q.Authors, b.Author) {
		return false
	}
	if len(q.Years) > 0 && !slices.Contains(q.Years, b.PublishYear) {
		return false
	}
	switch q.Availability {
	case AvailabilityAvailable:
		if !b.Available {
			return false
		}
	case AvailabilityUnavailable:
		if b.Available {
			return false
		}
	}
	if q.Type != "" && q.Type != TypeAll && string(b.Type) != q.Type {
		return false
	}
	if q.Collection != "" && string(b.Collection) != q.Collection {
		return false
	}
	return true
}

func sortBooks(books []models.Book, by string) {
	switch by {
	case SortAuthor:
		slices.SortStableFunc(books, func(a, b models.Book) int {
			return strings.Compare(strings.ToLower(a.Author), strings.ToLower(b.Author))
		})
	case SortYear:
		slices.SortStableFunc(books, func(a, b models.Book) int {
			return b.PublishYear - a.PublishYear
		})
	default:
		slices.SortStableFunc(books, func(a, b models.Book) int {
			return strings.Compare(strings.ToLower(a.Title), strings.ToLower(b.Title))
		})
	}
}

// ByType splits books into hardcopies and ebooks, preserving order.
func ByType(books []models.Book) (hardcopy, ebook []models.Book) {
	hardcopy = make([]models.Book, 0)
	ebook = make([]models.Book, 0)
	for _, b := range books {
		if b.Type == models.BookTypeEbook {
			ebook = append(ebook, b)
		} else {
			hardcopy = append(hardcopy, b)
		}
	}
	return hardcopy, ebook
}
