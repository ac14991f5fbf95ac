package catalog

import (
	"slices"
	"time"

	"github.com/hongminglow/campus-library/internal/models"
)

// Facets lists the distinct filter values present in a catalog.
type Facets struct {
	Categories []string `json:"categories"`
	Authors    []string `json:"authors"`
	Years      []int    `json:"years"`
}

// BuildFacets collects sorted unique categories and authors, and years newest first.
func BuildFacets(books []models.Book) Facets {
	cats := map[string]struct{}{}
	authors := map[string]struct{}{}
	years := map[int]struct{}{}
	for _, b := range books {
		cats[b.Category] = struct{}{}
		authors[b.Author] = struct{}{}
		years[b.PublishYear] = struct{}{}
	}

	f := Facets{
		Categories: sortedKeys(cats),
		Authors:    sortedKeys(authors),
		Years:      make([]int, 0, len(years)),
	}
	for y := range years {
		f.Years = append(f.Years, y)
	}
	slices.SortFunc(f.Years, func(a, b int) int { return b - a })
	return f
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Popular returns the n books with the highest popularity score.
func Popular(books []models.Book, n int) []models.Book {
	out := slices.Clone(books)
	slices.SortStableFunc(out, func(a, b models.Book) int { return b.Popularity - a.Popularity })
	return head(out, n)
}

// RecentlyAdded returns up to n books added after since, newest first.
func RecentlyAdded(books []models.Book, since time.Time, n int) []models.Book {
	out := make([]models.Book, 0)
	for _, b := range books {
		if b.DateAdded.After(since) {
			out = append(out, b)
		}
	}
	slices.SortStableFunc(out, func(a, b models.Book) int { return b.DateAdded.Compare(a.DateAdded) })
	return head(out, n)
}

// Featured picks the showcase books by catalog position.
func Featured(books []models.Book) []models.Book {
	out := make([]models.Book, 0, 4)
	for _, i := range []int{0, 2, 4, 19} {
		if i < len(books) {
			out = append(out, books[i])
		}
	}
	return out
}

// InCollection returns the books of one collection in catalog order.
func InCollection(books []models.Book, c models.Collection) []models.Book {
	out := make([]models.Book, 0)
	for _, b := range books {
		if b.Collection == c {
			out = append(out, b)
		}
	}
	return out
}

func head(books []models.Book, n int) []models.Book {
	if n >= 0 && len(books) > n {
		return books[:n]
	}
	return books
}
