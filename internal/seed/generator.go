// Package seed produces the mock catalog, users, loans and announcements the
// library starts with. Book generation draws from an injected *rand.Rand so a
// given seed always yields the same catalog.
package seed

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/hongminglow/campus-library/internal/models"
)

const yearSpan = 30

// Generator builds randomised catalog records.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// NewGenerator creates a generator drawing from rng, with dates relative to now.
func NewGenerator(rng *rand.Rand, now time.Time) *Generator {
	return &Generator{rng: rng, now: now}
}

// Books generates the full catalog: 40 academic titles, 15 newspapers,
// 25 novels and 20 question papers, numbered book-1 to book-100.
func (g *Generator) Books() []models.Book {
	plan := []struct {
		collection models.Collection
		count      int
	}{
		{models.CollectionAcademic, 40},
		{models.CollectionNewspapers, 15},
		{models.CollectionNovels, 25},
		{models.CollectionPapers, 20},
	}

	var books []models.Book
	for _, p := range plan {
		for i := 0; i < p.count; i++ {
			books = append(books, g.book(len(books)+1, p.collection))
		}
	}
	return books
}

func (g *Generator) book(n int, c models.Collection) models.Book {
	category := g.pick(categories[c])
	b := models.Book{
		ID:          fmt.Sprintf("book-%d", n),
		Author:      g.pick(authors[c]),
		ISBN:        fmt.Sprintf("978%d", g.rng.Int63n(10_000_000_000)),
		Category:    category,
		PublishYear: g.now.Year() - g.rng.Intn(yearSpan),
		Pages:       g.rng.Intn(500) + 100,
		Available:   true,
		Collection:  c,
		DateAdded:   g.now.AddDate(0, 0, -g.rng.Intn(365)),
		Popularity:  g.rng.Intn(100) + 1,
	}

	switch c {
	case models.CollectionAcademic:
		b.Title = g.pick(academicPrefixes) + " " + g.pick(academicTopics)
		b.Description = fmt.Sprintf("This comprehensive textbook covers the fundamental concepts of %s with a focus on %s. Ideal for undergraduate engineering students.",
			category, strings.ToLower(g.pick(academicTopics)))
		b.Type = g.bookType(0.4)
		b.Location = g.shelf(b.Type, fmt.Sprintf("%s Section, Shelf %c%d",
			strings.ToUpper(category[:1])+category[1:], 'A'+rune(g.rng.Intn(8)), g.rng.Intn(5)+1))
	case models.CollectionNewspapers:
		b.Title = g.pick(newspaperTitles)
		issued := time.Date(b.PublishYear, time.Month(g.rng.Intn(12)+1), g.rng.Intn(28)+1, 0, 0, 0, 0, time.UTC)
		b.Description = fmt.Sprintf("%s issue dated %s. Covers latest news in engineering, technology, campus events, and industry developments.",
			b.Title, issued.Format("January 2, 2006"))
		b.Type = g.bookType(0.7)
		b.Location = g.shelf(b.Type, "Newspaper Section, Current Periodicals")
	case models.CollectionNovels:
		b.Title = g.pick(novelTitles)
		b.Description = fmt.Sprintf("A captivating %s novel that takes readers on a journey through the world of innovation, discovery, and human connection.", category)
		b.Type = g.bookType(0.5)
		b.Location = g.shelf(b.Type, "Fiction Section, Leisure Reading Area")
	case models.CollectionPapers:
		b.Title = fmt.Sprintf("%s - %s (%d)", g.pick(examTypes), g.pick(paperSubjects), b.PublishYear)
		b.Description = fmt.Sprintf("Previous year question paper for %s from the %d examination. Includes complete solutions and marking scheme.",
			g.pick(paperSubjects), b.PublishYear)
		b.Type = g.bookType(0.8)
		b.Location = g.shelf(b.Type, "Question Papers Archive, Reference Section")
	}
	return b
}

func (g *Generator) pick(options []string) string {
	return options[g.rng.Intn(len(options))]
}

// bookType returns a hardcopy when the draw exceeds threshold.
func (g *Generator) bookType(threshold float64) models.BookType {
	if g.rng.Float64() > threshold {
		return models.BookTypeHardcopy
	}
	return models.BookTypeEbook
}

func (g *Generator) shelf(t models.BookType, physical string) string {
	if t == models.BookTypeHardcopy {
		return physical
	}
	return "Digital Library"
}
