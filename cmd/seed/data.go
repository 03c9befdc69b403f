package main

import (
	"time"

	"cloud.google.com/go/civil"
)

type seedAuthor struct {
	FirstName, LastName string
	Born, Died          *civil.Date
}

type seedBook struct {
	Title   string
	Author  int // index into authors
	ISBN    string
	Summary string
	Genres  []string
	Copies  []seedCopy
}

type seedCopy struct {
	Imprint string
	Status  string
	// DueIn is the offset from today for copies on loan.
	DueIn int
	// Borrowed marks copies lent to the demo reader.
	Borrowed bool
}

type dataset struct {
	Genres  []string
	Authors []seedAuthor
	Books   []seedBook
}

func date(y int, m time.Month, d int) *civil.Date {
	return &civil.Date{Year: y, Month: m, Day: d}
}

func demoData() dataset {
	return dataset{
		Genres: []string{"Fantasy", "Science Fiction", "French Poetry", "Mystery"},
		Authors: []seedAuthor{
			{FirstName: "Patrick", LastName: "Rothfuss", Born: date(1973, time.June, 6)},
			{FirstName: "Ben", LastName: "Bova", Born: date(1932, time.November, 8), Died: date(2020, time.November, 29)},
			{FirstName: "Isaac", LastName: "Asimov", Born: date(1920, time.January, 2), Died: date(1992, time.April, 6)},
			{FirstName: "Bob", LastName: "Billings"},
		},
		Books: []seedBook{
			{
				Title: "The Name of the Wind", Author: 0, ISBN: "9780756404741", Genres: []string{"Fantasy"},
				Summary: "The tale of the magically gifted young man who grows to be the most notorious wizard his world has ever seen.",
				Copies: []seedCopy{
					{Imprint: "London Gollancz, 2014.", Status: "a"},
					{Imprint: "Gollancz, 2011.", Status: "o", DueIn: -2, Borrowed: true},
				},
			},
			{
				Title: "The Wise Man's Fear", Author: 0, ISBN: "9780756407919", Genres: []string{"Fantasy"},
				Copies: []seedCopy{
					{Imprint: "Gollancz, 2015.", Status: "o", DueIn: 5, Borrowed: true},
					{Imprint: "New York Tom Doherty Associates, 2016.", Status: "m"},
				},
			},
			{
				Title: "Apes and Angels", Author: 1, ISBN: "9780765379528", Genres: []string{"Science Fiction"},
				Copies: []seedCopy{
					{Imprint: "New York Tom Doherty Associates, 2016.", Status: "o", DueIn: 12},
					{Imprint: "New York Tom Doherty Associates, 2016.", Status: "r"},
				},
			},
			{
				Title: "Foundation", Author: 2, ISBN: "9780553293357", Genres: []string{"Science Fiction"},
				Copies: []seedCopy{{Imprint: "Bantam Spectra, 1991.", Status: "a"}},
			},
			{
				Title: "Test Book 1", Author: 3, ISBN: "0441013597", Genres: []string{"French Poetry", "Mystery"},
			},
		},
	}
}
