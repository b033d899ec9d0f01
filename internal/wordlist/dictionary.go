package wordlist

import (
	"errors"
	"fmt"
	"sort"
)

var ErrWordNotTracked = errors.New("word not found in the dictionary")

type Outcome int

const (
	OutcomeUpdated Outcome = iota + 1
	OutcomeAlreadyCurrent
)

func (o Outcome) String() string {
	switch o {
	case OutcomeUpdated:
		return "updated"
	case OutcomeAlreadyCurrent:
		return "already current"
	}
	return "unknown"
}

// Dictionary maps a lowercase word to its record.
type Dictionary map[string]Record

// Apply marks word as answered on date.
// Only the record for word is touched, and it is left alone when it is already current.
func (d Dictionary) Apply(word string, date Date) (Outcome, error) {
	record, ok := d[word]
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrWordNotTracked, word)
	}
	record.flat = false

	if !record.NeedsArchive(date) {
		return OutcomeAlreadyCurrent, nil
	}

	archivedOn := date
	record.Category = CategoryAnswered
	record.Date = &archivedOn
	d[word] = record
	return OutcomeUpdated, nil
}

// Normalize converts every flat record into the structured form and returns the number converted.
func (d Dictionary) Normalize() int {
	converted := 0
	for word, record := range d {
		if !record.flat {
			continue
		}
		record.flat = false
		d[word] = record
		converted++
	}
	return converted
}

// FlatWords returns the words still stored in the legacy form, sorted.
func (d Dictionary) FlatWords() []string {
	words := make([]string, 0)
	for word, record := range d {
		if record.flat {
			words = append(words, word)
		}
	}
	sort.Strings(words)
	return words
}

func (d Dictionary) Words() []string {
	words := make([]string, 0, len(d))
	for word := range d {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}
