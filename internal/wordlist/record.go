package wordlist

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// Category is the one-character status code stored for each word.
type Category string

const (
	// CategoryAnswered marks a word that has already appeared as a puzzle answer.
	CategoryAnswered   Category = "A"
	CategoryOriginal   Category = "O"
	CategoryExtended   Category = "X"
	CategoryZeroChance Category = "Z"
)

func (c Category) IsAnswered() bool {
	return c == CategoryAnswered
}

var (
	ErrCorruptDictionary = errors.New("corrupt dictionary")
	ErrUnsupportedRecord = fmt.Errorf("%w: unsupported record type", ErrCorruptDictionary)
)

const DateLayout = "2006-01-02"

// Date is a calendar day serialized as YYYY-MM-DD.
type Date struct {
	time.Time
}

// NewDate drops the clock part of t, keeping the calendar day of t's location.
func NewDate(t time.Time) Date {
	year, month, day := t.Date()
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func ParseDate(value string) (Date, error) {
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("time.Parse(%s) > %w", value, err)
	}
	return Date{Time: t}, nil
}

func (d Date) String() string {
	return d.Format(DateLayout)
}

func (d Date) SameDay(other Date) bool {
	return d.String() == other.String()
}

func (d Date) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Date) UnmarshalJSON(data []byte) error {
	var value string
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("json.Unmarshal > %w", err)
	}
	parsed, err := ParseDate(value)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func (d Date) MarshalYAML() (interface{}, error) {
	return d.String(), nil
}

// Record is the value stored for each word.
// Legacy files store a bare category string; those records are decoded with flat set
// and are always encoded back in the structured form.
type Record struct {
	Category Category `json:"category" yaml:"category"`
	Date     *Date    `json:"date" yaml:"date"`

	flat bool
}

type structuredRecord struct {
	Category Category `json:"category"`
	Date     *Date    `json:"date"`
}

// IsFlat reports whether the record was read from the legacy bare-string form.
func (r Record) IsFlat() bool {
	return r.flat
}

// NeedsArchive reports whether marking the word as answered on date changes the record.
func (r Record) NeedsArchive(date Date) bool {
	if !r.Category.IsAnswered() {
		return true
	}
	return r.Date == nil || !r.Date.SameDay(date)
}

func (r Record) MarshalJSON() ([]byte, error) {
	return json.Marshal(structuredRecord{
		Category: r.Category,
		Date:     r.Date,
	})
}

func (r *Record) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return ErrUnsupportedRecord
	}

	switch trimmed[0] {
	case '"':
		var category string
		if err := json.Unmarshal(trimmed, &category); err != nil {
			return fmt.Errorf("json.Unmarshal > %w", err)
		}
		*r = Record{Category: Category(category), flat: true}
	case '{':
		var structured structuredRecord
		if err := json.Unmarshal(trimmed, &structured); err != nil {
			return fmt.Errorf("%w: json.Unmarshal > %w", ErrCorruptDictionary, err)
		}
		*r = Record{Category: structured.Category, Date: structured.Date}
	default:
		return fmt.Errorf("%w: %s", ErrUnsupportedRecord, trimmed)
	}
	return nil
}
