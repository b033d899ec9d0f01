// Package solver ranks the words that are still possible answers after a series of guesses.
package solver

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/at-ishikawa/wordarchiver/internal/wordlist"
)

var ErrInvalidTurn = errors.New("invalid turn")

type Word struct {
	Text     string
	Category wordlist.Category
	Entropy  float64
}

type Turn struct {
	Guess   string
	Pattern string
}

// ParseTurn parses "guess=pattern", for example "crane=g-y--".
func ParseTurn(value string) (Turn, error) {
	guess, pattern, ok := strings.Cut(value, "=")
	if !ok {
		return Turn{}, fmt.Errorf("%w: %q must be in the form guess=pattern", ErrInvalidTurn, value)
	}
	turn := Turn{
		Guess:   strings.ToLower(strings.TrimSpace(guess)),
		Pattern: strings.ToLower(strings.TrimSpace(pattern)),
	}
	if err := turn.validate(); err != nil {
		return Turn{}, err
	}
	return turn, nil
}

func (t Turn) validate() error {
	if len(t.Guess) != len(Solved) || len(t.Pattern) != len(Solved) {
		return fmt.Errorf("%w: guess %q and pattern %q must both be %d letters", ErrInvalidTurn, t.Guess, t.Pattern, len(Solved))
	}
	for _, c := range t.Pattern {
		if c != Green && c != Yellow && c != Miss {
			return fmt.Errorf("%w: pattern %q may only contain %c, %c and %c", ErrInvalidTurn, t.Pattern, Green, Yellow, Miss)
		}
	}
	return nil
}

// Possible returns every word that has not been an answer yet, sorted alphabetically.
func Possible(dictionary wordlist.Dictionary) []Word {
	words := make([]Word, 0, len(dictionary))
	for _, text := range dictionary.Words() {
		category := dictionary[text].Category
		if category.IsAnswered() {
			continue
		}
		words = append(words, Word{Text: text, Category: category})
	}
	return words
}

func Filter(words []Word, turn Turn) []Word {
	filtered := make([]Word, 0, len(words))
	for _, word := range words {
		if Pattern(word.Text, turn.Guess) == turn.Pattern {
			filtered = append(filtered, word)
		}
	}
	return filtered
}

// Likely returns the words from the original or extended lists, or all words when there are none.
func Likely(words []Word) []Word {
	likely := make([]Word, 0, len(words))
	for _, word := range words {
		if word.Category == wordlist.CategoryOriginal || word.Category == wordlist.CategoryExtended {
			likely = append(likely, word)
		}
	}
	if len(likely) == 0 {
		return words
	}
	return likely
}

// Entropy is the Shannon entropy in bits of the patterns guess produces over answers.
func Entropy(guess string, answers []Word) float64 {
	if len(answers) == 0 {
		return 0
	}
	patterns := make(map[string]int)
	for _, answer := range answers {
		patterns[Pattern(answer.Text, guess)]++
	}

	total := float64(len(answers))
	entropy := 0.0
	for _, count := range patterns {
		probability := float64(count) / total
		entropy -= probability * math.Log2(probability)
	}
	return entropy
}

type Suggestion struct {
	// Solved is set when a turn matched every letter.
	Solved bool
	Answer string
	// Ranked holds the best possible answers, category first and then entropy.
	Ranked []Word
	// Remaining is the number of possible answers before truncation.
	Remaining int
	// Detector is the highest entropy word over the whole dictionary when it is not the top ranked answer.
	Detector *Word
	Counts   map[wordlist.Category]int
}

func Suggest(dictionary wordlist.Dictionary, turns []Turn, limit int) (Suggestion, error) {
	possible := Possible(dictionary)
	for _, turn := range turns {
		if err := turn.validate(); err != nil {
			return Suggestion{}, err
		}
		if turn.Pattern == Solved {
			return Suggestion{Solved: true, Answer: turn.Guess}, nil
		}
		possible = Filter(possible, turn)
	}

	suggestion := Suggestion{
		Remaining: len(possible),
		Counts: map[wordlist.Category]int{
			wordlist.CategoryOriginal:   0,
			wordlist.CategoryExtended:   0,
			wordlist.CategoryZeroChance: 0,
		},
	}
	for _, word := range possible {
		if _, ok := suggestion.Counts[word.Category]; ok {
			suggestion.Counts[word.Category]++
		}
	}
	if len(possible) == 0 {
		return suggestion, nil
	}

	likely := Likely(possible)
	var best *Word
	for _, text := range dictionary.Words() {
		candidate := Word{
			Text:     text,
			Category: dictionary[text].Category,
			Entropy:  Entropy(text, likely),
		}
		if best == nil || candidate.Entropy > best.Entropy {
			best = &candidate
		}
	}
	for i := range possible {
		possible[i].Entropy = Entropy(possible[i].Text, likely)
	}

	sort.SliceStable(possible, func(i, j int) bool {
		if possible[i].Category != possible[j].Category {
			return possible[i].Category < possible[j].Category
		}
		return possible[i].Entropy > possible[j].Entropy
	})

	if best != nil && best.Text != possible[0].Text {
		suggestion.Detector = best
	}
	if limit > 0 && len(possible) > limit {
		possible = possible[:limit]
	}
	suggestion.Ranked = possible
	return suggestion, nil
}
