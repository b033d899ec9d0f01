package wordlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionary_Apply(t *testing.T) {
	target := mustParseDate(t, "2024-06-15")
	previous := mustParseDate(t, "2024-06-14")

	tests := []struct {
		name        string
		dictionary  Dictionary
		word        string
		wantOutcome Outcome
		wantError   error
		want        Dictionary
	}{
		{
			name:        "unanswered word is archived",
			dictionary:  Dictionary{"crane": {Category: "B"}},
			word:        "crane",
			wantOutcome: OutcomeUpdated,
			want:        Dictionary{"crane": {Category: CategoryAnswered, Date: &target}},
		},
		{
			name:        "answered word on the same date is left alone",
			dictionary:  Dictionary{"crane": {Category: CategoryAnswered, Date: &target}},
			word:        "crane",
			wantOutcome: OutcomeAlreadyCurrent,
			want:        Dictionary{"crane": {Category: CategoryAnswered, Date: &target}},
		},
		{
			name:        "answered word gets the latest date",
			dictionary:  Dictionary{"crane": {Category: CategoryAnswered, Date: &previous}},
			word:        "crane",
			wantOutcome: OutcomeUpdated,
			want:        Dictionary{"crane": {Category: CategoryAnswered, Date: &target}},
		},
		{
			name:        "flat answered word gets a date",
			dictionary:  Dictionary{"crane": {Category: CategoryAnswered, flat: true}},
			word:        "crane",
			wantOutcome: OutcomeUpdated,
			want:        Dictionary{"crane": {Category: CategoryAnswered, Date: &target}},
		},
		{
			name: "other records are untouched",
			dictionary: Dictionary{
				"crane": {Category: "B"},
				"slate": {Category: CategoryOriginal},
				"trace": {Category: CategoryAnswered, Date: &previous},
			},
			word:        "crane",
			wantOutcome: OutcomeUpdated,
			want: Dictionary{
				"crane": {Category: CategoryAnswered, Date: &target},
				"slate": {Category: CategoryOriginal},
				"trace": {Category: CategoryAnswered, Date: &previous},
			},
		},
		{
			name:       "missing word",
			dictionary: Dictionary{},
			word:       "slate",
			wantError:  ErrWordNotTracked,
			want:       Dictionary{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.dictionary.Apply(tt.word, target)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.wantOutcome, got)
			}
			assert.Equal(t, tt.want, tt.dictionary)
		})
	}
}

func TestDictionary_Apply_IsIdempotent(t *testing.T) {
	target := mustParseDate(t, "2024-06-15")
	dictionary := Dictionary{"crane": {Category: "B"}}

	first, err := dictionary.Apply("crane", target)
	require.NoError(t, err)
	assert.Equal(t, OutcomeUpdated, first)
	afterFirst := Dictionary{"crane": dictionary["crane"]}

	second, err := dictionary.Apply("crane", target)
	require.NoError(t, err)
	assert.Equal(t, OutcomeAlreadyCurrent, second)
	assert.Equal(t, afterFirst, dictionary)
}

func TestDictionary_Normalize(t *testing.T) {
	dictionary := Dictionary{
		"crane": {Category: CategoryAnswered, flat: true},
		"slate": {Category: CategoryOriginal, flat: true},
		"trace": {Category: CategoryExtended},
	}

	assert.Equal(t, []string{"crane", "slate"}, dictionary.FlatWords())
	assert.Equal(t, 2, dictionary.Normalize())
	assert.Empty(t, dictionary.FlatWords())
	assert.Equal(t, 0, dictionary.Normalize())
	assert.Equal(t, CategoryOriginal, dictionary["slate"].Category)
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "updated", OutcomeUpdated.String())
	assert.Equal(t, "already current", OutcomeAlreadyCurrent.String())
	assert.Equal(t, "unknown", Outcome(0).String())
}
