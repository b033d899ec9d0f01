package wordlist

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustParseDate(t *testing.T, value string) Date {
	t.Helper()
	date, err := ParseDate(value)
	require.NoError(t, err)
	return date
}

func TestRecord_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      Record
		wantFlat  bool
		wantDate  string
		wantError error
	}{
		{
			name:     "flat category",
			input:    `"A"`,
			want:     Record{Category: CategoryAnswered},
			wantFlat: true,
		},
		{
			name:     "structured record with a date",
			input:    `{"category": "A", "date": "2024-06-15"}`,
			want:     Record{Category: CategoryAnswered},
			wantDate: "2024-06-15",
		},
		{
			name:  "structured record with a null date",
			input: `{"category": "B", "date": null}`,
			want:  Record{Category: "B"},
		},
		{
			name:  "structured record without a date",
			input: `{"category": "O"}`,
			want:  Record{Category: CategoryOriginal},
		},
		{
			name:      "number",
			input:     `1`,
			wantError: ErrUnsupportedRecord,
		},
		{
			name:      "boolean",
			input:     `true`,
			wantError: ErrUnsupportedRecord,
		},
		{
			name:      "array",
			input:     `["A"]`,
			wantError: ErrUnsupportedRecord,
		},
		{
			name:      "null",
			input:     `null`,
			wantError: ErrUnsupportedRecord,
		},
		{
			name:      "invalid date",
			input:     `{"category": "A", "date": "15/06/2024"}`,
			wantError: ErrCorruptDictionary,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got Record
			err := json.Unmarshal([]byte(tt.input), &got)
			if tt.wantError != nil {
				assert.ErrorIs(t, err, tt.wantError)
				return
			}
			require.NoError(t, err)

			assert.Equal(t, tt.want.Category, got.Category)
			assert.Equal(t, tt.wantFlat, got.IsFlat())
			if tt.wantDate == "" {
				assert.Nil(t, got.Date)
			} else {
				require.NotNil(t, got.Date)
				assert.Equal(t, tt.wantDate, got.Date.String())
			}
		})
	}
}

func TestRecord_MarshalJSON(t *testing.T) {
	date := mustParseDate(t, "2024-06-15")

	tests := []struct {
		name   string
		record Record
		want   string
	}{
		{
			name:   "flat record is written structured",
			record: Record{Category: CategoryOriginal, flat: true},
			want:   `{"category":"O","date":null}`,
		},
		{
			name:   "record with a date",
			record: Record{Category: CategoryAnswered, Date: &date},
			want:   `{"category":"A","date":"2024-06-15"}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := json.Marshal(tt.record)
			require.NoError(t, err)
			assert.JSONEq(t, tt.want, string(got))
		})
	}
}

func TestRecord_NeedsArchive(t *testing.T) {
	target := mustParseDate(t, "2024-06-15")
	other := mustParseDate(t, "2024-06-14")

	tests := []struct {
		name   string
		record Record
		want   bool
	}{
		{
			name:   "not answered",
			record: Record{Category: "B"},
			want:   true,
		},
		{
			name:   "answered without a date",
			record: Record{Category: CategoryAnswered},
			want:   true,
		},
		{
			name:   "answered on another date",
			record: Record{Category: CategoryAnswered, Date: &other},
			want:   true,
		},
		{
			name:   "answered on the target date",
			record: Record{Category: CategoryAnswered, Date: &target},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.record.NeedsArchive(target))
		})
	}
}

func TestNewDate(t *testing.T) {
	pacific := time.FixedZone("PDT", -7*60*60)
	date := NewDate(time.Date(2024, 6, 15, 23, 30, 0, 0, pacific))

	assert.Equal(t, "2024-06-15", date.String())
	assert.True(t, date.SameDay(mustParseDate(t, "2024-06-15")))
}

func TestParseDate(t *testing.T) {
	_, err := ParseDate("2024-13-01")
	assert.Error(t, err)

	date, err := ParseDate("2024-06-15")
	require.NoError(t, err)
	assert.Equal(t, "2024-06-15", date.String())
}
