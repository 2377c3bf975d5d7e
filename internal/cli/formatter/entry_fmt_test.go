package formatter

import (
	"strings"
	"testing"
	"time"

	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/ledger"
	"github.com/stretchr/testify/assert"
)

func sampleEntry() domain.Entry {
	return domain.Entry{
		ID:            "0b5e7a1c-1111-2222-3333-444455556666",
		Number:        3,
		Date:          "2025/06/15 21:00",
		StoreInfo:     "Club A",
		StartTime:     "20:00",
		EndTime:       "22:15",
		Hours:         2,
		Minutes:       15,
		TotalMinutes:  135,
		FullUnitCount: 2,
		HalfUnitCount: 0,
		Options:       domain.Options{Nomination: true},
		CreatedAt:     time.Date(2025, 6, 15, 21, 0, 0, 0, time.UTC),
	}
}

func TestFormatEntryDetail(t *testing.T) {
	got := FormatEntryDetail(sampleEntry())

	assert.Contains(t, got, "#3")
	assert.Contains(t, got, "20:00–22:15")
	assert.Contains(t, got, "2h15m")
	assert.Contains(t, got, "Club A")
	assert.Contains(t, got, "nomination")
	assert.NotContains(t, got, "Sister:")
}

func TestFormatEntryDetail_WithSister(t *testing.T) {
	e := sampleEntry()
	e.SisterID = "s1"
	e.Sister = &domain.Sister{ID: "s1", Name: "Hana"}

	got := FormatEntryDetail(e)
	assert.Contains(t, got, "Hana")
}

func TestFormatEntryTable_ProAddsSisterColumn(t *testing.T) {
	entries := []domain.Entry{sampleEntry()}

	simple := FormatEntryTable(entries, false)
	pro := FormatEntryTable(entries, true)

	assert.NotContains(t, simple, "Sister")
	assert.Contains(t, pro, "Sister")
}

func TestFormatUnits(t *testing.T) {
	tests := []struct {
		name string
		full int
		half int
		want string
	}{
		{"whole", 2, 0, "2"},
		{"with half", 9, 1, "9.5"},
		{"zero", 0, 0, "0"},
		{"only half", 0, 1, "0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatUnits(tt.full, tt.half))
		})
	}
}

func TestFormatSummary(t *testing.T) {
	got := FormatSummary(ledger.Summary{
		EntryCount: 4,
		TotalFull:  11,
		TotalHalf:  2,
		OptionCounts: map[domain.Option]int{
			domain.OptionNomination: 1,
		},
	})

	assert.Contains(t, got, "Entries:      4")
	assert.Contains(t, got, "Full units:   11")
	assert.Contains(t, got, "Half units:   2")
	assert.Contains(t, got, "nomination")
}

func TestRenderTable_Alignment(t *testing.T) {
	got := RenderTable(
		[]string{"A", "Long header"},
		[][]string{
			{"x", "y"},
			{"wider cell", "z"},
		},
	)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 4)
	// Second column starts at the same offset on every line.
	assert.Equal(t, strings.Index(lines[2], "y"), strings.Index(lines[3], "z"))
}

func TestShortID(t *testing.T) {
	assert.Equal(t, "0b5e7a1c", shortID("0b5e7a1c-1111-2222-3333-444455556666"))
	assert.Equal(t, "abc", shortID("abc"))
}
