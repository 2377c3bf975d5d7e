package formatter

import (
	"fmt"
	"strings"

	"github.com/ksaito/tctally/internal/domain"
	"github.com/ksaito/tctally/internal/ledger"
)

// FormatEntryTable renders entries as a table. In pro mode a Sister
// column is included.
func FormatEntryTable(entries []domain.Entry, pro bool) string {
	headers := []string{"#", "ID", "Time", "Elapsed", "Units", "Options", "Store"}
	if pro {
		headers = append(headers[:2], append([]string{"Sister"}, headers[2:]...)...)
	}

	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := []string{
			StyleBold.Render(fmt.Sprintf("%d", e.Number)),
			StyleDim.Render(shortID(e.ID)),
			fmt.Sprintf("%s–%s", e.StartTime, e.EndTime),
			fmt.Sprintf("%dh%02dm", e.Hours, e.Minutes),
			FormatUnits(e.FullUnitCount, e.HalfUnitCount),
			formatOptionFlags(e.Options),
			e.StoreInfo,
		}
		if pro {
			name := ""
			if e.Sister != nil {
				name = e.Sister.Name
			}
			row = append(row[:2], append([]string{StyleBlue.Render(name)}, row[2:]...)...)
		}
		rows = append(rows, row)
	}
	return RenderTable(headers, rows)
}

// FormatEntryDetail renders one entry as a multi-line block.
func FormatEntryDetail(e domain.Entry) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s %s\n", StyleHeader.Render(fmt.Sprintf("#%d", e.Number)), StyleDim.Render(e.ID))
	fmt.Fprintf(&b, "  %s  %s–%s  (%dh%02dm)\n", e.Date, e.StartTime, e.EndTime, e.Hours, e.Minutes)
	fmt.Fprintf(&b, "  Units:   %s\n", FormatUnits(e.FullUnitCount, e.HalfUnitCount))
	if e.Sister != nil {
		fmt.Fprintf(&b, "  Sister:  %s\n", StyleBlue.Render(e.Sister.Name))
	}
	if e.StoreInfo != "" {
		fmt.Fprintf(&b, "  Store:   %s\n", e.StoreInfo)
	}
	if opts := formatOptionFlags(e.Options); opts != "" {
		fmt.Fprintf(&b, "  Options: %s\n", opts)
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatUnits renders a unit count such as "9.5" or "2".
func FormatUnits(full, half int) string {
	if half > 0 {
		return StyleGreen.Render(fmt.Sprintf("%d.5", full))
	}
	return StyleGreen.Render(fmt.Sprintf("%d", full))
}

// FormatSummary renders aggregate totals.
func FormatSummary(s ledger.Summary) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Summary") + "\n")
	fmt.Fprintf(&b, "  Entries:      %d\n", s.EntryCount)
	fmt.Fprintf(&b, "  Full units:   %d\n", s.TotalFull)
	fmt.Fprintf(&b, "  Half units:   %d\n", s.TotalHalf)
	for _, opt := range domain.AllOptions() {
		fmt.Fprintf(&b, "  %-13s %d\n", optionLabel(opt)+":", s.OptionCounts[opt])
	}
	return strings.TrimRight(b.String(), "\n")
}

// FormatSettings renders the active thresholds.
func FormatSettings(s domain.Settings) string {
	var b strings.Builder
	b.WriteString(StyleHeader.Render("Settings") + "\n")
	fmt.Fprintf(&b, "  Full unit:    %d min\n", s.FullUnitMinutes)
	fmt.Fprintf(&b, "  Half window:  %d–%d min\n", s.HalfWindow.Start, s.HalfWindow.End)
	return strings.TrimRight(b.String(), "\n")
}

// FormatSisterTable renders the sister registry.
func FormatSisterTable(sisters []*domain.Sister) string {
	headers := []string{"ID", "Name"}
	rows := make([][]string, 0, len(sisters))
	for _, s := range sisters {
		rows = append(rows, []string{StyleDim.Render(s.ID), StyleBlue.Render(s.Name)})
	}
	return RenderTable(headers, rows)
}

func formatOptionFlags(o domain.Options) string {
	var parts []string
	for _, opt := range domain.AllOptions() {
		if o.Get(opt) {
			parts = append(parts, StyleYellow.Render(optionLabel(opt)))
		}
	}
	return strings.Join(parts, " ")
}

func optionLabel(opt domain.Option) string {
	switch opt {
	case domain.OptionTransportFee:
		return "transport"
	case domain.OptionNomination:
		return "nomination"
	case domain.OptionNoShow:
		return "no-show"
	}
	return string(opt)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}
