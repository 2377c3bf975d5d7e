package cli

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/huh"
)

// validateInt rejects anything that is not an integer; range rules are
// enforced later by Settings.Validate so both surfaces share one check.
func validateInt(s string) error {
	if _, err := strconv.Atoi(s); err != nil {
		return fmt.Errorf("enter a whole number")
	}
	return nil
}

// minutesInput returns a huh.Input for an integer minutes field.
func minutesInput(title, placeholder string, value *string) *huh.Input {
	return huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(value).
		Validate(validateInt)
}

// settingsForm collects the two unit-counting thresholds.
func settingsForm(fullUnit, halfStart, halfEnd *string) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			minutesInput("Full unit minutes", "60", fullUnit),
			minutesInput("Half window start", "30", halfStart),
			minutesInput("Half window end", "59", halfEnd),
		),
	).WithShowHelp(false)
}
