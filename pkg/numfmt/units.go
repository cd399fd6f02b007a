package numfmt

import (
	"fmt"
	"slices"
	"strings"
)

// UnitTable maps the number of removed three-digit groups to a suffix.
// Position i holds the suffix for i+1 groups; zero groups never get one.
type UnitTable struct {
	units []string
}

var (
	// DefaultUnits covers thousands, millions and billions.
	DefaultUnits = MustUnitTable("K", "M", "B")

	// SIUnits follows the SI prefixes up to exa.
	SIUnits = MustUnitTable("K", "M", "G", "T", "P", "E")
)

// NewUnitTable builds a table from suffixes ordered by magnitude.
func NewUnitTable(units ...string) (UnitTable, error) {
	if len(units) == 0 {
		return UnitTable{}, fmt.Errorf("%w: unit table is empty", ErrInvalidConfig)
	}
	for i, u := range units {
		if strings.TrimSpace(u) == "" {
			return UnitTable{}, fmt.Errorf("%w: blank unit for %d groups", ErrInvalidConfig, i+1)
		}
	}
	return UnitTable{units: slices.Clone(units)}, nil
}

// MustUnitTable is like NewUnitTable but panics on an invalid table.
func MustUnitTable(units ...string) UnitTable {
	t, err := NewUnitTable(units...)
	if err != nil {
		panic(err)
	}
	return t
}

// UnitTableByName resolves the names accepted in settings: "default" (or "")
// and "si".
func UnitTableByName(name string) (UnitTable, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default", "kmb":
		return DefaultUnits, nil
	case "si":
		return SIUnits, nil
	default:
		return UnitTable{}, fmt.Errorf("%w: unknown unit table %q", ErrInvalidConfig, name)
	}
}

// Max is the largest group count the table has a suffix for.
func (t UnitTable) Max() int {
	return len(t.units)
}

// Units returns a copy of the suffixes in magnitude order.
func (t UnitTable) Units() []string {
	return slices.Clone(t.units)
}

// Suffix returns the unit for the given number of removed groups.
func (t UnitTable) Suffix(groups int) (string, error) {
	if groups <= 0 {
		return "", nil
	}
	if groups > len(t.units) {
		return "", fmt.Errorf("%w: %d groups removed, table covers %d", ErrMagnitudeOverflow, groups, len(t.units))
	}
	return t.units[groups-1], nil
}
