package numfmt_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/inputkit/pkg/numfmt"
)

func TestUnitTable_Suffix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		groups   int
		expected string
	}{
		{groups: 0, expected: ""},
		{groups: 1, expected: "K"},
		{groups: 2, expected: "M"},
		{groups: 3, expected: "B"},
	}

	for _, tt := range tests {
		suffix, err := numfmt.DefaultUnits.Suffix(tt.groups)
		require.NoError(t, err)
		assert.Equal(t, tt.expected, suffix)
	}

	_, err := numfmt.DefaultUnits.Suffix(4)
	assert.ErrorIs(t, err, numfmt.ErrMagnitudeOverflow)
	assert.Equal(t, 3, numfmt.DefaultUnits.Max())
	assert.Equal(t, 6, numfmt.SIUnits.Max())
}

func TestNewUnitTable(t *testing.T) {
	t.Parallel()

	units := []string{"k", "m"}
	table, err := numfmt.NewUnitTable(units...)
	require.NoError(t, err)

	units[0] = "changed"
	assert.Equal(t, []string{"k", "m"}, table.Units(), "table must not alias caller slice")

	_, err = numfmt.NewUnitTable()
	assert.ErrorIs(t, err, numfmt.ErrInvalidConfig)

	_, err = numfmt.NewUnitTable("K", " ")
	assert.ErrorIs(t, err, numfmt.ErrInvalidConfig)

	assert.Panics(t, func() { numfmt.MustUnitTable() })
}

func TestUnitTableByName(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"", "default", "KMB"} {
		table, err := numfmt.UnitTableByName(name)
		require.NoError(t, err)
		assert.Equal(t, numfmt.DefaultUnits.Units(), table.Units())
	}

	table, err := numfmt.UnitTableByName(" si ")
	require.NoError(t, err)
	assert.Equal(t, []string{"K", "M", "G", "T", "P", "E"}, table.Units())

	_, err = numfmt.UnitTableByName("roman")
	assert.ErrorIs(t, err, numfmt.ErrInvalidConfig)
}
