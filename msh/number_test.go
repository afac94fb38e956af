package msh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatFloat(t *testing.T) {
	{ // Rounding, not truncation, in fixed mode
		o := DefaultOptions()
		o.AlignColumns = false
		o.Precision = 4
		assert.Equal(t, "0.1235", o.FormatFloat(0.123456789))
	}
	{ // Magnitudes under the threshold go scientific
		o := DefaultOptions()
		o.AlignColumns = false
		o.Precision = 4
		o.ScientificThreshold = 1.e-6
		assert.Equal(t, "1.0000e-08", o.FormatFloat(1.e-8))
		assert.Equal(t, "-1.0000e-08", o.FormatFloat(-1.e-8))
	}
	{ // Zero never goes scientific, whatever the threshold
		o := DefaultOptions()
		o.AlignColumns = false
		o.Precision = 4
		o.ScientificThreshold = 1.e6
		assert.Equal(t, "0.0000", o.FormatFloat(0))
	}
	{ // Alignment pads to the column width
		o := DefaultOptions()
		o.Precision = 6
		o.ColumnWidth = 18
		assert.Equal(t, 18, len(o.FormatFloat(0.1)))
		assert.Equal(t, "          0.100000", o.FormatFloat(0.1))
	}
	{ // Tokens wider than the column are left unmodified
		o := DefaultOptions()
		o.Precision = 16
		o.ColumnWidth = 10
		token := o.FormatFloat(-12345.0123456789012345)
		assert.True(t, len(token) > 10)
	}
}

func TestFormatInt(t *testing.T) {
	{ // Default integer column is 10, callers can override
		o := DefaultOptions()
		assert.Equal(t, "         7", o.FormatInt(7, 0))
		assert.Equal(t, "  7", o.FormatInt(7, 3))
		assert.Equal(t, "12345", o.FormatInt(12345, 3))
	}
	{ // No forced width when alignment is off
		o := DefaultOptions()
		o.AlignColumns = false
		assert.Equal(t, "7", o.FormatInt(7, 0))
		assert.Equal(t, "7", o.FormatInt(7, 3))
	}
}

func TestFormatCoordinates(t *testing.T) {
	o := DefaultOptions()
	o.AlignColumns = false
	o.Precision = 2
	assert.Equal(t, "0.10 0.20 0.30", o.FormatCoordinates([]float64{0.1, 0.2, 0.3}))
}
