package templates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNewContext(t *testing.T) {
	p := Params{ModuleName: "Home", AppName: "Broccoli", Author: "Bojan"}
	ctx := NewContext(p, fixedNow, DefaultDateLayouts())

	assert.Equal(t, p, ctx.Params)
	assert.Equal(t, "2024-03-05", ctx.Date)
	assert.Equal(t, "2024", ctx.Year)
	assert.Empty(t, ctx.FileName)
}

func TestNewContext_CustomLayouts(t *testing.T) {
	ctx := NewContext(Params{}, fixedNow, DateLayouts{Long: "02/01/06", Year: "06"})

	assert.Equal(t, "05/03/24", ctx.Date)
	assert.Equal(t, "24", ctx.Year)
}

func TestNewContext_EmptyLayoutsUseDefaults(t *testing.T) {
	ctx := NewContext(Params{}, fixedNow, DateLayouts{})

	assert.Equal(t, "2024-03-05", ctx.Date)
	assert.Equal(t, "2024", ctx.Year)
}

func TestNewContext_YearBoundary(t *testing.T) {
	// Dec 30 2024 falls in ISO week 1 of 2025; the year must still be 2024.
	ctx := NewContext(Params{}, time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC), DefaultDateLayouts())

	assert.Equal(t, "2024-12-30", ctx.Date)
	assert.Equal(t, "2024", ctx.Year)
}
