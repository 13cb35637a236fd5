package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestToISO(t *testing.T) {
	assert.Equal(t, "2026-06-15", ToISO("15/06/2026"))
	assert.Equal(t, "2026-01-02", ToISO("02/01/2026"))
	assert.Empty(t, ToISO(""))
	assert.Empty(t, ToISO("pendent"))
	assert.Empty(t, ToISO("2026-06-15"))
	assert.Empty(t, ToISO("31/02/2026"))
}

func TestParseISO(t *testing.T) {
	parsed, ok := ParseISO("2026-06-15")
	assert.True(t, ok)
	assert.Equal(t, time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC), parsed)

	_, ok = ParseISO("")
	assert.False(t, ok)
	_, ok = ParseISO("15/06/2026")
	assert.False(t, ok)
}

func TestISOStringsCompareChronologically(t *testing.T) {
	assert.True(t, "2026-06-15" < "2026-09-01")
	assert.True(t, "2025-12-31" < "2026-01-01")
}

func TestStageString(t *testing.T) {
	assert.Equal(t, "listed", StageListed.String())
	assert.Equal(t, "done", StageDone.String())
}
