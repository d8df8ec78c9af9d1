package editor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/models"
)

const statsPage = `<!DOCTYPE html>
<html><head></head><body>
<div class="stats-grid">` +
	`<div class="stat-card"><span class="stat-number" data-target="500">500</span><p>Członków</p></div>` +
	`<div class="stat-card"><span class="stat-number" data-target="12">12</span><p>Projektów</p></div>` +
	`</div>
</body></html>`

func TestSetRegion_StatsUpdatesCounterTargets(t *testing.T) {
	p := mustParse(t, statsPage)

	edited := `<div class="stat-card"><span class="stat-number" data-target="500" contenteditable="true">750+</span><p>Członków</p></div>` +
		`<div class="stat-card"><span class="stat-number" data-target="12">brak</span><p>Projektów</p></div>`
	require.NoError(t, p.SetRegion(models.RegionStats, edited))

	out, err := p.Sanitized()
	require.NoError(t, err)
	s := string(out)
	assert.Contains(t, s, `<span class="stat-number" data-target="750">750+</span>`)
	assert.Contains(t, s, `<span class="stat-number" data-target="0">brak</span>`)
	assert.NotContains(t, s, `data-target="500"`)
}

func TestApply_KeepsStoredCounterTargets(t *testing.T) {
	p := mustParse(t, statsPage)
	before, err := p.Region(models.RegionStats)
	require.NoError(t, err)

	doc, err := p.Capture()
	require.NoError(t, err)
	require.NoError(t, p.Apply(doc))

	after, err := p.Region(models.RegionStats)
	require.NoError(t, err)
	assert.Equal(t, before, after)
}

func TestStatDigits(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"120", "120"},
		{"1 200+", "1200"},
		{"007", "7"},
		{"", "0"},
		{"dużo", "0"},
		{"0", "0"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, statDigits(tt.in), tt.in)
	}
}
