package editor

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/models"
)

const fixturePage = `<!DOCTYPE html>
<html lang="pl">
<head><title>Samorząd dla Młodych</title></head>
<body>
<nav><ul><li><a href="#" id="adminLoginBtn" class="nav-login">Admin</a></li></ul></nav>
<section id="misja"><h2>Misja</h2><div class="mission-grid"><div class="mission-card"><span class="mission-card-number">01</span><h3>Aktywność</h3><p>Opis misji</p></div></div></section>
<div class="actions-grid"><div class="action-card"><h3>Akcja</h3></div></div>
<div class="news-grid"><div class="news-card"><p>Wiadomość</p></div></div>
<div class="about-features"><div class="feature-card"><h4>Cecha</h4></div></div>
<div id="modal-static" class="modal"><p>Statyczny</p></div>
</body>
</html>`

func mustParse(t *testing.T, src string) *Page {
	t.Helper()
	p, err := ParseBytes([]byte(src))
	require.NoError(t, err)
	return p
}

func mustRender(t *testing.T, p *Page) string {
	t.Helper()
	out, err := p.Render()
	require.NoError(t, err)
	return string(out)
}

// ── Capture / Apply ──────────────────────────────────────────────────────────

func TestCapture_PresentRegionsOnly(t *testing.T) {
	p := mustParse(t, fixturePage)

	doc, err := p.Capture()
	require.NoError(t, err)

	assert.Len(t, doc.Regions, 4)
	assert.NotContains(t, doc.Regions, models.RegionStats)
	assert.Contains(t, doc.Regions[models.RegionNews], "Wiadomość")
	assert.Empty(t, doc.Modals, "static dialogs are not captured")
}

func TestCapture_OnlyEditorModalsUnderBody(t *testing.T) {
	p := mustParse(t, strings.Replace(fixturePage, "</body>",
		`<div id="modal-new-1" class="modal"><p>Nowy</p></div><section><div id="modal-new-nested"></div></section></body>`, 1))

	doc, err := p.Capture()
	require.NoError(t, err)

	require.Len(t, doc.Modals, 1)
	assert.Equal(t, `<div id="modal-new-1" class="modal"><p>Nowy</p></div>`, doc.Modals[0])
}

func TestApply_CaptureIsIdempotent(t *testing.T) {
	p := mustParse(t, strings.Replace(fixturePage, "</body>", `<div id="modal-new-1"><p>x</p></div></body>`, 1))
	before := mustRender(t, p)

	doc, err := p.Capture()
	require.NoError(t, err)

	require.NoError(t, p.Apply(doc))
	assert.Equal(t, before, mustRender(t, p))

	require.NoError(t, p.Apply(doc))
	assert.Equal(t, before, mustRender(t, p))
}

func TestApply_ReplacesRegionsAndAppendsNewModals(t *testing.T) {
	p := mustParse(t, fixturePage)

	doc := models.Document{
		Regions: map[models.RegionID]string{
			models.RegionNews:  `<div class="news-card"><p>Nowość</p></div>`,
			models.RegionStats: `<div class="stat">99</div>`,
		},
		Modals: []string{
			`<div id="modal-new-7"><p>siedem</p></div>`,
			`<div id="modal-new-7"><p>duplikat</p></div>`,
		},
	}
	require.NoError(t, p.Apply(doc))

	news, err := p.Region(models.RegionNews)
	require.NoError(t, err)
	assert.Equal(t, `<div class="news-card"><p>Nowość</p></div>`, news)

	assert.False(t, p.HasRegion(models.RegionStats))

	modals, err := p.Modals()
	require.NoError(t, err)
	assert.Equal(t, []string{`<div id="modal-new-7"><p>siedem</p></div>`}, modals)

	mission, err := p.Region(models.RegionMission)
	require.NoError(t, err)
	assert.Contains(t, mission, "Opis misji", "untouched region keeps its content")
}

func TestApply_InvalidModalLeavesPageUntouched(t *testing.T) {
	p := mustParse(t, fixturePage)
	before := mustRender(t, p)

	err := p.Apply(models.Document{
		Regions: map[models.RegionID]string{models.RegionNews: "<p>zmiana</p>"},
		Modals:  []string{"just text"},
	})
	assert.ErrorIs(t, err, ErrInvalidMarkup)
	assert.Equal(t, before, mustRender(t, p))
}

func TestApply_StripsEditingArtifacts(t *testing.T) {
	p := mustParse(t, fixturePage)

	err := p.Apply(models.Document{Regions: map[models.RegionID]string{
		models.RegionActions: `<div class="action-card"><h3 contenteditable="true">A</h3><button class="admin-delete-btn">×</button></div><button class="admin-add-btn">+</button>`,
	}})
	require.NoError(t, err)

	got, err := p.Region(models.RegionActions)
	require.NoError(t, err)
	assert.Equal(t, `<div class="action-card"><h3>A</h3></div>`, got)
}

// ── Regions and dialogs ─────────────────────────────────────────────────────

func TestSetRegion_Errors(t *testing.T) {
	p := mustParse(t, fixturePage)

	assert.ErrorIs(t, p.SetRegion("footer", "x"), ErrUnknownRegion)
	assert.ErrorIs(t, p.SetRegion(models.RegionStats, "x"), ErrRegionMissing)

	_, err := p.Region(models.RegionStats)
	assert.ErrorIs(t, err, ErrRegionMissing)
}

func TestAddModal(t *testing.T) {
	p := mustParse(t, fixturePage)

	added, err := p.AddModal(`<div id="modal-new-2" class="modal"></div>`)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, p.HasElementID("modal-new-2"))

	added, err = p.AddModal(`<div id="modal-new-2" class="modal"></div>`)
	require.NoError(t, err)
	assert.False(t, added)

	_, err = p.AddModal(`<div id="other"></div>`)
	assert.ErrorIs(t, err, ErrInvalidMarkup)
}

func TestParse_EmptyInputSynthesizesDocument(t *testing.T) {
	// The HTML parser always synthesizes <html>, so any input parses.
	p, err := ParseBytes(nil)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(mustRender(t, p), "<!DOCTYPE html>\n<html>"))
}

func TestClone_IsIndependent(t *testing.T) {
	p := mustParse(t, fixturePage)
	c := p.Clone()

	require.NoError(t, c.SetRegion(models.RegionNews, "<p>tylko w kopii</p>"))

	news, err := p.Region(models.RegionNews)
	require.NoError(t, err)
	assert.NotContains(t, news, "tylko w kopii")
}
