package portal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const listingFixture = `
<div class="offers">
  <div class="offer">
    <a class="title-wrapper" href="https://example.org/membres/oferta/4821">
      <h1 class="title">Tècnic de projectes</h1>
    </a>
    <div class="data">Data de l'oferta: 15/06/2026</div>
    <div class="data">Data límit de CV: 30/09/2026</div>
  </div>
  <div class="offer">
    <a class="title-wrapper" href="https://example.org/membres/oferta-externa">
      <h1 class="title">Sense identificador</h1>
    </a>
    <div class="data">Data de l'oferta: 10/06/2026</div>
  </div>
  <div class="offer">
    <div class="data">Caixa sense enllaç, s'ignora</div>
  </div>
</div>`

func TestParseListing(t *testing.T) {
	scrapedAt := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)

	offers, err := ParseListing(listingFixture, scrapedAt)
	require.NoError(t, err)
	require.Len(t, offers, 2)

	first := offers[0]
	assert.Equal(t, "4821", first.ID)
	assert.Equal(t, "Tècnic de projectes", first.Title)
	assert.Equal(t, "https://example.org/membres/oferta/4821", first.DetailLink)
	assert.Equal(t, "15/06/2026", first.OfferDateDisplay)
	assert.Equal(t, "2026-06-15", first.OfferDateISO)
	assert.Equal(t, "30/09/2026", first.DeadlineDisplay)
	assert.Equal(t, "2026-09-30", first.DeadlineISO)
	assert.Equal(t, scrapedAt, first.ScrapedAt)

	// Link without the /oferta/<n> shape keeps the offer but leaves the
	// id empty, and the absent deadline stays empty.
	second := offers[1]
	assert.Empty(t, second.ID)
	assert.Equal(t, "Sense identificador", second.Title)
	assert.Equal(t, "2026-06-10", second.OfferDateISO)
	assert.Empty(t, second.DeadlineDisplay)
	assert.Empty(t, second.DeadlineISO)
}

func TestParseListing_EmptyPage(t *testing.T) {
	offers, err := ParseListing("<div></div>", time.Now())
	require.NoError(t, err)
	assert.Empty(t, offers)
}

const detailFixture = `
<div class="offer-detail">
  <h3>Fundació ACME</h3>
  <hr>
  <h3>Responsable de projectes europeus</h3>
  <p><b>ACTIVITAT</b>: Consultoria ambiental</p>
  <p><b>SECTOR</b>: Energia</p>
  <p><b>Tipus de jornada</b>: Completa</p>
  <p><b>REMUNERACIÓ</b>: 32.000 - 38.000 EUR</p>
  <p><b>Ubicació lloc de treball</b>: Barcelona</p>
  <p><b>Data límit</b>: 30/09/2026</p>
  <h4>PERFIL</h4>
  <div class="profile"><p>Titulació universitària</p></div>
  <h4>Tasques</h4>
  <div class="tasks"><ul><li>Gestió de projectes</li></ul></div>
  <p><b>Observacions:</b> Incorporació immediata</p>
  <form id="formOffer" action="/wp-admin/admin-post.php">
    <input name="action" value="apply_offer">
    <input name="offer_id" value="4821">
  </form>
</div>`

func TestParseDetail(t *testing.T) {
	scrapedAt := time.Date(2026, 6, 20, 12, 0, 0, 0, time.UTC)

	detail, form, err := ParseDetail(detailFixture, "https://example.org/membres/oferta/4821", scrapedAt)
	require.NoError(t, err)

	assert.Equal(t, "4821", detail.ID)
	assert.Equal(t, "Fundació ACME", detail.Entity)
	assert.Equal(t, "Responsable de projectes europeus", detail.Role)
	assert.Equal(t, "Consultoria ambiental", detail.Activity)
	assert.Equal(t, "Energia", detail.Sector)
	assert.Equal(t, "Completa", detail.Schedule)
	assert.Equal(t, "32.000 - 38.000 EUR", detail.Compensation)
	assert.Equal(t, "Barcelona", detail.Location)
	assert.Equal(t, "2026-09-30", detail.CVDeadlineISO)
	assert.Contains(t, detail.ProfileHTML, "Titulació universitària")
	assert.Contains(t, detail.TasksHTML, "Gestió de projectes")
	assert.Contains(t, detail.ObservationsHTML, "Incorporació immediata")
	assert.Equal(t, scrapedAt, detail.ScrapedAt)

	require.NotNil(t, form)
	assert.Equal(t, "/wp-admin/admin-post.php", form.Action)
	assert.Equal(t, "apply_offer", form.Fields["action"])
	assert.Equal(t, "4821", form.Fields["offer_id"])
}

func TestParseDetail_LabelMatchIsCaseInsensitive(t *testing.T) {
	markup := `<h3>ACME</h3><p><b>activitat</b>: Serveis</p>`

	detail, _, err := ParseDetail(markup, "https://example.org/membres/oferta/1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "Serveis", detail.Activity)
}

func TestParseDetail_MissingLabelsYieldEmptyValues(t *testing.T) {
	markup := `<h3>ACME</h3>`

	detail, form, err := ParseDetail(markup, "https://example.org/membres/oferta/7", time.Now())
	require.NoError(t, err)
	assert.Equal(t, "7", detail.ID)
	assert.Equal(t, "ACME", detail.Entity)
	assert.Empty(t, detail.Activity)
	assert.Empty(t, detail.ProfileHTML)
	assert.Empty(t, detail.CVDeadlineISO)
	assert.Nil(t, form)
}

func TestParseDetail_MissingEntityHeadingFails(t *testing.T) {
	_, _, err := ParseDetail("<div>no headings</div>", "https://example.org/membres/oferta/9", time.Now())
	assert.Error(t, err)
}
