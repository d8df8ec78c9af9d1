package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/mock"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/internal/store"
	"github.com/MKhiriev/go-site-keeper/models"
)

func newTestContentSvc(t *testing.T, ctrl *gomock.Controller) (ContentService, *mock.MockLocalStorage, *notify.Recorder) {
	t.Helper()
	storage := mock.NewMockLocalStorage(ctrl)
	rec := notify.NewRecorder(0)
	return NewContentService(storage, rec, logger.Nop()), storage, rec
}

func TestContentService_Capture(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, _, _ := newTestContentSvc(t, ctrl)
	page := newTestPage(t)
	_, err := page.AddModal(`<div id="modal-new-7" class="modal"><p>Nowe wydarzenie</p></div>`)
	require.NoError(t, err)

	snapshot, err := svc.Capture(page)
	require.NoError(t, err)

	assert.Len(t, snapshot.Regions, 3)
	assert.Contains(t, snapshot.Regions[models.RegionMission], "Działamy lokalnie")
	assert.NotContains(t, snapshot.Regions, models.RegionActions, "absent regions stay absent")
	require.Len(t, snapshot.Modals, 1)
	assert.Contains(t, snapshot.Modals[0], `id="modal-new-7"`)
}

func TestContentService_Save_PersistsJSON(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, rec := newTestContentSvc(t, ctrl)
	page := newTestPage(t)
	ctx := context.Background()

	storage.EXPECT().Set(ctx, store.KeyContentSnapshot, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value string) error {
			var raw map[string]any
			require.NoError(t, json.Unmarshal([]byte(value), &raw))
			assert.Contains(t, raw, "mission")
			assert.Contains(t, raw, "news")
			assert.Contains(t, raw, "stats")
			assert.NotContains(t, raw, "actions")
			assert.Equal(t, []any{}, raw["modals"])
			return nil
		},
	)

	_, err := svc.Save(ctx, page)
	require.NoError(t, err)

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, models.SeveritySuccess, last.Severity)
	assert.Equal(t, msgSavedLocally, last.Message)
}

func TestContentService_Save_StorageError(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, rec := newTestContentSvc(t, ctrl)
	ctx := context.Background()

	storage.EXPECT().Set(ctx, store.KeyContentSnapshot, gomock.Any()).Return(errors.New("readonly database"))

	_, err := svc.Save(ctx, newTestPage(t))
	require.Error(t, err)

	last, _ := rec.Last()
	assert.Equal(t, models.SeverityError, last.Severity)
}

func TestContentService_Restore_NothingSaved(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, _ := newTestContentSvc(t, ctrl)
	ctx := context.Background()
	page := newTestPage(t)
	before := render(t, page)

	storage.EXPECT().Get(ctx, store.KeyContentSnapshot).Return("", store.ErrKeyNotFound)

	restored, err := svc.Restore(ctx, page)
	require.NoError(t, err)
	assert.False(t, restored)
	assert.Equal(t, before, render(t, page))
}

func TestContentService_Restore_Malformed(t *testing.T) {
	for _, raw := range []string{`{"mission": `, `null`, `{"news": 42}`, `{"modals": [{"x": 1}]}`} {
		t.Run(raw, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			svc, storage, _ := newTestContentSvc(t, ctrl)
			ctx := context.Background()
			page := newTestPage(t)
			before := render(t, page)

			storage.EXPECT().Get(ctx, store.KeyContentSnapshot).Return(raw, nil)

			restored, err := svc.Restore(ctx, page)
			require.ErrorIs(t, err, ErrMalformedPersistedState)
			assert.False(t, restored)
			assert.Equal(t, before, render(t, page), "page must be untouched")
		})
	}
}

func TestContentService_Restore_NullRegionKeepsPage(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, _ := newTestContentSvc(t, ctrl)
	ctx := context.Background()
	page := newTestPage(t)
	before, err := page.Region(models.RegionMission)
	require.NoError(t, err)

	storage.EXPECT().Get(ctx, store.KeyContentSnapshot).Return(`{"mission":null,"modals":[]}`, nil)

	_, err = svc.Restore(ctx, page)
	require.NoError(t, err)

	after, err := page.Region(models.RegionMission)
	require.NoError(t, err)
	assert.Equal(t, before, after)
	assert.Contains(t, after, "Działamy lokalnie")
}

func TestContentService_Restore_AppliesAndIsIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, _ := newTestContentSvc(t, ctrl)
	ctx := context.Background()

	saved := `{"mission":"<div class=\"mission-card\"><h3>Nowa misja</h3></div>",` +
		`"actions":"<div class=\"action-card\">brak w stronie</div>",` +
		`"modals":["<div id=\"modal-new-1\" class=\"modal\"><p>Zapisany</p></div>"]}`
	storage.EXPECT().Get(ctx, store.KeyContentSnapshot).Return(saved, nil).Times(2)

	page := newTestPage(t)

	restored, err := svc.Restore(ctx, page)
	require.NoError(t, err)
	require.True(t, restored)
	once := render(t, page)

	restored, err = svc.Restore(ctx, page)
	require.NoError(t, err)
	require.True(t, restored)
	assert.Equal(t, once, render(t, page))

	doc, err := page.Capture()
	require.NoError(t, err)
	assert.Contains(t, doc.Regions[models.RegionMission], "Nowa misja")
	assert.NotContains(t, doc.Regions[models.RegionMission], "Działamy lokalnie")
	assert.Contains(t, doc.Regions[models.RegionNews], "Pierwsza wiadomość", "regions missing from the snapshot are kept")
	assert.NotContains(t, doc.Regions, models.RegionActions, "regions missing from the page are skipped")
	assert.Len(t, doc.Modals, 1)
}

// TestContentService_SaveRestoreRoundTrip captures an edited page and
// restores it into a pristine one.
func TestContentService_SaveRestoreRoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	svc, storage, _ := newTestContentSvc(t, ctrl)
	ctx := context.Background()

	edited := newTestPage(t)
	require.NoError(t, edited.SetRegion(models.RegionNews, `<div class="news-card"><p>Zmieniona</p></div>`))
	_, err := edited.AddModal(`<div id="modal-new-2"><p>Dodany</p></div>`)
	require.NoError(t, err)

	var stored string
	storage.EXPECT().Set(ctx, store.KeyContentSnapshot, gomock.Any()).DoAndReturn(
		func(_ context.Context, _ string, value string) error {
			stored = value
			return nil
		},
	)
	storage.EXPECT().Get(ctx, store.KeyContentSnapshot).DoAndReturn(
		func(context.Context, string) (string, error) { return stored, nil },
	)

	want, err := svc.Save(ctx, edited)
	require.NoError(t, err)

	fresh := newTestPage(t)
	_, err = svc.Restore(ctx, fresh)
	require.NoError(t, err)

	got, err := svc.Capture(fresh)
	require.NoError(t, err)
	assert.Equal(t, want, got)
}
