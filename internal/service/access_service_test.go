package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-site-keeper/internal/adapter"
	"github.com/MKhiriev/go-site-keeper/internal/crypto"
	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/mock"
	"github.com/MKhiriev/go-site-keeper/internal/notify"
	"github.com/MKhiriev/go-site-keeper/internal/siteconfig"
	"github.com/MKhiriev/go-site-keeper/models"
)

type stubPublisher struct {
	PublishService

	path    string
	content []byte
	message string
	err     error
}

func (p *stubPublisher) PublishAuxiliaryFile(_ context.Context, path string, content []byte, message string) (models.RemoteFileRevision, error) {
	p.path, p.content, p.message = path, content, message
	if p.err != nil {
		return models.RemoteFileRevision{}, p.err
	}
	return models.RemoteFileRevision{Path: path, RevisionID: "cfg-2"}, nil
}

func newTestAccessSvc(t *testing.T, ctrl *gomock.Controller, creds *stubCredentials, pub *stubPublisher) (
	*accessService,
	*mock.MockSecretCodec,
	*mock.MockSiteFiles,
	*notify.Recorder,
) {
	t.Helper()
	codec := mock.NewMockSecretCodec(ctrl)
	site := mock.NewMockSiteFiles(ctrl)
	rec := notify.NewRecorder(0)
	svc := NewAccessService(codec, creds, pub, site, rec, "js/config.js", logger.Nop()).(*accessService)
	svc.now = func() time.Time { return time.Date(2026, 2, 3, 4, 5, 6, 0, time.Local) }
	return svc, codec, site, rec
}

func TestShareAccess_Success(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := &stubCredentials{token: "ghp_token", state: models.StateAdminOnline}
	pub := &stubPublisher{}
	svc, codec, site, rec := newTestAccessSvc(t, ctrl, creds, pub)
	ctx := context.Background()

	record := models.EncryptedSecretRecord{Cipher: "Y2lwaGVy", IV: "AAECAwQFBgcICQoL", Salt: "salt-uuid"}
	codec.EXPECT().Encrypt("ghp_token", "admin").Return(record, nil)
	site.EXPECT().WriteConfigArtifact(ctx, gomock.Any()).DoAndReturn(
		func(_ context.Context, data []byte) error {
			assert.Equal(t, pub.content, data, "local and remote artifacts must match")
			return nil
		},
	)

	got, err := svc.ShareAccess(ctx, "admin")
	require.NoError(t, err)
	assert.Equal(t, record, got)

	assert.Equal(t, "js/config.js", pub.path)
	assert.Equal(t, ShareAccessCommitMessage, pub.message)
	assert.NotContains(t, string(pub.content), "ghp_token")
	assert.Contains(t, string(pub.content), "Last Updated: 2026-02-03 04:05:06")

	cfg, err := siteconfig.Parse(pub.content)
	require.NoError(t, err)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, record, *cfg.Auth)

	require.NotNil(t, creds.shared)
	assert.Equal(t, record, *creds.shared)

	recent := rec.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, models.SeverityInfo, recent[0].Severity)
	assert.Equal(t, models.SeveritySuccess, recent[1].Severity)
}

func TestShareAccess_NoToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := &stubPublisher{}
	svc, _, _, _ := newTestAccessSvc(t, ctrl, &stubCredentials{state: models.StateAdminLocal}, pub)

	_, err := svc.ShareAccess(context.Background(), "admin")
	require.ErrorIs(t, err, ErrNoAccessToken)
	assert.Empty(t, pub.path)
}

func TestShareAccess_EmptyPassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	pub := &stubPublisher{}
	svc, _, _, _ := newTestAccessSvc(t, ctrl, &stubCredentials{token: "ghp_token"}, pub)

	_, err := svc.ShareAccess(context.Background(), "")
	require.ErrorIs(t, err, crypto.ErrEmptyPassword)
	assert.Empty(t, pub.path)
}

func TestShareAccess_PublishFailureKeepsOldRecord(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := &stubCredentials{token: "ghp_token"}
	pub := &stubPublisher{err: adapter.ErrConflict}
	svc, codec, _, rec := newTestAccessSvc(t, ctrl, creds, pub)

	codec.EXPECT().Encrypt("ghp_token", "admin").Return(models.EncryptedSecretRecord{Cipher: "c", IV: "i", Salt: "s"}, nil)
	// no WriteConfigArtifact expectation: the local copy must not be written

	_, err := svc.ShareAccess(context.Background(), "admin")
	require.ErrorIs(t, err, adapter.ErrConflict)
	assert.Nil(t, creds.shared)

	last, _ := rec.Last()
	assert.Equal(t, models.SeverityError, last.Severity)
}

func TestShareAccess_LocalWriteFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	creds := &stubCredentials{token: "ghp_token"}
	svc, codec, site, _ := newTestAccessSvc(t, ctrl, creds, &stubPublisher{})
	ctx := context.Background()

	record := models.EncryptedSecretRecord{Cipher: "c", IV: "i", Salt: "s"}
	codec.EXPECT().Encrypt("ghp_token", "admin").Return(record, nil)
	site.EXPECT().WriteConfigArtifact(ctx, gomock.Any()).Return(errors.New("permission denied"))

	got, err := svc.ShareAccess(ctx, "admin")
	require.Error(t, err)
	assert.Equal(t, record, got, "the published record is still returned")
	require.NotNil(t, creds.shared)
}
