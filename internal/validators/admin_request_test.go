package validators

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/models"
)

func TestNewAdminRequestValidator(t *testing.T) {
	v := NewAdminRequestValidator()
	require.NotNil(t, v)
}

func TestValidate_Dispatch(t *testing.T) {
	v := NewAdminRequestValidator()
	ctx := context.Background()

	assert.NoError(t, v.Validate(ctx, models.PasswordRequest{Password: "x"}))
	assert.NoError(t, v.Validate(ctx, &models.PasswordRequest{Password: "x"}))
	assert.NoError(t, v.Validate(ctx, models.MarkupRequest{Markup: "<p>x</p>"}))
	assert.NoError(t, v.Validate(ctx, &models.MarkupRequest{}))
	assert.ErrorIs(t, v.Validate(ctx, "plain string"), ErrUnsupportedType)
}

func TestValidate_PasswordRequest(t *testing.T) {
	tests := []struct {
		name     string
		password string
		fields   []string
		wantErr  error
	}{
		{name: "ok", password: "tajne"},
		{name: "empty is left to login", password: ""},
		{name: "at limit", password: strings.Repeat("a", MaxPasswordLength)},
		{name: "too long", password: strings.Repeat("a", MaxPasswordLength+1), wantErr: ErrPasswordTooLong},
		{name: "unknown field", password: "x", fields: []string{FieldMarkup}, wantErr: ErrUnknownField},
	}

	v := NewAdminRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.PasswordRequest{Password: tt.password}, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestValidate_MarkupRequest(t *testing.T) {
	tests := []struct {
		name    string
		markup  string
		fields  []string
		wantErr error
	}{
		{name: "region markup", markup: "<div>x</div>"},
		{name: "empty region clears it", markup: ""},
		{name: "too large", markup: strings.Repeat("a", MaxMarkupSize+1), wantErr: ErrMarkupTooLarge},
		{name: "required and present", markup: "<div id=\"modal-new-1\"></div>", fields: []string{FieldMarkupRequired, FieldMarkup}},
		{name: "required but empty", markup: "", fields: []string{FieldMarkupRequired}, wantErr: ErrEmptyMarkup},
		{name: "unknown field", markup: "x", fields: []string{FieldPassword}, wantErr: ErrUnknownField},
	}

	v := NewAdminRequestValidator()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(context.Background(), models.MarkupRequest{Markup: tt.markup}, tt.fields...)
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
