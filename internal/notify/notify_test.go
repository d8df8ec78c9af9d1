// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notify

import (
	"bytes"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/models"
)

func fixedNow(t *testing.T) time.Time {
	t.Helper()
	at := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	prev := now
	now = func() time.Time { return at }
	t.Cleanup(func() { now = prev })
	return at
}

func TestHelpers_SetSeverityAndTime(t *testing.T) {
	at := fixedNow(t)
	r := NewRecorder(0)

	Success(r, "saved")
	Info(r, "encrypting")
	Error(r, "failed")

	assert.Equal(t, []models.Notification{
		{Severity: models.SeveritySuccess, Message: "saved", At: at},
		{Severity: models.SeverityInfo, Message: "encrypting", At: at},
		{Severity: models.SeverityError, Message: "failed", At: at},
	}, r.Recent())
}

func TestHelpers_NilNotifier(t *testing.T) {
	assert.NotPanics(t, func() { Success(nil, "ignored") })
}

func TestRecorder_DropsOldest(t *testing.T) {
	r := NewRecorder(2)

	Info(r, "one")
	Info(r, "two")
	Info(r, "three")

	recent := r.Recent()
	require.Len(t, recent, 2)
	assert.Equal(t, "two", recent[0].Message)
	assert.Equal(t, "three", recent[1].Message)

	last, ok := r.Last()
	require.True(t, ok)
	assert.Equal(t, "three", last.Message)
}

func TestRecorder_Empty(t *testing.T) {
	r := NewRecorder(3)
	_, ok := r.Last()
	assert.False(t, ok)
	assert.Empty(t, r.Recent())
}

func TestRecorder_Concurrent(t *testing.T) {
	r := NewRecorder(5)
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			Success(r, "ok")
		}()
	}
	wg.Wait()
	assert.Len(t, r.Recent(), 5)
}

func TestMulti_FansOut(t *testing.T) {
	a, b := NewRecorder(0), NewRecorder(0)
	m := Multi(a, nil, b)

	Error(m, "boom")

	assert.Len(t, a.Recent(), 1)
	assert.Len(t, b.Recent(), 1)
}

func TestTerminal_PrintsEachSeverity(t *testing.T) {
	var buf bytes.Buffer
	term := NewTerminal(&buf)

	Info(term, "Encrypting...")
	Success(term, "Changes saved")
	Error(term, "Publish failed: conflict")
	term.Close()

	out := buf.String()
	assert.Contains(t, out, "Encrypting...")
	assert.Contains(t, out, "Changes saved")
	assert.Contains(t, out, "Publish failed: conflict")
}

func TestLogNotifier_DoesNotPanic(t *testing.T) {
	n := NewLogNotifier(logger.Nop())
	assert.NotPanics(t, func() {
		Success(n, "saved")
		Error(n, "failed")
	})
}
