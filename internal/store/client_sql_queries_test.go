// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/go-scratch-gift/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildInsertHistoryQuery(t *testing.T) {
	at := time.Date(2026, 12, 24, 18, 0, 0, 0, time.UTC)
	entry := models.HistoryEntry{
		GiftID:    "g1",
		GiftURL:   "http://localhost:3005/gift/g1",
		Theme:     models.ThemeLights,
		Preview:   "Hello",
		CreatedAt: at,
	}

	query, args, err := buildInsertHistoryQuery(entry)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "insert into gift_history")
	assert.Contains(t, q, "on conflict(gift_id)")
	assert.Equal(t, 5, strings.Count(query, "?"))
	assert.NotContains(t, query, "$1")
	assert.Equal(t, []any{"g1", "http://localhost:3005/gift/g1", "lights", "Hello", at}, args)
}

func Test_buildSelectHistoryQuery(t *testing.T) {
	query, args, err := buildSelectHistoryQuery(10)
	require.NoError(t, err)

	q := strings.ToLower(query)
	assert.Contains(t, q, "select gift_id, gift_url, theme, preview, created_at from gift_history")
	assert.Contains(t, q, "order by created_at desc")
	assert.Contains(t, q, "limit 10")
	assert.Empty(t, args)
}

func Test_buildSelectHistoryQuery_NoLimit(t *testing.T) {
	query, _, err := buildSelectHistoryQuery(0)
	require.NoError(t, err)
	assert.NotContains(t, strings.ToLower(query), "limit")
}

func Test_buildDeleteHistoryQuery(t *testing.T) {
	query, args, err := buildDeleteHistoryQuery("g1")
	require.NoError(t, err)

	assert.Equal(t, "DELETE FROM gift_history WHERE gift_id = ?", query)
	assert.Equal(t, []any{"g1"}, args)
}
