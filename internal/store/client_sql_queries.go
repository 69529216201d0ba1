// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-scratch-gift/models"
)

const historyTable = "gift_history"

var historyColumns = []string{"gift_id", "gift_url", "theme", "preview", "created_at"}

// SQLite understands "?" placeholders.
var sqlite = sq.StatementBuilder.PlaceholderFormat(sq.Question)

// buildInsertHistoryQuery upserts entry by gift id.
func buildInsertHistoryQuery(entry models.HistoryEntry) (string, []any, error) {
	return sqlite.
		Insert(historyTable).
		Columns(historyColumns...).
		Values(entry.GiftID, entry.GiftURL, string(entry.Theme), entry.Preview, entry.CreatedAt).
		Suffix("ON CONFLICT(gift_id) DO UPDATE SET gift_url = excluded.gift_url").
		ToSql()
}

// buildSelectHistoryQuery lists entries newest first. A zero limit means all.
func buildSelectHistoryQuery(limit uint64) (string, []any, error) {
	query := sqlite.
		Select(historyColumns...).
		From(historyTable).
		OrderBy("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}

	return query.ToSql()
}

func buildDeleteHistoryQuery(giftID string) (string, []any, error) {
	return sqlite.
		Delete(historyTable).
		Where(sq.Eq{"gift_id": giftID}).
		ToSql()
}
