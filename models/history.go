// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// HistoryEntry is a gift link the local user created, kept in the client's
// own database so the share link can be found again later.
type HistoryEntry struct {
	GiftID    string    `db:"gift_id"`
	GiftURL   string    `db:"gift_url"`
	Theme     Theme     `db:"theme"`
	Preview   string    `db:"preview"`
	CreatedAt time.Time `db:"created_at"`
}
