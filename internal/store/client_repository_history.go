// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/models"
)

type localHistoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalHistoryRepository(db *DB, logger *logger.Logger) LocalHistoryRepository {
	return &localHistoryRepository{
		DB:     db,
		logger: logger,
	}
}

func (l *localHistoryRepository) SaveEntry(ctx context.Context, entry models.HistoryEntry) error {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertHistoryQuery(entry)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := l.DB.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localHistoryRepository.SaveEntry").
			Str("gift_id", entry.GiftID).
			Msg("failed to insert history entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrHistoryNotSaved
	}

	return nil
}

func (l *localHistoryRepository) ListEntries(ctx context.Context, limit uint64) ([]models.HistoryEntry, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectHistoryQuery(limit)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "localHistoryRepository.ListEntries").
			Msg("failed to query history")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	var entries []models.HistoryEntry
	for rows.Next() {
		var entry models.HistoryEntry
		if err = rows.Scan(
			&entry.GiftID,
			&entry.GiftURL,
			&entry.Theme,
			&entry.Preview,
			&entry.CreatedAt,
		); err != nil {
			log.Err(err).
				Str("func", "localHistoryRepository.ListEntries").
				Msg("failed to scan history row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		entries = append(entries, entry)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entries, nil
}

func (l *localHistoryRepository) DeleteEntry(ctx context.Context, giftID string) error {
	query, args, err := buildDeleteHistoryQuery(giftID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = l.DB.ExecContext(ctx, query, args...); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localHistoryRepository.DeleteEntry").
			Str("gift_id", giftID).
			Msg("failed to delete history entry")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
