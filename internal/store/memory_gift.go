// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-scratch-gift/internal/logger"
	"github.com/MKhiriev/go-scratch-gift/models"
)

// memoryGiftStorage is the process-local [GiftStorage]. Records are lost on
// restart.
//
// A single mutex guards both maps, so a quota check and the insert it admits
// happen atomically and a sweep is never observed half done.
type memoryGiftStorage struct {
	mu     sync.Mutex
	gifts  map[string]models.Gift
	counts map[string]int

	ids    IDGenerator
	now    func() time.Time
	logger *logger.Logger
}

// NewMemoryGiftStorage returns an empty in-memory [GiftStorage].
func NewMemoryGiftStorage(ids IDGenerator, logger *logger.Logger) GiftStorage {
	return newMemoryGiftStorage(ids, time.Now, logger)
}

func newMemoryGiftStorage(ids IDGenerator, now func() time.Time, logger *logger.Logger) *memoryGiftStorage {
	return &memoryGiftStorage{
		gifts:  make(map[string]models.Gift),
		counts: make(map[string]int),
		ids:    ids,
		now:    now,
		logger: logger,
	}
}

func (s *memoryGiftStorage) Create(ctx context.Context, gift models.Gift) (models.Gift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.counts[gift.CreatorAddress] >= models.MaxGiftsPerAddress {
		return models.Gift{}, ErrQuotaExceeded
	}

	for {
		gift.ID = s.ids.Generate()
		if _, taken := s.gifts[gift.ID]; !taken {
			break
		}
	}
	gift.CreatedAt = s.now()

	s.gifts[gift.ID] = gift
	s.counts[gift.CreatorAddress]++

	logger.FromContext(ctx).Debug().
		Str("gift_id", gift.ID).
		Int("count", s.counts[gift.CreatorAddress]).
		Msg("gift stored")

	return gift, nil
}

func (s *memoryGiftStorage) Get(_ context.Context, id string) (models.Gift, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	gift, ok := s.gifts[id]
	if !ok {
		return models.Gift{}, ErrGiftNotFound
	}

	return gift, nil
}

func (s *memoryGiftStorage) RemainingQuota(_ context.Context, address string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return max(0, models.MaxGiftsPerAddress-s.counts[address])
}

func (s *memoryGiftStorage) Sweep(_ context.Context, now time.Time) []models.Gift {
	s.mu.Lock()
	defer s.mu.Unlock()

	var removed []models.Gift
	for id, gift := range s.gifts {
		if gift.ExpiredAt(now) {
			removed = append(removed, gift)
			delete(s.gifts, id)
		}
	}

	counts := make(map[string]int, len(s.counts))
	for _, gift := range s.gifts {
		counts[gift.CreatorAddress]++
	}
	s.counts = counts

	s.logger.Info().
		Int("removed", len(removed)).
		Int("remaining", len(s.gifts)).
		Msg("expired gifts swept")

	return removed
}
