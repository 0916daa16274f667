// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-auth-gate/internal/logger"
	"github.com/MKhiriev/go-auth-gate/internal/store"
)

// tokenSweeper periodically clears bearer tokens whose expiry has passed.
//
// Expired tokens are already rejected at validation time; the sweeper only
// keeps the users table from accumulating stale token values indefinitely.
type tokenSweeper struct {
	userRepository store.UserRepository
	interval       time.Duration
	now            func() time.Time
	logger         *logger.Logger

	stopOnce sync.Once
	done     chan struct{}
}

func newTokenSweeper(userRepository store.UserRepository, interval time.Duration, logger *logger.Logger) *tokenSweeper {
	return &tokenSweeper{
		userRepository: userRepository,
		interval:       interval,
		now:            time.Now,
		logger:         logger,
		done:           make(chan struct{}),
	}
}

func (s *tokenSweeper) Run() {
	go s.loop()
}

func (s *tokenSweeper) Stop() {
	s.stopOnce.Do(func() {
		close(s.done)
	})
}

func (s *tokenSweeper) loop() {
	s.logger.Info().Dur("interval", s.interval).Msg("token sweeper started")

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			s.logger.Info().Msg("token sweeper stopped")
			return
		case <-ticker.C:
			s.sweep()
		}
	}
}

func (s *tokenSweeper) sweep() {
	cleared, err := s.userRepository.ClearExpiredTokens(context.Background(), s.now())
	if err != nil {
		s.logger.Err(err).Msg("sweep of expired tokens failed")
		return
	}

	if cleared > 0 {
		s.logger.Debug().Int64("cleared", cleared).Msg("expired tokens cleared")
	}
}
