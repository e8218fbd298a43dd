package service

import (
	"context"
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"github.com/getnaildla/salon-frontdesk/internal/api/metrics"
	"github.com/getnaildla/salon-frontdesk/internal/core/domain"
	"github.com/getnaildla/salon-frontdesk/internal/core/ports"
)

// RosterService serves the read-mostly reference data: the technician
// roster and the price list. Reads go through an optional cache; cache
// failures degrade to a remote fetch and are never surfaced.
type RosterService struct {
	repo  ports.SalonRepository
	cache ports.RosterCache // nil when no cache is configured
	log   zerolog.Logger
}

func NewRosterService(repo ports.SalonRepository, cache ports.RosterCache, log zerolog.Logger) *RosterService {
	return &RosterService{repo: repo, cache: cache, log: log}
}

// Technicians returns the roster sorted by name.
func (s *RosterService) Technicians(ctx context.Context) ([]domain.Technician, error) {
	if s.cache != nil {
		techs, ok, err := s.cache.GetTechnicians(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("roster cache read failed, falling back to remote")
		} else if ok {
			metrics.RosterCacheTotal.WithLabelValues("hit").Inc()
			return techs, nil
		}
		metrics.RosterCacheTotal.WithLabelValues("miss").Inc()
	}

	techs, err := s.repo.ListTechnicians(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(techs, func(i, j int) bool {
		return techs[i].Name < techs[j].Name
	})

	if s.cache != nil {
		if err := s.cache.SetTechnicians(ctx, techs); err != nil {
			s.log.Warn().Err(err).Msg("roster cache write failed")
		}
	}
	return techs, nil
}

// Services returns the price list sorted by category (case-insensitive),
// then name.
func (s *RosterService) Services(ctx context.Context) ([]domain.Service, error) {
	if s.cache != nil {
		services, ok, err := s.cache.GetServices(ctx)
		if err != nil {
			s.log.Warn().Err(err).Msg("roster cache read failed, falling back to remote")
		} else if ok {
			metrics.RosterCacheTotal.WithLabelValues("hit").Inc()
			return services, nil
		}
		metrics.RosterCacheTotal.WithLabelValues("miss").Inc()
	}

	services, err := s.repo.ListServices(ctx)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(services, func(i, j int) bool {
		ci := strings.ToLower(services[i].Category)
		cj := strings.ToLower(services[j].Category)
		if ci != cj {
			return ci < cj
		}
		return services[i].Name < services[j].Name
	})

	if s.cache != nil {
		if err := s.cache.SetServices(ctx, services); err != nil {
			s.log.Warn().Err(err).Msg("roster cache write failed")
		}
	}
	return services, nil
}

// Invalidate drops the cached roster so the next read refetches.
func (s *RosterService) Invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx); err != nil {
		s.log.Warn().Err(err).Msg("roster cache invalidation failed")
	}
}
