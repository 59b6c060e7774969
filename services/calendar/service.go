// Package calendar manages the availability calendar: the set of dates
// administrators pre-open for instant self-service reservations.
package calendar

import (
	"context"
	"time"

	calendarRepo "eccos/database/repository/calendar"
	"eccos/models"
	"eccos/utils"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// CalendarService exposes calendar reads and admin mutations.
type CalendarService interface {
	IsDateOpen(date string) (bool, error)
	ListRange(from, to string) ([]models.OpenDate, error)
	OpenDate(date, adminUID string) error
	CloseDate(date string) error
}

// DefaultCalendarService backs reads with a short-TTL Redis cache; mutations
// invalidate the per-date key.
type DefaultCalendarService struct {
	Repo  calendarRepo.CalendarRepository
	Cache *redis.Client
}

func (s *DefaultCalendarService) IsDateOpen(date string) (bool, error) {
	ctx := context.Background()
	key := utils.CalendarCachePrefix + date

	if s.Cache != nil {
		cached, err := s.Cache.Get(ctx, key).Result()
		if err == nil {
			return cached == "1", nil
		}
		if err != redis.Nil {
			utils.GetLogger().Warn("calendar cache read failed, falling back to store",
				zap.String("date", date), zap.Error(err))
		}
	}

	open, err := s.Repo.IsDateOpen(date)
	if err != nil {
		return false, err
	}

	if s.Cache != nil {
		val := "0"
		if open {
			val = "1"
		}
		_ = s.Cache.Set(ctx, key, val, utils.CalendarCacheTTL).Err()
	}
	return open, nil
}

func (s *DefaultCalendarService) ListRange(from, to string) ([]models.OpenDate, error) {
	return s.Repo.ListRange(from, to)
}

func (s *DefaultCalendarService) OpenDate(date, adminUID string) error {
	if err := s.Repo.OpenDate(date, adminUID); err != nil {
		return err
	}
	s.invalidate(date)
	return nil
}

func (s *DefaultCalendarService) CloseDate(date string) error {
	if err := s.Repo.CloseDate(date); err != nil {
		return err
	}
	s.invalidate(date)
	return nil
}

func (s *DefaultCalendarService) invalidate(date string) {
	if s.Cache == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	_ = s.Cache.Del(ctx, utils.CalendarCachePrefix+date).Err()
}
