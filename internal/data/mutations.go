package data

import (
	"context"
	"fmt"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
)

// Mutations validate input shape, call the remote API, apply their declared
// cache invalidations synchronously on success, and fire a notification as a
// side channel. The notification never changes the returned result.

// CreateUser registers a user and refreshes the users views.
func (s *Service) CreateUser(ctx context.Context, input api.CreateUserInput) (*api.User, error) {
	if err := validateCreateUser(input); err != nil {
		return nil, err
	}

	user, err := s.api.CreateUser(ctx, input)
	if err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return nil, err
	}

	s.cache.Invalidate(UsersPrefix)
	s.notifier.Success("Muvaffaqiyat", "Foydalanuvchi yaratildi")
	return user, nil
}

// UpdateUser applies a partial update and refreshes the users views.
func (s *Service) UpdateUser(ctx context.Context, id int64, input api.UpdateUserInput) (*api.User, error) {
	user, err := s.api.UpdateUser(ctx, id, input)
	if err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return nil, err
	}

	s.cache.Invalidate(UsersPrefix)
	s.notifier.Success("Muvaffaqiyat", "Foydalanuvchi yangilandi")
	return user, nil
}

// DeleteUser removes a user and refreshes the users views.
func (s *Service) DeleteUser(ctx context.Context, id int64) error {
	if err := s.api.DeleteUser(ctx, id); err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return err
	}

	s.cache.Invalidate(UsersPrefix)
	s.notifier.Success("Muvaffaqiyat", "Foydalanuvchi o'chirildi")
	return nil
}

// CreateStation registers a station and refreshes the stations list.
func (s *Service) CreateStation(ctx context.Context, input api.CreateStationInput) (*api.Station, error) {
	if err := validateCreateStation(input); err != nil {
		return nil, err
	}

	station, err := s.api.CreateStation(ctx, input)
	if err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return nil, err
	}

	s.cache.Invalidate(StationsPrefix)
	s.notifier.Success("Muvaffaqiyat", "Shaxobcha yaratildi")
	return station, nil
}

// UpdateStation applies a partial update and refreshes the stations list.
func (s *Service) UpdateStation(ctx context.Context, id int64, input api.CreateStationInput) (*api.Station, error) {
	station, err := s.api.UpdateStation(ctx, id, input)
	if err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return nil, err
	}

	s.cache.Invalidate(StationsPrefix)
	s.notifier.Success("Muvaffaqiyat", "Shaxobcha yangilandi")
	return station, nil
}

// DeleteStation removes a station and refreshes the stations list.
func (s *Service) DeleteStation(ctx context.Context, id int64) error {
	if err := s.api.DeleteStation(ctx, id); err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return err
	}

	s.cache.Invalidate(StationsPrefix)
	s.notifier.Success("Muvaffaqiyat", "Shaxobcha o'chirildi")
	return nil
}

// CreateCheck issues a check and refreshes every checks variant plus the
// stats projections.
func (s *Service) CreateCheck(ctx context.Context, input api.CreateCheckInput) (*api.Check, error) {
	if err := validateCreateCheck(input); err != nil {
		return nil, err
	}

	check, err := s.api.CreateCheck(ctx, input)
	if err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return nil, err
	}

	s.cache.Invalidate(ChecksPrefix)
	s.cache.Invalidate(StatsPrefix)
	s.notifier.Success("Muvaffaqiyat", "Chek yaratildi")
	return check, nil
}

// ConfirmCheck marks a check used; liters accrue to the customer, so both the
// checks variants and the stats projections go stale.
func (s *Service) ConfirmCheck(ctx context.Context, id int64) (*api.Check, error) {
	check, err := s.api.ConfirmCheck(ctx, id)
	if err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return nil, err
	}

	s.cache.Invalidate(ChecksPrefix)
	s.cache.Invalidate(StatsPrefix)
	s.notifier.Success("Muvaffaqiyat", "Chek tasdiqlandi")
	return check, nil
}

// CancelCheck voids a pending check and refreshes the checks variants.
func (s *Service) CancelCheck(ctx context.Context, id int64) (*api.Check, error) {
	check, err := s.api.CancelCheck(ctx, id)
	if err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return nil, err
	}

	s.cache.Invalidate(ChecksPrefix)
	s.notifier.Success("Muvaffaqiyat", "Chek bekor qilindi")
	return check, nil
}

// SendMessage broadcasts to every customer and refreshes the history.
func (s *Service) SendMessage(ctx context.Context, content string) (*api.SendMessageResult, error) {
	if err := validateMessage(content); err != nil {
		return nil, err
	}

	result, err := s.api.SendMessage(ctx, content)
	if err != nil {
		s.notifier.Error("Xatolik", err.Error())
		return nil, err
	}

	s.cache.Invalidate(MessagesPrefix)
	s.notifier.Success("Muvaffaqiyat", fmt.Sprintf("Xabar %d ta mijozga yuborildi", result.RecipientsCount))
	return result, nil
}
