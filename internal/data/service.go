package data

import (
	"context"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
	"github.com/Shahriyor2077/ayoqsh-console/internal/cache"
	"github.com/Shahriyor2077/ayoqsh-console/internal/notify"
)

// Service exposes the console's read views and mutations over the shared
// cache. Reads go through the cache; mutations hit the API directly and then
// invalidate their declared key prefixes before returning.
type Service struct {
	api      *api.Client
	cache    *cache.Store
	notifier notify.Notifier
}

// NewService wires the data layer.
func NewService(client *api.Client, cacheStore *cache.Store, notifier notify.Notifier) *Service {
	return &Service{api: client, cache: cacheStore, notifier: notifier}
}

// Users lists users, optionally narrowed to one role.
func (s *Service) Users(ctx context.Context, role string) ([]api.User, error) {
	return cache.GetAs(ctx, s.cache, UsersKey(role), 0, func(ctx context.Context) ([]api.User, error) {
		return s.api.ListUsers(ctx, role)
	})
}

// StationCustomers lists the customers of one station.
func (s *Service) StationCustomers(ctx context.Context, stationID int64) ([]api.User, error) {
	return cache.GetAs(ctx, s.cache, StationCustomersKey(stationID), 0, func(ctx context.Context) ([]api.User, error) {
		return s.api.StationCustomers(ctx, stationID)
	})
}

// Stations lists every station.
func (s *Service) Stations(ctx context.Context) ([]api.Station, error) {
	return cache.GetAs(ctx, s.cache, StationsKey(), 0, func(ctx context.Context) ([]api.Station, error) {
		return s.api.ListStations(ctx)
	})
}

// Checks lists checks matching the server-side filter.
func (s *Service) Checks(ctx context.Context, filter api.CheckFilter) ([]api.Check, error) {
	return cache.GetAs(ctx, s.cache, ChecksKey(filter), 0, func(ctx context.Context) ([]api.Check, error) {
		return s.api.ListChecks(ctx, filter)
	})
}

// Stats returns the global aggregate projection.
func (s *Service) Stats(ctx context.Context) (*api.StatsResponse, error) {
	return cache.GetAs(ctx, s.cache, StatsKey(), 0, func(ctx context.Context) (*api.StatsResponse, error) {
		return s.api.Stats(ctx)
	})
}

// OperatorStats returns one operator's per-period output.
func (s *Service) OperatorStats(ctx context.Context, operatorID int64) (*api.OperatorStats, error) {
	return cache.GetAs(ctx, s.cache, OperatorStatsKey(operatorID), 0, func(ctx context.Context) (*api.OperatorStats, error) {
		return s.api.OperatorStats(ctx, operatorID)
	})
}

// Messages lists past broadcasts.
func (s *Service) Messages(ctx context.Context) ([]api.Message, error) {
	return cache.GetAs(ctx, s.cache, MessagesKey(), 0, func(ctx context.Context) ([]api.Message, error) {
		return s.api.ListMessages(ctx)
	})
}

// TopCustomers returns the customer ranking.
func (s *Service) TopCustomers(ctx context.Context, order string, limit int) ([]api.TopCustomer, error) {
	return cache.GetAs(ctx, s.cache, TopCustomersKey(order, limit), 0, func(ctx context.Context) ([]api.TopCustomer, error) {
		return s.api.TopCustomers(ctx, order, limit)
	})
}

// CustomersReport returns the full customer report.
func (s *Service) CustomersReport(ctx context.Context, order string) ([]api.TopCustomer, error) {
	return cache.GetAs(ctx, s.cache, CustomersReportKey(order), 0, func(ctx context.Context) ([]api.TopCustomer, error) {
		return s.api.CustomersReport(ctx, order)
	})
}

// ExportCustomersExcel downloads the customer report spreadsheet. Not cached:
// the payload is a one-shot binary download.
func (s *Service) ExportCustomersExcel(ctx context.Context) ([]byte, error) {
	raw, err := s.api.ExportCustomersExcel(ctx)
	if err != nil {
		s.notifier.Error("Xatolik", "Excel yuklab olishda xatolik")
		return nil, err
	}
	return raw, nil
}
