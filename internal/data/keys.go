// Package data binds the remote API to the cache: read views keyed the same
// way the server routes them, and mutations that declare which keys they
// invalidate.
package data

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
	"github.com/Shahriyor2077/ayoqsh-console/internal/cache"
)

// Invalidation prefixes. A bare resource prefix covers every filtered variant
// and every sub-path, so a user mutation also refreshes the ranking and
// report views that derive from user balances.
var (
	UsersPrefix    = cache.NewKey("/api/users", nil)
	StationsPrefix = cache.NewKey("/api/stations", nil)
	ChecksPrefix   = cache.NewKey("/api/checks", nil)
	StatsPrefix    = cache.NewKey("/api/stats", nil)
	MessagesPrefix = cache.NewKey("/api/messages", nil)
)

// UsersKey addresses the users list, optionally narrowed by role.
func UsersKey(role string) cache.Key {
	if role == "" {
		return cache.NewKey("/api/users", nil)
	}
	return cache.NewKey("/api/users", url.Values{"role": {role}})
}

// StationCustomersKey addresses one station's customer list.
func StationCustomersKey(stationID int64) cache.Key {
	return cache.NewKey(fmt.Sprintf("/api/users/station/%d/customers", stationID), nil)
}

// TopCustomersKey addresses the customer ranking view.
func TopCustomersKey(order string, limit int) cache.Key {
	return cache.NewKey("/api/users/top", url.Values{
		"order": {order},
		"limit": {strconv.Itoa(limit)},
	})
}

// CustomersReportKey addresses the customer report view.
func CustomersReportKey(order string) cache.Key {
	return cache.NewKey("/api/users/report", url.Values{"order": {order}})
}

// StationsKey addresses the stations list.
func StationsKey() cache.Key {
	return cache.NewKey("/api/stations", nil)
}

// ChecksKey addresses one filtered variant of the checks list.
func ChecksKey(filter api.CheckFilter) cache.Key {
	return cache.NewKey("/api/checks", filter.Query())
}

// StatsKey addresses the global stats projection.
func StatsKey() cache.Key {
	return cache.NewKey("/api/stats", nil)
}

// OperatorStatsKey addresses one operator's stats.
func OperatorStatsKey(operatorID int64) cache.Key {
	return cache.NewKey(fmt.Sprintf("/api/stats/operator/%d", operatorID), nil)
}

// MessagesKey addresses the broadcast history.
func MessagesKey() cache.Key {
	return cache.NewKey("/api/messages", nil)
}
