package api

import "time"

// Roles understood by the console. Authorization is enforced remotely; the
// console only uses the role to decide which views to offer.
const (
	RoleAdmin     = "admin"
	RoleModerator = "moderator"
	RoleOperator  = "operator"
	RoleCustomer  = "customer"
)

// Check lifecycle states. Used, cancelled and expired are terminal.
const (
	CheckPending   = "pending"
	CheckUsed      = "used"
	CheckCancelled = "cancelled"
	CheckExpired   = "expired"
)

// User is the remote identity record. BalanceLiters arrives as a decimal
// string and is only meaningful for customers.
type User struct {
	ID            int64  `json:"id"`
	Username      string `json:"username"`
	FullName      string `json:"fullName,omitempty"`
	Role          string `json:"role"`
	StationID     *int64 `json:"stationId,omitempty"`
	Phone         string `json:"phone,omitempty"`
	BalanceLiters string `json:"balanceLiters,omitempty"`
}

// DisplayName prefers the full name, falling back to the username.
func (u *User) DisplayName() string {
	if u == nil {
		return ""
	}
	if u.FullName != "" {
		return u.FullName
	}
	return u.Username
}

// Station is a physical branch where operators issue checks.
type Station struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Address    string `json:"address,omitempty"`
	IsActive   bool   `json:"isActive"`
	CheckCount int    `json:"checkCount,omitempty"`
}

// StationRef is the embedded station summary carried by a check.
type StationRef struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// OperatorRef is the embedded operator summary carried by a check.
type OperatorRef struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	FullName string `json:"fullName,omitempty"`
}

// Check is a redeemable voucher for a liter quantity. QRCode is an image
// payload (data URL) rendered server-side.
type Check struct {
	ID              int64        `json:"id"`
	Code            string       `json:"code"`
	AmountLiters    float64      `json:"amountLiters"`
	Status          string       `json:"status"`
	OperatorID      int64        `json:"operatorId"`
	StationID       int64        `json:"stationId"`
	CustomerName    string       `json:"customerName,omitempty"`
	CustomerPhone   string       `json:"customerPhone,omitempty"`
	CustomerAddress string       `json:"customerAddress,omitempty"`
	CustomerID      *int64       `json:"customerId,omitempty"`
	QRCode          string       `json:"qrCode,omitempty"`
	CreatedAt       time.Time    `json:"createdAt"`
	UsedAt          *time.Time   `json:"usedAt,omitempty"`
	ExpiresAt       time.Time    `json:"expiresAt"`
	Station         *StationRef  `json:"station,omitempty"`
	Operator        *OperatorRef `json:"operator,omitempty"`
}

// Message is a broadcast sent to every customer.
type Message struct {
	ID              int64     `json:"id"`
	Content         string    `json:"content"`
	CreatedAt       time.Time `json:"createdAt"`
	RecipientsCount int       `json:"recipientsCount,omitempty"`
}

// StatsResponse is the global aggregate projection.
type StatsResponse struct {
	TotalCustomers int     `json:"totalCustomers"`
	TotalOperators int     `json:"totalOperators"`
	TotalStations  int     `json:"totalStations"`
	TotalChecks    int     `json:"totalChecks"`
	UsedChecks     int     `json:"usedChecks"`
	PendingChecks  int     `json:"pendingChecks"`
	TotalLiters    float64 `json:"totalLiters"`
	UsedLiters     float64 `json:"usedLiters"`
	PendingLiters  float64 `json:"pendingLiters"`
}

// PeriodStats is one time bucket of an operator's output.
type PeriodStats struct {
	Checks int     `json:"checks"`
	Liters float64 `json:"liters"`
}

// OperatorStats projects one operator's checks per time bucket.
type OperatorStats struct {
	Today PeriodStats `json:"today"`
	Month PeriodStats `json:"month"`
	Total PeriodStats `json:"total"`
}

// TopCustomer is a row of the customer ranking and report views.
type TopCustomer struct {
	ID            int64  `json:"id"`
	FullName      string `json:"fullName,omitempty"`
	Phone         string `json:"phone,omitempty"`
	BalanceLiters string `json:"balanceLiters"`
	UsedChecks    int    `json:"usedChecks,omitempty"`
}

// LoginResponse carries the bearer credential and the authenticated profile.
type LoginResponse struct {
	AccessToken string `json:"accessToken"`
	User        User   `json:"user"`
}

// CreateUserInput creates a user of any role.
type CreateUserInput struct {
	Username  string `json:"username"`
	Password  string `json:"password"`
	FullName  string `json:"fullName,omitempty"`
	Role      string `json:"role"`
	StationID *int64 `json:"stationId,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// UpdateUserInput updates a user; zero-valued fields are omitted.
type UpdateUserInput struct {
	Username  string `json:"username,omitempty"`
	Password  string `json:"password,omitempty"`
	FullName  string `json:"fullName,omitempty"`
	Role      string `json:"role,omitempty"`
	StationID *int64 `json:"stationId,omitempty"`
	Phone     string `json:"phone,omitempty"`
}

// CreateStationInput creates or updates a station.
type CreateStationInput struct {
	Name     string `json:"name"`
	Address  string `json:"address,omitempty"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// CreateCheckInput creates a check. AutoUse asks the server to confirm the
// check immediately instead of leaving it pending.
type CreateCheckInput struct {
	AmountLiters    float64 `json:"amountLiters"`
	StationID       int64   `json:"stationId"`
	CustomerName    string  `json:"customerName,omitempty"`
	CustomerPhone   string  `json:"customerPhone,omitempty"`
	CustomerAddress string  `json:"customerAddress,omitempty"`
	CustomerID      *int64  `json:"customerId,omitempty"`
	AutoUse         bool    `json:"autoUse,omitempty"`
}

// CheckFilter narrows the checks list server-side.
type CheckFilter struct {
	StationID  int64
	Status     string
	OperatorID int64
}

// SendMessageResult reports how many customers received a broadcast.
type SendMessageResult struct {
	Message         Message `json:"message"`
	RecipientsCount int     `json:"recipientsCount"`
}
