package data

import (
	"strings"

	"github.com/Shahriyor2077/ayoqsh-console/internal/api"
)

// MaxCheckLiters caps a single check. The server enforces its own limit; this
// is the shape check that keeps obviously bad input off the network.
const MaxCheckLiters = 10000

// ValidationError is a client-side shape failure. It blocks the request
// before anything reaches the network.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func requireString(value, field, message string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{Field: field, Message: message}
	}
	return nil
}

func validateCreateUser(input api.CreateUserInput) error {
	if err := requireString(input.Username, "username", "Foydalanuvchi nomi kiritilishi shart"); err != nil {
		return err
	}
	if err := requireString(input.Password, "password", "Parol kiritilishi shart"); err != nil {
		return err
	}
	if err := requireString(input.Role, "role", "Rol kiritilishi shart"); err != nil {
		return err
	}
	return nil
}

func validateCreateStation(input api.CreateStationInput) error {
	return requireString(input.Name, "name", "Shaxobcha nomi kiritilishi shart")
}

func validateCreateCheck(input api.CreateCheckInput) error {
	if input.AmountLiters <= 0 {
		return &ValidationError{Field: "amountLiters", Message: "Litr miqdori musbat bo'lishi kerak"}
	}
	if input.AmountLiters > MaxCheckLiters {
		return &ValidationError{Field: "amountLiters", Message: "Litr miqdori 10000 dan oshmasligi kerak"}
	}
	if input.StationID <= 0 {
		return &ValidationError{Field: "stationId", Message: "Shaxobcha tanlanishi shart"}
	}
	return nil
}

func validateMessage(content string) error {
	return requireString(content, "content", "Xabar matni kiritilishi shart")
}
