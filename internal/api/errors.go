package api

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidCredentials indicates a rejected login.
	ErrInvalidCredentials = errors.New("foydalanuvchi nomi yoki parol noto'g'ri")
	// ErrUnauthorized indicates a missing, invalid or expired session token.
	ErrUnauthorized = errors.New("avtorizatsiya talab qilinadi")
)

// RequestError is a non-2xx response from the remote API. Message carries the
// server-provided text when the body was decodable, else a fallback.
type RequestError struct {
	Status  int
	Message string
}

func (e *RequestError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("so'rov muvaffaqiyatsiz (HTTP %d)", e.Status)
}

// NetworkError is a transport-level failure: connection refused, timeout,
// canceled context. The request never produced an HTTP status.
type NetworkError struct {
	Op  string
	Err error
}

func (e *NetworkError) Error() string {
	return fmt.Sprintf("tarmoq xatosi (%s): %v", e.Op, e.Err)
}

func (e *NetworkError) Unwrap() error {
	return e.Err
}
