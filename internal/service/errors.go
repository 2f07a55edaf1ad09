package service

import (
	"errors"
	"net/http"
)

// Error 是 client 可見的錯誤分類，Status 對應 HTTP 狀態碼
type Error struct {
	Status  int
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

var (
	// 帳號不存在與密碼錯誤共用同一個錯誤，避免洩漏帳號是否存在
	ErrInvalidCredentials = &Error{Status: http.StatusUnauthorized, Code: "invalid_credentials", Message: "invalid email or password"}
	ErrInvalidToken       = &Error{Status: http.StatusUnauthorized, Code: "invalid_token", Message: "invalid token"}
	ErrExpiredToken       = &Error{Status: http.StatusUnauthorized, Code: "expired_token", Message: "token expired"}
	ErrUserNotFound       = &Error{Status: http.StatusNotFound, Code: "user_not_found", Message: "user not found"}
	ErrDuplicateEmail     = &Error{Status: http.StatusConflict, Code: "duplicate_email", Message: "email already registered"}
	ErrConfiguration      = &Error{Status: http.StatusInternalServerError, Code: "configuration", Message: "authentication is not configured"}
)

const internalMessage = "internal server error"

// StatusOf 回傳 err 對應的 HTTP 狀態碼，未分類錯誤一律 500
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return http.StatusInternalServerError
}

// PublicMessage 回傳可以給 client 看的訊息；500 一律隱藏細節
func PublicMessage(err error) string {
	var e *Error
	if errors.As(err, &e) && e.Status < http.StatusInternalServerError {
		return e.Message
	}
	return internalMessage
}
