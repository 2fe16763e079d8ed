package response

import (
	"encoding/json"
	"net/http"
)

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
	Meta    *Meta       `json:"meta,omitempty"`
}

type Meta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

func JSON(w http.ResponseWriter, statusCode int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(data)
}

func Success(w http.ResponseWriter, statusCode int, message string, data interface{}) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func SuccessWithMeta(w http.ResponseWriter, statusCode int, message string, data interface{}, meta *Meta) {
	JSON(w, statusCode, Response{
		Success: true,
		Message: message,
		Data:    data,
		Meta:    meta,
	})
}

func Error(w http.ResponseWriter, statusCode int, message string, detail interface{}) {
	JSON(w, statusCode, Response{Message: message, Error: detail})
}

// ValidationError reports field errors keyed by their JSON names
func ValidationError(w http.ResponseWriter, fields interface{}) {
	Error(w, http.StatusBadRequest, "Validation failed", fields)
}

var defaultMessages = map[int]string{
	http.StatusBadRequest:          "Bad request",
	http.StatusUnauthorized:        "Unauthorized",
	http.StatusForbidden:           "Forbidden",
	http.StatusNotFound:            "Resource not found",
	http.StatusConflict:            "Conflict",
	http.StatusInternalServerError: "Internal server error",
}

// fail writes an error envelope, falling back to the status default message
func fail(w http.ResponseWriter, statusCode int, message string) {
	if message == "" {
		message = defaultMessages[statusCode]
	}
	Error(w, statusCode, message, nil)
}

func BadRequest(w http.ResponseWriter, message string) { fail(w, http.StatusBadRequest, message) }

func Unauthorized(w http.ResponseWriter, message string) { fail(w, http.StatusUnauthorized, message) }

func Forbidden(w http.ResponseWriter, message string) { fail(w, http.StatusForbidden, message) }

func NotFound(w http.ResponseWriter, message string) { fail(w, http.StatusNotFound, message) }

func Conflict(w http.ResponseWriter, message string) { fail(w, http.StatusConflict, message) }

func InternalServerError(w http.ResponseWriter, message string) {
	fail(w, http.StatusInternalServerError, message)
}

// NewMeta builds paging metadata, total pages rounded up
func NewMeta(page, limit int, total int64) *Meta {
	totalPages := 0
	if limit > 0 {
		totalPages = int((total + int64(limit) - 1) / int64(limit))
	}
	return &Meta{
		Page:       page,
		Limit:      limit,
		Total:      total,
		TotalPages: totalPages,
	}
}
