package models

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/gofiber/fiber/v2"
)

const (
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeNotFound       = "NOT_FOUND"
	CodeUpstreamAuth   = "UPSTREAM_AUTH_ERROR"
	CodeGeneration     = "GENERATION_ERROR"
	CodeMapping        = "MAPPING_ERROR"
	CodeInternal       = "INTERNAL_ERROR"
)

// AppError is the application error carried from services up to the HTTP
// boundary, where its code decides the response status.
type AppError struct {
	Code    string
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NewInvalidRequestError(message string) *AppError {
	return &AppError{Code: CodeInvalidRequest, Message: message}
}

func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{Code: CodeNotFound, Message: fmt.Sprintf("%s with ID %v not found", resource, id)}
}

func NewUpstreamAuthError(message string, err error) *AppError {
	return &AppError{Code: CodeUpstreamAuth, Message: message, Err: err}
}

func NewGenerationError(err error) *AppError {
	return &AppError{Code: CodeGeneration, Message: "content generation failed", Err: err}
}

func NewMappingError(message string) *AppError {
	return &AppError{Code: CodeMapping, Message: message}
}

type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// RespondWithError maps an error onto a JSON response. Unexpected errors
// become a generic 500; their detail is logged, never sent to the client.
func RespondWithError(c *fiber.Ctx, err error) error {
	var appErr *AppError
	if !errors.As(err, &appErr) {
		slog.Error(err.Error())
		return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
			Error: "Internal server error",
			Code:  CodeInternal,
		})
	}

	status := fiber.StatusInternalServerError
	switch appErr.Code {
	case CodeInvalidRequest:
		status = fiber.StatusBadRequest
	case CodeNotFound:
		status = fiber.StatusNotFound
	case CodeUpstreamAuth, CodeGeneration, CodeMapping:
		status = fiber.StatusBadGateway
	}

	return c.Status(status).JSON(ErrorResponse{Error: appErr.Message, Code: appErr.Code})
}
