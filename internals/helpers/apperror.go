package helper

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/pkg/errors"
)

type ErrorKind string

const (
	KindAuthentication ErrorKind = "AuthenticationError"
	KindAuthorization  ErrorKind = "AuthorizationError"
	KindValidation     ErrorKind = "ValidationError"
	KindNotFound       ErrorKind = "NotFoundError"
	KindConflict       ErrorKind = "ConflictError"
	KindUpstream       ErrorKind = "UpstreamError"
	KindInternal       ErrorKind = "InternalError"
)

// Stable machine-readable codes.
const (
	CodeUnauthorizedMissing = "UnauthorizedMissing"
	CodeUnauthorizedExpired = "UnauthorizedExpired"
	CodeUnauthorizedRevoked = "UnauthorizedRevoked"
	CodeUnauthorizedInvalid = "UnauthorizedInvalid"
	CodeInvalidCredentials  = "InvalidCredentials"
	CodeAccountNotFound     = "NotFound"
	CodeForbiddenRole       = "ForbiddenRole"
	CodeForbiddenInactive   = "ForbiddenInactive"
	CodeCrossTenantAccess   = "CrossTenantAccess"
	CodeSuperadminGenerate  = "SuperadminCannotGenerate"

	CodeInvalidPayload       = "InvalidPayload"
	CodeFieldValidation      = "FieldValidation"
	CodeEmptyComponents      = "EmptyComponents"
	CodeNoRoomsConfigured    = "NoRoomsConfigured"
	CodeNoTeachersConfigured = "NoTeachersConfigured"
	CodeNoSubjectsConfigured = "NoSubjectsConfigured"
	CodeDepartmentRequired   = "DepartmentRequired"

	CodeDuplicateName    = "DuplicateName"
	CodeDuplicateSubject = "DuplicateSubject"
	CodeDuplicateEmail   = "DuplicateEmail"

	CodeSchedulerUnavailable = "SchedulerUnavailable"
	CodeSchedulerRejected    = "SchedulerRejected"

	CodeResourceNotFound = "ResourceNotFound"
	CodeInternal         = "Internal"
)

// AppError is the {kind, subject, detail} triple every layer returns to its caller.
// Code narrows Kind to a stable reason; Meta carries the structured context
// (department, duplicate key, missing year) a client needs to self-correct.
type AppError struct {
	Kind    ErrorKind           `json:"kind"`
	Code    string              `json:"code"`
	Subject string              `json:"subject,omitempty"`
	Detail  string              `json:"detail,omitempty"`
	Meta    map[string]any      `json:"meta,omitempty"`
	Fields  map[string][]string `json:"-"`
}

func (e *AppError) Error() string {
	if e.Subject != "" {
		return fmt.Sprintf("%s(%s): %s [%s]", e.Kind, e.Code, e.Detail, e.Subject)
	}
	return fmt.Sprintf("%s(%s): %s", e.Kind, e.Code, e.Detail)
}

// WithMeta returns a copy carrying one more meta entry.
func (e *AppError) WithMeta(key string, value any) *AppError {
	cp := *e
	cp.Meta = make(map[string]any, len(e.Meta)+1)
	for k, v := range e.Meta {
		cp.Meta[k] = v
	}
	cp.Meta[key] = value
	return &cp
}

// Status maps the error kind onto an HTTP status.
func (e *AppError) Status() int {
	switch e.Kind {
	case KindAuthentication:
		return fiber.StatusUnauthorized
	case KindAuthorization:
		return fiber.StatusForbidden
	case KindValidation:
		return fiber.StatusUnprocessableEntity
	case KindNotFound:
		return fiber.StatusNotFound
	case KindConflict:
		return fiber.StatusConflict
	case KindUpstream:
		if e.Code == CodeSchedulerUnavailable {
			return fiber.StatusGatewayTimeout
		}
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

func newAppError(kind ErrorKind, code, subject, detail string) *AppError {
	return &AppError{Kind: kind, Code: code, Subject: subject, Detail: detail}
}

func AuthenticationError(code, detail string) *AppError {
	return newAppError(KindAuthentication, code, "credential", detail)
}

func AuthorizationError(code, subject, detail string) *AppError {
	return newAppError(KindAuthorization, code, subject, detail)
}

func ValidationError(code, subject, detail string) *AppError {
	return newAppError(KindValidation, code, subject, detail)
}

func NotFoundError(subject, detail string) *AppError {
	return newAppError(KindNotFound, CodeResourceNotFound, subject, detail)
}

func ConflictError(code, subject, detail string) *AppError {
	return newAppError(KindConflict, code, subject, detail)
}

func UpstreamError(code, detail string) *AppError {
	return newAppError(KindUpstream, code, "scheduler", detail)
}

func InternalError(detail string) *AppError {
	return newAppError(KindInternal, CodeInternal, "", detail)
}

// AsAppError finds an *AppError anywhere in the chain.
func AsAppError(err error) (*AppError, bool) {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// IsKind reports whether err carries an AppError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	ae, ok := AsAppError(err)
	return ok && ae.Kind == kind
}

// IsCode reports whether err carries an AppError with the given code.
func IsCode(err error, code string) bool {
	ae, ok := AsAppError(err)
	return ok && ae.Code == code
}
