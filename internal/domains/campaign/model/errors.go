package model

import (
	"errors"
	"fmt"
	"net/http"
)

// CampaignError định nghĩa base error cho campaign domain
type CampaignError struct {
	Code    string // VD: "CAMPAIGN_NOT_FOUND"
	Message string
	Err     error
}

func (e *CampaignError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *CampaignError) Unwrap() error {
	return e.Err
}

const (
	CodeNotFound     = "CAMPAIGN_NOT_FOUND"
	CodeSlugExists   = "CAMPAIGN_SLUG_EXISTS"
	CodeInvalidInput = "INVALID_CAMPAIGN"
	CodeForbidden    = "CAMPAIGN_FORBIDDEN"
	CodeInternal     = "CAMPAIGN_INTERNAL_ERROR"
)

// Repository sentinels
var (
	ErrNotFound   = errors.New("campaign not found")
	ErrSlugExists = errors.New("campaign slug already exists")
)

// ============================================
// ERROR FACTORY FUNCTIONS
// ============================================

func NewNotFound() *CampaignError {
	return &CampaignError{Code: CodeNotFound, Message: "Campaign not found"}
}

func NewSlugExists(slug string) *CampaignError {
	return &CampaignError{Code: CodeSlugExists, Message: fmt.Sprintf("Campaign with slug '%s' already exists", slug)}
}

func NewInvalidInput(message string) *CampaignError {
	return &CampaignError{Code: CodeInvalidInput, Message: message}
}

func NewForbidden() *CampaignError {
	return &CampaignError{Code: CodeForbidden, Message: "Only the campaign owner can modify this campaign"}
}

func NewInternal(message string, err error) *CampaignError {
	return &CampaignError{Code: CodeInternal, Message: message, Err: err}
}

// MapErrorToHTTP chuyển CampaignError sang (status, code, message)
func MapErrorToHTTP(err error) (int, string, string) {
	var campErr *CampaignError
	if !errors.As(err, &campErr) {
		return http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error"
	}

	switch campErr.Code {
	case CodeNotFound:
		return http.StatusNotFound, campErr.Code, campErr.Message
	case CodeSlugExists:
		return http.StatusConflict, campErr.Code, campErr.Message
	case CodeInvalidInput:
		return http.StatusBadRequest, campErr.Code, campErr.Message
	case CodeForbidden:
		return http.StatusForbidden, campErr.Code, campErr.Message
	default:
		return http.StatusInternalServerError, campErr.Code, "Internal server error"
	}
}
