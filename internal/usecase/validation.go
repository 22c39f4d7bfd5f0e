package usecase

import (
	"fmt"
	"strings"

	"github.com/supercells/supercells-api/internal/entity"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Outreach tones.
var validTones = map[string]bool{
	"confident":     true,
	"empathetic":    true,
	"collaborative": true,
	"inspirational": true,
	"authoritative": true,
}

func ValidTone(tone string) bool {
	return validTones[tone]
}

func ValidChannel(channel string) bool {
	return channel == entity.MessageTypeEmail || channel == entity.MessageTypeLinkedin
}

func ValidateCreateLeadInput(input CreateLeadInput) []ValidationError {
	var errors []ValidationError

	name := strings.TrimSpace(input.CompanyName)
	if name == "" {
		errors = append(errors, ValidationError{"company_name", "is required"})
	} else if len(name) > 200 {
		errors = append(errors, ValidationError{"company_name", "must not exceed 200 characters"})
	}

	if input.Persona != "" && !entity.ValidPersona(input.Persona) {
		errors = append(errors, ValidationError{"persona", "must be brain, target or handshake"})
	}

	return errors
}

func ValidateFindLeadsInput(input FindLeadsInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Industry) == "" {
		errors = append(errors, ValidationError{"industry", "is required"})
	}
	if strings.TrimSpace(input.Location) == "" {
		errors = append(errors, ValidationError{"location", "is required"})
	}
	// Zero means "use the default", so only explicit values are bounded.
	if input.Count != 0 && (input.Count < 1 || input.Count > 10) {
		errors = append(errors, ValidationError{"count", "must be between 1 and 10"})
	}

	return errors
}

func ValidateGenerateMessageInput(input GenerateMessageInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}
	if !ValidTone(input.Tone) {
		errors = append(errors, ValidationError{"tone", "must be confident, empathetic, collaborative, inspirational or authoritative"})
	}
	if !ValidChannel(input.Channel) {
		errors = append(errors, ValidationError{"channel", "must be email or linkedin"})
	}

	return errors
}

func ValidateSendMessageInput(input SendMessageInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.LeadID) == "" {
		errors = append(errors, ValidationError{"lead_id", "is required"})
	}
	if !ValidChannel(input.Channel) {
		errors = append(errors, ValidationError{"channel", "must be email or linkedin"})
	}
	if strings.TrimSpace(input.MessageContent) == "" {
		errors = append(errors, ValidationError{"message_content", "is required"})
	}

	return errors
}

func validationDomainError(errs []ValidationError) *DomainError {
	msg := "validation failed: "
	for _, e := range errs {
		msg += e.Field + " (" + e.Message + "), "
	}
	return &DomainError{
		Code:    "VALIDATION_ERROR",
		Message: strings.TrimSuffix(msg, ", "),
	}
}
