package usecase

import (
	"context"
	"errors"
	"log"

	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/infra/integration/openai"
)

type GenerateMessageInput struct {
	UserID  string `json:"-"`
	LeadID  string `json:"lead_id"`
	Tone    string `json:"tone"`
	Channel string `json:"channel"`
	Persona string `json:"persona,omitempty"`
}

// GenerateMessageUseCase produces an editable outreach draft. The only
// computation feeding message content is the organization-size
// classification; everything else is delegated to the writer.
type GenerateMessageUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	UserRepo entity.UserRepositoryInterface
	Writer   MessageWriter
}

func NewGenerateMessageUseCase(
	leadRepo entity.LeadRepositoryInterface,
	userRepo entity.UserRepositoryInterface,
	writer MessageWriter,
) *GenerateMessageUseCase {
	return &GenerateMessageUseCase{LeadRepo: leadRepo, UserRepo: userRepo, Writer: writer}
}

func (uc *GenerateMessageUseCase) Execute(ctx context.Context, input GenerateMessageInput) (string, error) {
	if errs := ValidateGenerateMessageInput(input); len(errs) > 0 {
		return "", validationDomainError(errs)
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return "", &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
		}
		return "", &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if lead.UserID != input.UserID {
		return "", &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
	}

	persona := input.Persona
	if !entity.ValidPersona(persona) {
		persona = entity.PersonaBrain
		if uc.UserRepo != nil {
			if user, err := uc.UserRepo.FindByID(ctx, input.UserID); err == nil && user != nil && entity.ValidPersona(user.Persona) {
				persona = user.Persona
			}
		}
	}

	message, err := uc.Writer.GenerateMessage(ctx, openai.GenerateMessageInput{
		CompanyName: lead.CompanyName,
		Industry:    lead.Industry,
		Style:       input.Tone,
		Type:        input.Channel,
		Persona:     persona,
		OrgSize:     OrganizationSize(lead.Employees),
	})
	if err != nil {
		return "", &TechnicalError{
			Code:    "GENERATION_FAILED",
			Message: "failed to generate message: " + err.Error(),
		}
	}

	return message, nil
}

// OrganizationSize classifies the employee bucket by its leading integer:
// under 50 Startup, under 250 SME, otherwise Enterprise. Missing or
// unparseable buckets default to SME.
func OrganizationSize(employees string) string {
	size, ok := leadingInt(employees)
	if !ok {
		return "SME"
	}
	if size < 50 {
		return "Startup"
	}
	if size < 250 {
		return "SME"
	}
	return "Enterprise"
}

type SendMessageInput struct {
	UserID         string `json:"-"`
	UserEmail      string `json:"-"` // receives the outreach copy
	LeadID         string `json:"lead_id"`
	Channel        string `json:"channel"`
	MessageContent string `json:"message_content"`
}

type SendMessageOutput struct {
	Message *entity.SentMessage `json:"message"`
	Status  string              `json:"status"` // the lead's status after the send
}

// SendMessageUseCase persists the sent-message snapshot and flips the
// lead to Converted. The two writes go through the compensating
// transaction; any residue is repaired on the next lead listing.
type SendMessageUseCase struct {
	LeadRepo entity.LeadRepositoryInterface
	MsgRepo  entity.SentMessageRepositoryInterface
	Email    EmailService
}

func NewSendMessageUseCase(
	leadRepo entity.LeadRepositoryInterface,
	msgRepo entity.SentMessageRepositoryInterface,
	email EmailService,
) *SendMessageUseCase {
	return &SendMessageUseCase{LeadRepo: leadRepo, MsgRepo: msgRepo, Email: email}
}

func (uc *SendMessageUseCase) Execute(ctx context.Context, input SendMessageInput) (*SendMessageOutput, error) {
	if errs := ValidateSendMessageInput(input); len(errs) > 0 {
		return nil, validationDomainError(errs)
	}

	lead, err := uc.LeadRepo.FindByID(ctx, input.LeadID)
	if err != nil {
		if errors.Is(err, entity.ErrLeadNotFound) {
			return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
		}
		return nil, &TechnicalError{Code: "DATABASE_ERROR", Message: err.Error()}
	}
	if lead.UserID != input.UserID {
		return nil, &DomainError{Code: "LEAD_NOT_FOUND", Message: "lead not found"}
	}

	message, err := entity.NewSentMessage(input.UserID, lead, input.Channel, input.MessageContent)
	if err != nil {
		return nil, &DomainError{Code: "VALIDATION_ERROR", Message: err.Error()}
	}

	txn := NewTransaction()
	txn.AddOperation("log_sent_message", func(ctx context.Context) error {
		return uc.MsgRepo.Create(ctx, message)
	})
	txn.AddCompensation("delete_sent_message", func(ctx context.Context) error {
		return uc.MsgRepo.Delete(ctx, message.ID)
	})
	txn.AddOperation("mark_converted", func(ctx context.Context) error {
		return uc.LeadRepo.UpdateStatus(ctx, lead.ID, entity.StatusConverted)
	})

	if err := txn.Execute(ctx); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to record sent message: " + err.Error(),
		}
	}

	// Best-effort inbox copy for email sends; never fails the workflow.
	if uc.Email != nil && input.Channel == entity.MessageTypeEmail && input.UserEmail != "" {
		go func() {
			if err := uc.Email.SendOutreachCopy(input.UserEmail, lead.CompanyName, input.Channel, input.MessageContent); err != nil {
				log.Printf("⚠️ Outreach copy to %s failed: %v", input.UserEmail, err)
			}
		}()
	}

	return &SendMessageOutput{Message: message, Status: entity.StatusConverted}, nil
}

// ListMessagesUseCase returns the user's sent-message history, newest
// first.
type ListMessagesUseCase struct {
	MsgRepo entity.SentMessageRepositoryInterface
}

func NewListMessagesUseCase(msgRepo entity.SentMessageRepositoryInterface) *ListMessagesUseCase {
	return &ListMessagesUseCase{MsgRepo: msgRepo}
}

func (uc *ListMessagesUseCase) Execute(ctx context.Context, userID string) ([]*entity.SentMessage, error) {
	messages, err := uc.MsgRepo.FindByUser(ctx, userID)
	if err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to load messages: " + err.Error(),
		}
	}
	return messages, nil
}
