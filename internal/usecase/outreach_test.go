package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/supercells/supercells-api/internal/entity"
	"github.com/supercells/supercells-api/internal/infra/integration/openai"
	"github.com/supercells/supercells-api/internal/usecase"
)

func TestOrganizationSize(t *testing.T) {
	assert.Equal(t, "SME", usecase.OrganizationSize(""))
	assert.Equal(t, "SME", usecase.OrganizationSize("unknown"))
	assert.Equal(t, "Startup", usecase.OrganizationSize("5-10"))
	assert.Equal(t, "Startup", usecase.OrganizationSize("11-50"))
	assert.Equal(t, "SME", usecase.OrganizationSize("51-200"))
	assert.Equal(t, "Enterprise", usecase.OrganizationSize("300-500"))
	assert.Equal(t, "Enterprise", usecase.OrganizationSize("501+"))
}

func TestGenerateMessageUsesLeadContext(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockUserRepo := new(MockUserRepository)
	mockWriter := new(MockMessageWriter)

	lead := &entity.Lead{
		ID:          "lead-1",
		UserID:      "user-1",
		CompanyName: "Acme Robotics",
		Industry:    "Robotics",
		Employees:   "501+",
	}
	mockLeadRepo.On("FindByID", ctx, "lead-1").Return(lead, nil)
	mockUserRepo.On("FindByID", ctx, "user-1").Return(nil, errors.New("no profile"))

	mockWriter.On("GenerateMessage", ctx, openai.GenerateMessageInput{
		CompanyName: "Acme Robotics",
		Industry:    "Robotics",
		Style:       "confident",
		Type:        entity.MessageTypeEmail,
		Persona:     entity.PersonaBrain,
		OrgSize:     "Enterprise",
	}).Return("Hello Acme", nil)

	uc := usecase.NewGenerateMessageUseCase(mockLeadRepo, mockUserRepo, mockWriter)

	message, err := uc.Execute(ctx, usecase.GenerateMessageInput{
		UserID:  "user-1",
		LeadID:  "lead-1",
		Tone:    "confident",
		Channel: entity.MessageTypeEmail,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Hello Acme", message)
}

func TestGenerateMessageDefaultsPersonaWithoutProfileRow(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockUserRepo := new(MockUserRepository)
	mockWriter := new(MockMessageWriter)

	lead := &entity.Lead{
		ID:          "lead-1",
		UserID:      "user-1",
		CompanyName: "Acme Robotics",
		Industry:    "Robotics",
		Employees:   "51-200",
	}
	mockLeadRepo.On("FindByID", ctx, "lead-1").Return(lead, nil)
	// A fresh user has no profile row yet: FindByID yields (nil, nil).
	mockUserRepo.On("FindByID", ctx, "user-1").Return(nil, nil)

	mockWriter.On("GenerateMessage", ctx, openai.GenerateMessageInput{
		CompanyName: "Acme Robotics",
		Industry:    "Robotics",
		Style:       "confident",
		Type:        entity.MessageTypeEmail,
		Persona:     entity.PersonaBrain,
		OrgSize:     "SME",
	}).Return("Hello Acme", nil)

	uc := usecase.NewGenerateMessageUseCase(mockLeadRepo, mockUserRepo, mockWriter)

	message, err := uc.Execute(ctx, usecase.GenerateMessageInput{
		UserID:  "user-1",
		LeadID:  "lead-1",
		Tone:    "confident",
		Channel: entity.MessageTypeEmail,
	})

	assert.NoError(t, err)
	assert.Equal(t, "Hello Acme", message)
}

func TestGenerateMessageRejectsUnknownTone(t *testing.T) {
	uc := usecase.NewGenerateMessageUseCase(new(MockLeadRepository), new(MockUserRepository), new(MockMessageWriter))

	_, err := uc.Execute(context.Background(), usecase.GenerateMessageInput{
		UserID:  "user-1",
		LeadID:  "lead-1",
		Tone:    "sarcastic",
		Channel: entity.MessageTypeEmail,
	})

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	assert.Contains(t, err.Error(), "tone")
}

func TestSendMessageMarksConverted(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockMsgRepo := new(MockSentMessageRepository)

	lead := &entity.Lead{
		ID:          "lead-1",
		UserID:      "user-1",
		CompanyName: "Acme",
		Industry:    "Robotics",
		Status:      entity.StatusQualified,
	}
	mockLeadRepo.On("FindByID", ctx, "lead-1").Return(lead, nil)
	mockMsgRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockLeadRepo.On("UpdateStatus", mock.Anything, "lead-1", entity.StatusConverted).Return(nil)

	uc := usecase.NewSendMessageUseCase(mockLeadRepo, mockMsgRepo, nil)

	output, err := uc.Execute(ctx, usecase.SendMessageInput{
		UserID:         "user-1",
		LeadID:         "lead-1",
		Channel:        entity.MessageTypeLinkedin,
		MessageContent: "Hi there",
	})

	assert.NoError(t, err)
	assert.Equal(t, entity.StatusConverted, output.Status)
	assert.Equal(t, "Acme", output.Message.CompanyName)
	assert.Equal(t, "Robotics", output.Message.Industry)
	assert.Equal(t, entity.MessageTypeLinkedin, output.Message.MessageType)

	mockMsgRepo.AssertNumberOfCalls(t, "Create", 1)
	mockLeadRepo.AssertCalled(t, "UpdateStatus", mock.Anything, "lead-1", entity.StatusConverted)
}

func TestSendMessageCompensatesOnStatusFailure(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockMsgRepo := new(MockSentMessageRepository)

	lead := &entity.Lead{ID: "lead-1", UserID: "user-1", CompanyName: "Acme"}
	mockLeadRepo.On("FindByID", ctx, "lead-1").Return(lead, nil)
	mockMsgRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockLeadRepo.On("UpdateStatus", mock.Anything, "lead-1", entity.StatusConverted).Return(errors.New("db down"))
	mockMsgRepo.On("Delete", mock.Anything, mock.Anything).Return(nil)

	uc := usecase.NewSendMessageUseCase(mockLeadRepo, mockMsgRepo, nil)

	output, err := uc.Execute(ctx, usecase.SendMessageInput{
		UserID:         "user-1",
		LeadID:         "lead-1",
		Channel:        entity.MessageTypeEmail,
		MessageContent: "Hi",
	})

	assert.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, usecase.IsTechnicalError(err))
	// The compensation removes the orphaned message record.
	mockMsgRepo.AssertCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestSendMessageEmailsCopyToOwner(t *testing.T) {
	ctx := context.Background()

	mockLeadRepo := new(MockLeadRepository)
	mockMsgRepo := new(MockSentMessageRepository)
	mockEmail := new(MockEmailService)

	lead := &entity.Lead{ID: "lead-1", UserID: "user-1", CompanyName: "Acme"}
	mockLeadRepo.On("FindByID", ctx, "lead-1").Return(lead, nil)
	mockMsgRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	mockLeadRepo.On("UpdateStatus", mock.Anything, "lead-1", entity.StatusConverted).Return(nil)

	copySent := make(chan struct{})
	mockEmail.On("SendOutreachCopy", "owner@example.com", "Acme", entity.MessageTypeEmail, "Hi").
		Run(func(args mock.Arguments) { close(copySent) }).
		Return(nil)

	uc := usecase.NewSendMessageUseCase(mockLeadRepo, mockMsgRepo, mockEmail)

	_, err := uc.Execute(ctx, usecase.SendMessageInput{
		UserID:         "user-1",
		UserEmail:      "owner@example.com",
		LeadID:         "lead-1",
		Channel:        entity.MessageTypeEmail,
		MessageContent: "Hi",
	})

	assert.NoError(t, err)

	select {
	case <-copySent:
	case <-time.After(2 * time.Second):
		t.Fatal("outreach copy was never sent")
	}
}

func TestSendMessageInvalidChannel(t *testing.T) {
	uc := usecase.NewSendMessageUseCase(new(MockLeadRepository), new(MockSentMessageRepository), nil)

	_, err := uc.Execute(context.Background(), usecase.SendMessageInput{
		UserID:         "user-1",
		LeadID:         "lead-1",
		Channel:        "pigeon",
		MessageContent: "Hi",
	})

	assert.Error(t, err)
	assert.True(t, usecase.IsDomainError(err))
	assert.Contains(t, err.Error(), "channel")
}
