package dto

import (
	"frontdesk/internal/domains/help/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/status"
	"frontdesk/shared/timezone"
)

type CreateSupportRequest struct {
	Name    string `json:"name"    validate:"required,max=100"`
	Email   string `json:"email"   validate:"required,email"`
	Subject string `json:"subject" validate:"required,max=200"`
	Message string `json:"message" validate:"required,max=5000"`
}

func (r *CreateSupportRequest) ToModel(user string) model.SupportRequest {
	return model.SupportRequest{
		ID:       shared.NewID(model.IDPrefix),
		Name:     r.Name,
		Email:    r.Email,
		Subject:  r.Subject,
		Message:  r.Message,
		Status:   model.StatusOpen,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type SupportRequestResponse struct {
	ID      string       `json:"id"`
	Name    string       `json:"name"`
	Email   string       `json:"email"`
	Subject string       `json:"subject"`
	Message string       `json:"message"`
	Status  status.Badge `json:"status"`
	gDto.Metadata
}

func (r *SupportRequestResponse) FromModel(m model.SupportRequest) {
	r.ID = m.ID
	r.Name = m.Name
	r.Email = m.Email
	r.Subject = m.Subject
	r.Message = m.Message
	r.Status = model.StatusAxis.Badge(m.Status)
	r.Metadata.FromModel(m.Metadata)
}

type GetSupportRequestsResponse struct {
	SupportRequests []SupportRequestResponse `json:"support_requests"`
	TotalPage       int                      `json:"total_page"`
	TotalData       int                      `json:"total_data"`
}

func (r *GetSupportRequestsResponse) FromModels(models []model.SupportRequest, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.SupportRequests = make([]SupportRequestResponse, len(models))
	for i, mod := range models {
		r.SupportRequests[i].FromModel(mod)
	}
}
