package dto

import (
	"frontdesk/internal/domains/staff/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/status"
	"frontdesk/shared/timezone"
)

type CreateStaffRequest struct {
	Email    string `json:"email"              validate:"required,email"`
	Name     string `json:"name"               validate:"required,max=100"`
	Role     string `json:"role"               validate:"required,status=staff.role"`
	Password string `json:"password,omitempty" validate:"omitempty,min=8"`
}

func (r *CreateStaffRequest) ToModel(user, hashedPassword string) model.Staff {
	return model.Staff{
		ID:       shared.NewID(model.IDPrefix),
		Email:    r.Email,
		Password: hashedPassword,
		Name:     r.Name,
		Role:     r.Role,
		Active:   true,
		Metadata: gModel.NewMetadata(user, timezone.Now()),
	}
}

type UpdateStaffRequest struct {
	Name   *string `json:"name,omitempty"   validate:"omitempty,min=1,max=100"`
	Role   *string `json:"role,omitempty"   validate:"omitempty,status=staff.role"`
	Active *bool   `json:"active,omitempty"`
}

func (r *UpdateStaffRequest) ToUpdate() map[string]any {
	mod := map[string]any{}

	if r.Name != nil {
		mod[model.FieldName] = *r.Name
	}

	if r.Role != nil {
		mod[model.FieldRole] = *r.Role
	}

	if r.Active != nil {
		mod[model.FieldActive] = *r.Active
	}

	return mod
}

type StaffResponse struct {
	ID        string       `json:"id"`
	Email     string       `json:"email"`
	Name      string       `json:"name"`
	Role      status.Badge `json:"role"`
	Active    bool         `json:"active"`
	LastLogin string       `json:"last_login,omitempty"`
	gDto.Metadata
}

func (r *StaffResponse) FromModel(m model.Staff) {
	r.ID = m.ID
	r.Email = m.Email
	r.Name = m.Name
	r.Role = model.RoleAxis.Badge(m.Role)
	r.Active = m.Active
	r.LastLogin = shared.FormatTime(m.LastLogin, constant.DateFormat)
	r.Metadata.FromModel(m.Metadata)
}

type GetStaffResponse struct {
	Staff     []StaffResponse `json:"staff"`
	TotalPage int             `json:"total_page"`
	TotalData int             `json:"total_data"`
}

func (r *GetStaffResponse) FromModels(models []model.Staff, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Staff = make([]StaffResponse, len(models))
	for i, mod := range models {
		r.Staff[i].FromModel(mod)
	}
}
