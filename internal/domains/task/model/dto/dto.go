package dto

import (
	"fmt"
	"time"

	"frontdesk/internal/domains/task/model"
	"frontdesk/shared"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/status"
	"frontdesk/shared/timezone"
)

const (
	housekeeping    = "Housekeeping"
	cleaningLeadway = 2 * time.Hour
)

type CreateTaskRequest struct {
	Title       string `json:"title"                 validate:"required,max=255"`
	Description string `json:"description,omitempty" validate:"omitempty,max=1000"`
	AssignedTo  string `json:"assigned_to"           validate:"required"`
	Priority    string `json:"priority"              validate:"required,status=task.priority"`
	Status      string `json:"status,omitempty"      validate:"omitempty,status=task.status"`
	DueDate     string `json:"due_date"              validate:"required,datetime=2006-01-02 15:04"`
}

func (c *CreateTaskRequest) ToModel(user string) model.Task {
	taskStatus := c.Status
	if taskStatus == "" {
		taskStatus = model.StatusPending
	}

	task := model.Task{
		ID:          shared.NewID(model.IDPrefix),
		Title:       c.Title,
		Description: c.Description,
		AssignedTo:  c.AssignedTo,
		Priority:    c.Priority,
		Status:      taskStatus,
		Metadata:    gModel.NewMetadata(user, timezone.Now()),
	}

	if due := shared.ParseTime(constant.DayTimeFormat, c.DueDate); due != nil {
		task.DueDate = *due
	}

	return task
}

// NewCleaningTask is the housekeeping task raised by a room's cleaning request.
func NewCleaningTask(roomID, user string, now time.Time) model.Task {
	return model.Task{
		ID:          shared.NewID(model.IDPrefix),
		Title:       fmt.Sprintf("Clean room %s", roomID),
		Description: fmt.Sprintf("Cleaning requested from the front desk for room %s.", roomID),
		AssignedTo:  housekeeping,
		Priority:    model.PriorityMedium,
		Status:      model.StatusPending,
		DueDate:     now.Add(cleaningLeadway),
		Metadata:    gModel.NewMetadata(user, now),
	}
}

type UpdateTaskRequest struct {
	Title       *string `json:"title,omitempty"       validate:"omitempty,min=1,max=255"`
	Description *string `json:"description,omitempty" validate:"omitempty,max=1000"`
	AssignedTo  *string `json:"assigned_to,omitempty" validate:"omitempty,min=1"`
	Priority    *string `json:"priority,omitempty"    validate:"omitempty,status=task.priority"`
	DueDate     *string `json:"due_date,omitempty"    validate:"omitempty,datetime=2006-01-02 15:04"`
}

func (u *UpdateTaskRequest) ToUpdate() map[string]any {
	mod := map[string]any{}

	if u.Title != nil {
		mod[model.FieldTitle] = *u.Title
	}

	if u.Description != nil {
		mod[model.FieldDescription] = *u.Description
	}

	if u.AssignedTo != nil {
		mod[model.FieldAssignedTo] = *u.AssignedTo
	}

	if u.Priority != nil {
		mod[model.FieldPriority] = *u.Priority
	}

	if u.DueDate != nil {
		if due := shared.ParseTime(constant.DayTimeFormat, *u.DueDate); due != nil {
			mod[model.FieldDueDate] = *due
		}
	}

	return mod
}

type TaskResponse struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	AssignedTo  string       `json:"assigned_to"`
	Priority    status.Badge `json:"priority"`
	Status      status.Badge `json:"status"`
	DueDate     string       `json:"due_date"`
	Completable bool         `json:"completable"`
	gDto.Metadata
}

func (r *TaskResponse) FromModel(m model.Task) {
	r.ID = m.ID
	r.Title = m.Title
	r.Description = m.Description
	r.AssignedTo = m.AssignedTo
	r.Priority = model.PriorityAxis.Badge(m.Priority)
	r.Status = model.StatusAxis.Badge(m.Status)
	r.DueDate = shared.FormatTime(&m.DueDate, constant.DayTimeFormat)
	r.Completable = m.Status != model.StatusCompleted
	r.Metadata.FromModel(m.Metadata)
}

type GetTasksResponse struct {
	Tasks     []TaskResponse `json:"tasks"`
	TotalPage int            `json:"total_page"`
	TotalData int            `json:"total_data"`
}

func (r *GetTasksResponse) FromModels(models []model.Task, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Tasks = make([]TaskResponse, len(models))
	for i, mod := range models {
		r.Tasks[i].FromModel(mod)
	}
}

type TaskSummaryResponse struct {
	Total      int `json:"total"`
	Pending    int `json:"pending"`
	InProgress int `json:"in_progress"`
	Completed  int `json:"completed"`
	Urgent     int `json:"urgent"`
}
