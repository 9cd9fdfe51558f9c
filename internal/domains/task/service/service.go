package service

import (
	"context"
	"sync"

	"frontdesk/infras/otel"
	"frontdesk/internal/domains/task/model"
	"frontdesk/internal/domains/task/model/dto"
	"frontdesk/shared"
	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
)

type Task interface {
	Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (dto.GetTasksResponse, error)
	Get(ctx context.Context, id string) (dto.TaskResponse, error)
	Create(ctx context.Context, req dto.CreateTaskRequest) (dto.TaskResponse, notify.Notification, error)
	Update(ctx context.Context, id string, req dto.UpdateTaskRequest) (notify.Notification, error)
	SetStatus(ctx context.Context, id, label string) (notify.Notification, error)
	Complete(ctx context.Context, id string) (notify.Notification, error)
	Delete(ctx context.Context, id string) (notify.Notification, error)
	Summary(ctx context.Context) (dto.TaskSummaryResponse, error)
}

type serviceImpl struct {
	catalog *catalog.Catalog[model.Task]
	otel    otel.Otel

	mu sync.Mutex
}

func New(catalog *catalog.Catalog[model.Task], otel otel.Otel) Task {
	return &serviceImpl{
		catalog: catalog,
		otel:    otel,
	}
}

func (s *serviceImpl) Search(ctx context.Context, query string, params gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetTasksResponse, err error) {
	page, err := s.catalog.Search(ctx, query, params, filter)
	if err != nil {
		return res, err
	}

	res.FromModels(page.Items, page.Total, params.Limit)

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.TaskResponse, err error) {
	task, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(task)

	return res, nil
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateTaskRequest) (res dto.TaskResponse, notification notify.Notification, err error) {
	task := req.ToModel(shared.Username(ctx))

	notification, err = s.catalog.Create(ctx, task)
	if err != nil {
		return res, notification, err
	}

	res.FromModel(task)

	return res, notification, nil
}

func (s *serviceImpl) Update(ctx context.Context, id string, req dto.UpdateTaskRequest) (notify.Notification, error) {
	return s.catalog.Update(ctx, id, req.ToUpdate())
}

func (s *serviceImpl) SetStatus(ctx context.Context, id, label string) (notify.Notification, error) {
	return s.catalog.SetStatus(ctx, id, model.FieldStatus, label)
}

// Complete finishes a task once; completing it again is a conflict.
func (s *serviceImpl) Complete(ctx context.Context, id string) (res notify.Notification, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Complete")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	s.mu.Lock()
	defer s.mu.Unlock()

	task, err := s.catalog.Get(ctx, id)
	if err != nil {
		return res, err
	}

	if task.Status == model.StatusCompleted {
		return res, failure.Conflictf("task %s is already completed", id) //nolint:wrapcheck
	}

	return s.catalog.SetStatus(ctx, id, model.FieldStatus, model.StatusCompleted)
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (notify.Notification, error) {
	return s.catalog.Delete(ctx, id)
}

func (s *serviceImpl) Summary(ctx context.Context) (res dto.TaskSummaryResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Summary")
	defer scope.End()
	defer func() { scope.TraceIfError(err) }()

	counts := []struct {
		target *int
		filter gDto.FilterGroup
	}{
		{&res.Total, gDto.FilterGroup{}},
		{&res.Pending, shared.ExactFilter(model.TableName, map[string]string{model.FieldStatus: model.StatusPending})},
		{&res.InProgress, shared.ExactFilter(model.TableName, map[string]string{model.FieldStatus: model.StatusInProgress})},
		{&res.Completed, shared.ExactFilter(model.TableName, map[string]string{model.FieldStatus: model.StatusCompleted})},
		{&res.Urgent, shared.ExactFilter(model.TableName, map[string]string{model.FieldPriority: model.PriorityUrgent})},
	}

	for _, count := range counts {
		if *count.target, err = s.catalog.Count(ctx, count.filter); err != nil {
			return res, err
		}
	}

	return res, nil
}
