package service_test

import (
	"context"
	"errors"
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"frontdesk/config"
	"frontdesk/infras/otel/mocks"
	"frontdesk/internal/domains/task/model"
	"frontdesk/internal/domains/task/model/dto"
	"frontdesk/internal/domains/task/service"
	"frontdesk/shared/cache"
	"frontdesk/shared/catalog"
	"frontdesk/shared/constant"
	gDto "frontdesk/shared/dto"
	"frontdesk/shared/failure"
	"frontdesk/shared/notify"
	"frontdesk/shared/repository"
	repoMocks "frontdesk/shared/repository/mocks"
	"frontdesk/shared/timezone"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"golang.org/x/sync/errgroup"
)

func seedTasks() []model.Task {
	day := func(hour int) time.Time {
		return time.Date(2025, 5, 18, hour, 0, 0, 0, timezone.GetLocation())
	}

	return []model.Task{
		{ID: "T1001", Title: "Restock minibar in room 304", AssignedTo: "John Doe", Priority: model.PriorityMedium, Status: model.StatusPending, DueDate: day(15)},
		{ID: "T1002", Title: "Replace towels in room 215", AssignedTo: "Sarah Johnson", Priority: model.PriorityHigh, Status: model.StatusCompleted, DueDate: day(12)},
		{ID: "T1003", Title: "Fix AC in room 512", AssignedTo: "Mike Roberts", Priority: model.PriorityUrgent, Status: model.StatusInProgress, DueDate: day(10)},
		{ID: "T1004", Title: "Clean lobby area", AssignedTo: "Lisa Wong", Priority: model.PriorityMedium, Status: model.StatusPending, DueDate: day(18)},
		{ID: "T1005", Title: "Deliver extra blankets to room 403", AssignedTo: "John Doe", Priority: model.PriorityLow, Status: model.StatusPending, DueDate: day(20)},
	}
}

func newService(t *testing.T) service.Task {
	t.Helper()

	ot := mocks.NewOtel()
	cfg := &config.Config{}
	store := repository.NewMemoryRepository[model.Task](model.EntityName, model.FieldID, ot)
	require.NoError(t, store.InsertBulk(context.Background(), seedTasks()))

	return service.New(catalog.New[model.Task](model.Definition, store, cache.NewMemoryCache(ot), cfg, ot, notify.New(cfg, nil)), ot)
}

func TestTaskService_Search(t *testing.T) {
	tests := []struct {
		name  string
		query string
		want  []string
	}{
		{name: "assignee", query: "john doe", want: []string{"T1001", "T1005"}},
		{name: "title", query: "room 5", want: []string{"T1003"}},
		{name: "id", query: "t1004", want: []string{"T1004"}},
		{name: "all", query: "", want: []string{"T1001", "T1002", "T1003", "T1004", "T1005"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := newService(t).Search(context.Background(), tt.query, gDto.QueryParams{}, gDto.FilterGroup{})
			require.NoError(t, err)

			got := []string{}
			for _, task := range res.Tasks {
				got = append(got, task.ID)
			}

			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTaskService_Complete(t *testing.T) {
	tests := []struct {
		name     string
		id       string
		wantCode int
	}{
		{name: "pending task", id: "T1001"},
		{name: "in progress task", id: "T1003"},
		{name: "already completed", id: "T1002", wantCode: http.StatusConflict},
		{name: "unknown task", id: "T0000", wantCode: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService(t)
			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "S1002")

			notification, err := svc.Complete(ctx, tt.id)
			if tt.wantCode != 0 {
				assert.Equal(t, tt.wantCode, failure.GetCode(err))

				return
			}

			require.NoError(t, err)
			assert.Equal(t, "Task Status Updated", notification.Title)
			assert.Equal(t, "Task "+tt.id+" status changed to Completed.", notification.Description)

			task, err := svc.Get(ctx, tt.id)
			require.NoError(t, err)
			assert.Equal(t, model.StatusCompleted, task.Status.Label)
			assert.Equal(t, "S1002", task.ModifiedBy)

			_, err = svc.Complete(ctx, tt.id)
			assert.Equal(t, http.StatusConflict, failure.GetCode(err), "a completed task cannot be completed again")
		})
	}
}

func TestTaskService_CompleteConcurrently(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	var (
		group     errgroup.Group
		completed atomic.Int32
	)

	for range 6 {
		group.Go(func() error {
			_, err := svc.Complete(ctx, "T1004")
			if err == nil {
				completed.Add(1)

				return nil
			}

			if failure.GetCode(err) != http.StatusConflict {
				return err
			}

			return nil
		})
	}

	require.NoError(t, group.Wait())
	assert.Equal(t, int32(1), completed.Load())
}

func TestTaskService_CreateAndSummary(t *testing.T) {
	svc := newService(t)
	ctx := context.Background()

	summary, err := svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, dto.TaskSummaryResponse{Total: 5, Pending: 3, InProgress: 1, Completed: 1, Urgent: 1}, summary)

	created, notification, err := svc.Create(ctx, dto.CreateTaskRequest{
		Title:      "Check pool chemicals",
		AssignedTo: "Lisa Wong",
		Priority:   model.PriorityUrgent,
		DueDate:    "2025-05-18 21:00",
	})
	require.NoError(t, err)
	assert.Equal(t, "Task Created", notification.Title)
	assert.True(t, created.Completable)

	summary, err = svc.Summary(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, summary.Total)
	assert.Equal(t, 4, summary.Pending)
	assert.Equal(t, 2, summary.Urgent)

	res, err := svc.Search(ctx, "", gDto.QueryParams{}, gDto.FilterGroup{})
	require.NoError(t, err)
	assert.Equal(t, created.ID, res.Tasks[0].ID)
}

func TestTaskService_SummaryStoreError(t *testing.T) {
	ctrl := gomock.NewController(t)
	store := repoMocks.NewMockStore[model.Task](ctrl)
	ot := mocks.NewOtel()
	cfg := &config.Config{}

	store.EXPECT().Count(gomock.Any(), gomock.Any()).Return(0, errors.New("connection refused"))

	svc := service.New(catalog.New[model.Task](model.Definition, store, cache.NewMemoryCache(ot), cfg, ot, notify.New(cfg, nil)), ot)

	_, err := svc.Summary(context.Background())
	assert.ErrorContains(t, err, "failed to count task")
}
