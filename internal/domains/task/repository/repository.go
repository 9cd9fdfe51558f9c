package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/task/model"
	gRepo "frontdesk/shared/repository"
)

type Task interface {
	gRepo.Store[model.Task]
}

func New(db *postgres.Connection, otel otel.Otel) Task {
	return gRepo.New[model.Task](model.EntityName, model.TableName, model.FieldID, db, otel)
}
