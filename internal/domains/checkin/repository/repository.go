package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/checkin/model"
	gRepo "frontdesk/shared/repository"
)

type Queue interface {
	gRepo.Store[model.QueueEntry]
}

func New(db *postgres.Connection, otel otel.Otel) Queue {
	return gRepo.New[model.QueueEntry](model.EntityName, model.TableName, model.FieldID, db, otel)
}
