package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/staff/model"
	gRepo "frontdesk/shared/repository"
)

type Staff interface {
	gRepo.Store[model.Staff]
}

func New(db *postgres.Connection, otel otel.Otel) Staff {
	return gRepo.New[model.Staff](model.EntityName, model.TableName, model.FieldID, db, otel)
}
