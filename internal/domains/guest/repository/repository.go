package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/guest/model"
	gRepo "frontdesk/shared/repository"
)

type Guest interface {
	gRepo.Store[model.Guest]
}

func New(db *postgres.Connection, otel otel.Otel) Guest {
	return gRepo.New[model.Guest](model.EntityName, model.TableName, model.FieldID, db, otel)
}
