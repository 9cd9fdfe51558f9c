package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/settings/model"
	gRepo "frontdesk/shared/repository"
)

type Settings interface {
	gRepo.Store[model.Settings]
}

func New(db *postgres.Connection, otel otel.Otel) Settings {
	return gRepo.New[model.Settings](model.EntityName, model.TableName, model.FieldID, db, otel)
}
