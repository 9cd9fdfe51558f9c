package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/help/model"
	gRepo "frontdesk/shared/repository"
)

type SupportRequest interface {
	gRepo.Store[model.SupportRequest]
}

func New(db *postgres.Connection, otel otel.Otel) SupportRequest {
	return gRepo.New[model.SupportRequest](model.EntityName, model.TableName, model.FieldID, db, otel)
}
