package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/reservation/model"
	gRepo "frontdesk/shared/repository"
)

type Reservation interface {
	gRepo.Store[model.Reservation]
}

func New(db *postgres.Connection, otel otel.Otel) Reservation {
	return gRepo.New[model.Reservation](model.EntityName, model.TableName, model.FieldID, db, otel)
}
