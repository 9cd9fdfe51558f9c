package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/room/model"
	gRepo "frontdesk/shared/repository"
)

type Room interface {
	gRepo.Store[model.Room]
}

func New(db *postgres.Connection, otel otel.Otel) Room {
	return gRepo.New[model.Room](model.EntityName, model.TableName, model.FieldID, db, otel)
}
