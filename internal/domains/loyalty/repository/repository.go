package repository

import (
	"frontdesk/infras/otel"
	"frontdesk/infras/postgres"
	"frontdesk/internal/domains/loyalty/model"
	gRepo "frontdesk/shared/repository"
)

type Member interface {
	gRepo.Store[model.Member]
}

type Transaction interface {
	gRepo.Store[model.Transaction]
}

func NewMember(db *postgres.Connection, otel otel.Otel) Member {
	return gRepo.New[model.Member](model.EntityName, model.TableName, model.FieldID, db, otel)
}

func NewTransaction(db *postgres.Connection, otel otel.Otel) Transaction {
	return gRepo.New[model.Transaction](model.TransactionEntityName, model.TransactionTableName, model.FieldID, db, otel)
}
