package store

import "github.com/MKhiriev/go-auth-guard/internal/logger"

type Storages struct {
	UserRepository UserRepository
}

func NewStorages(db *DB, logger *logger.Logger) *Storages {
	return &Storages{
		UserRepository: NewUserRepository(db, logger),
	}
}
