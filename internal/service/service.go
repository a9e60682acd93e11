package service

import (
	"github.com/carson-networks/vendo-server/internal/storage"
)

// Service holds the read-side services over the transaction store.
type Service struct {
	Transaction *TransactionService
}

// NewService creates a new Service with the given storage.
func NewService(store *storage.Storage) *Service {
	return &Service{
		Transaction: NewTransactionService(store),
	}
}
