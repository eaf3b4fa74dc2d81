package service

import (
	"github.com/docuvault/go-doc-manager/internal/adapter"
	"github.com/docuvault/go-doc-manager/internal/config"
	"github.com/docuvault/go-doc-manager/internal/logger"
	"github.com/docuvault/go-doc-manager/internal/store"
	"github.com/docuvault/go-doc-manager/internal/validators"
)

type Services struct {
	AuthService     AuthService
	DocumentService DocumentService
	SearchService   SearchService
}

func NewServices(storages *store.Storages, searchClient adapter.SearchClient, cfg *config.StructuredConfig, logger *logger.Logger) *Services {
	validator := validators.NewRequestValidator()

	return &Services{
		AuthService:     NewAuthService(storages.UserRepository, NewGenerator(), validator, cfg.App, logger),
		DocumentService: NewDocumentService(storages.DocumentRepository, validator, logger),
		SearchService:   NewSearchService(searchClient, logger),
	}
}
