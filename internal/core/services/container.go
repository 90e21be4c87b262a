package services

import (
	portsrepo "github.com/SscSPs/product_pricing_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/product_pricing_app/internal/core/ports/services"
	"github.com/SscSPs/product_pricing_app/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// The audit recorder comes first since every mutating service writes to it.
	container.EventLog = NewEventLogService(repos.EventLogRepo, WithMaxPerPage(cfg.EventLogMaxPerPage))

	container.Currency = NewCurrencyService(repos.CurrencyRepo, container.EventLog)
	container.ProductPrice = NewProductPriceService(repos.ProductRepo, repos.CurrencyRepo, repos.ProductPriceRepo, container.EventLog)
	container.Product = NewProductService(repos.ProductRepo, repos.CurrencyRepo, repos.TxManager, container.ProductPrice, container.EventLog)

	container.Auth = NewAuthService(repos.UserRepo, TokenConfig{
		Secret: cfg.JWTSecret,
		Expiry: cfg.JWTExpiryDuration,
		Issuer: cfg.JWTIssuer,
	})

	return container
}
