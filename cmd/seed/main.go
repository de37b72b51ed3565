// Command seed inserts the default suppliers when the suppliers collection is empty.
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/rafaelleal24/estudos/internal/adapters/config"
	"github.com/rafaelleal24/estudos/internal/adapters/mongo"
	"github.com/rafaelleal24/estudos/internal/adapters/mongo/repository"
	"github.com/rafaelleal24/estudos/internal/core/domain"
	"github.com/rafaelleal24/estudos/internal/core/logger"
	"github.com/rafaelleal24/estudos/internal/core/port"
)

var defaultSuppliers = []*domain.Supplier{
	domain.NewSupplier("Papelaria Central Ltda", "12345678000199", domain.SupplierKindCompany),
	domain.NewSupplier("Distribuidora Norte S.A.", "98765432000110", domain.SupplierKindCompany),
	domain.NewSupplier("Maria Aparecida Souza", "12345678901", domain.SupplierKindIndividual),
}

func main() {
	cfg := config.NewConfig()
	err := logger.Initialize(logger.Options{
		ServiceName: cfg.Logger.ServiceName + "-seed",
		Verbose:     true,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, "failed to initialize logger: "+err.Error())
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	client, err := mongo.NewConnection(cfg.Mongo)
	if err != nil {
		logger.Fatal(ctx, "Failed to connect to MongoDB", err, nil)
	}
	defer mongo.Disconnect(client)

	suppliers := repository.NewSupplierRepository(client.Database(cfg.Mongo.Database))
	inserted, err := seed(ctx, suppliers, defaultSuppliers)
	if err != nil {
		logger.Fatal(ctx, "Failed to seed suppliers", err, nil)
	}

	logger.Info(ctx, "Suppliers seeded", map[string]any{"inserted": inserted})
}

// seed is a no-op when any supplier already exists.
func seed(ctx context.Context, repo port.SupplierPort, suppliers []*domain.Supplier) (int, error) {
	existing, err := repo.GetAll(ctx)
	if err != nil {
		return 0, err
	}
	if len(existing) > 0 {
		return 0, nil
	}

	for i, s := range suppliers {
		if err := repo.Create(ctx, s); err != nil {
			return i, fmt.Errorf("create supplier %q: %w", s.Name, err)
		}
	}
	return len(suppliers), nil
}
