package fx

import (
	"go.uber.org/fx"

	"github.com/iclubstoree/iclub-financeiro/internal/infrastructure"
)

var InfrastructureModule = fx.Options(
	fx.Provide(
		infrastructure.NewDatabase,
		infrastructure.NewExpenseRepository,
		infrastructure.NewCatalogRepository,
		infrastructure.NewRuleRepository,
		infrastructure.NewPreferencesRepository,
	),
)
