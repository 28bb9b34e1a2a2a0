package fx

import (
	"context"

	"go.uber.org/fx"

	"github.com/iclubstoree/iclub-financeiro/internal/domain/catalog"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/chat"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/expense"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/preferences"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/rule"
	"github.com/iclubstoree/iclub-financeiro/internal/domain/spreadsheet"
)

var DomainModule = fx.Options(
	fx.Provide(
		expense.NewService,
		chat.NewService,
		catalog.NewService,
		rule.NewService,
		preferences.NewService,
		spreadsheet.NewService,
	),
	fx.Invoke(seedDefaults),
)

// seedDefaults cadastra lojas, categorias e regras padrão no primeiro boot.
func seedDefaults(lc fx.Lifecycle, catalogSvc *catalog.Service, ruleSvc *rule.Service) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			if err := catalogSvc.Seed(ctx); err != nil {
				return err
			}
			return ruleSvc.Seed(ctx)
		},
	})
}
