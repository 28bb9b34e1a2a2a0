package fx

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"

	"github.com/iclubstoree/iclub-financeiro/config"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
)

var ServerModule = fx.Options(
	fx.Invoke(startServer),
)

func startServer(lc fx.Lifecycle, cfg *config.Config, router *gin.Engine) {
	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			go func() {
				logger.Info().Str("porta", cfg.Server.Port).Msg("servidor HTTP iniciado")
				if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Fatal().Err(err).Msg("falha no servidor HTTP")
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			logger.Info().Msg("encerrando servidor HTTP")
			return server.Shutdown(ctx)
		},
	})
}
