package fx

import (
	"log"

	"github.com/joho/godotenv"
	"go.uber.org/fx"

	"github.com/iclubstoree/iclub-financeiro/config"
	"github.com/iclubstoree/iclub-financeiro/internal/logger"
)

var ConfigModule = fx.Options(
	fx.Provide(config.Load),
	fx.Invoke(
		loadEnvFiles,
		initLogger,
	),
)

// loadEnvFiles roda antes de qualquer consumidor de *config.Config, para que
// as variáveis do .env já estejam no ambiente quando config.Load executar.
func loadEnvFiles() error {
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: não foi possível carregar .env do diretório atual: %v", err)
	}
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("Aviso: não foi possível carregar ../../.env: %v", err)
	}
	return nil
}

func initLogger(cfg *config.Config) {
	logger.Init(cfg)
}
