package main

import (
	appfx "github.com/iclubstoree/iclub-financeiro/internal/fx"

	"go.uber.org/fx"
)

func main() {
	fx.New(appfx.AppModule).Run()
}
