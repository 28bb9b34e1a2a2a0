package fx

import (
	"go.uber.org/fx"
)

// AppModule agrega todos os módulos da aplicação na ordem de dependência.
var AppModule = fx.Options(
	ConfigModule,
	InfrastructureModule,
	DomainModule,
	RoutesModule,
	ServerModule,
)
