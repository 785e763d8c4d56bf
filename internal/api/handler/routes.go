package handler

import (
	"net/http"

	"github.com/erickpaes/farmacia-manager-api/internal/api/handler/router"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/alerting"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/authenticating"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/cataloging"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/dashboarding"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/registering"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/selling"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/stocking"
)

func Healthcheck() []router.Route {
	return []router.Route{
		{
			Path:    "/healthcheck",
			Method:  http.MethodGet,
			Handler: HealthcheckHandler(),
		},
	}
}

func Authentication(service authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/login",
			Method:  http.MethodPost,
			Handler: Login(service),
		},
		{
			Path:    "/v1/logout",
			Method:  http.MethodPost,
			Handler: Logout(service),
		},
		{
			Path:    "/v1/me",
			Method:  http.MethodGet,
			Handler: GetMe(service),
		},
	}
}

func Categorias(service cataloging.Cataloger, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/categorias",
			Method:  http.MethodGet,
			Handler: ListCategorias(service, authenticator),
		},
		{
			Path:    "/v1/categorias",
			Method:  http.MethodPost,
			Handler: CreateCategoria(service, authenticator),
		},
		{
			Path:    "/v1/categorias/:id",
			Method:  http.MethodGet,
			Handler: GetCategoria(service, authenticator),
		},
		{
			Path:    "/v1/categorias/:id",
			Method:  http.MethodPut,
			Handler: UpdateCategoria(service, authenticator),
		},
		{
			Path:    "/v1/categorias/:id",
			Method:  http.MethodDelete,
			Handler: DeleteCategoria(service, authenticator),
		},
	}
}

func Clientes(service registering.Registrar, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/clientes",
			Method:  http.MethodGet,
			Handler: ListClientes(service, authenticator),
		},
		{
			Path:    "/v1/clientes",
			Method:  http.MethodPost,
			Handler: CreateCliente(service, authenticator),
		},
		{
			Path:    "/v1/clientes/:id",
			Method:  http.MethodGet,
			Handler: GetCliente(service, authenticator),
		},
		{
			Path:    "/v1/clientes/:id",
			Method:  http.MethodPut,
			Handler: UpdateCliente(service, authenticator),
		},
		{
			Path:    "/v1/clientes/:id/vendas",
			Method:  http.MethodGet,
			Handler: GetVendasDoCliente(service, authenticator),
		},
		// Fora de /v1/clientes/:id para não conflitar com o wildcard
		{
			Path:    "/v1/sugestoes/clientes",
			Method:  http.MethodGet,
			Handler: SugerirClientes(service, authenticator),
		},
	}
}

func Medicamentos(service cataloging.Cataloger, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/medicamentos",
			Method:  http.MethodGet,
			Handler: ListMedicamentos(service, authenticator),
		},
		{
			Path:    "/v1/medicamentos",
			Method:  http.MethodPost,
			Handler: CreateMedicamento(service, authenticator),
		},
		{
			Path:    "/v1/medicamentos/:id",
			Method:  http.MethodGet,
			Handler: GetMedicamento(service, authenticator),
		},
		{
			Path:    "/v1/medicamentos/:id",
			Method:  http.MethodPut,
			Handler: UpdateMedicamento(service, authenticator),
		},
		{
			Path:    "/v1/medicamentos/:id",
			Method:  http.MethodDelete,
			Handler: DeleteMedicamento(service, authenticator),
		},
		{
			Path:    "/v1/medicamentos/:id/status",
			Method:  http.MethodPatch,
			Handler: ToggleMedicamentoStatus(service, authenticator),
		},
		{
			Path:    "/v1/sugestoes/medicamentos",
			Method:  http.MethodGet,
			Handler: SugerirMedicamentos(service, authenticator),
		},
	}
}

func Estoque(service stocking.Stocker, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/estoque/entrada",
			Method:  http.MethodPost,
			Handler: RegistrarEntradaEstoque(service, authenticator),
		},
		{
			Path:    "/v1/estoque/saida",
			Method:  http.MethodPost,
			Handler: RegistrarSaidaEstoque(service, authenticator),
		},
		{
			Path:    "/v1/estoque/movimentacoes",
			Method:  http.MethodGet,
			Handler: GetMovimentacoesRecentes(service, authenticator),
		},
		{
			Path:    "/v1/estoque/historico/:id",
			Method:  http.MethodGet,
			Handler: GetHistoricoEstoque(service, authenticator),
		},
	}
}

func Vendas(service selling.Seller, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/vendas",
			Method:  http.MethodGet,
			Handler: ListVendas(service, authenticator),
		},
		{
			Path:    "/v1/vendas/:id",
			Method:  http.MethodGet,
			Handler: GetVenda(service, authenticator),
		},
	}
}

// Rascunhos cobre o ciclo de vida do rascunho de venda mantido pelo servidor.
func Rascunhos(service selling.Seller, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/rascunhos",
			Method:  http.MethodPost,
			Handler: CreateRascunho(service, authenticator),
		},
		{
			Path:    "/v1/rascunhos/:id",
			Method:  http.MethodGet,
			Handler: GetRascunhoResumo(service, authenticator),
		},
		{
			Path:    "/v1/rascunhos/:id",
			Method:  http.MethodDelete,
			Handler: DescartarRascunho(service, authenticator),
		},
		{
			Path:    "/v1/rascunhos/:id/cliente",
			Method:  http.MethodPut,
			Handler: SetRascunhoCliente(service, authenticator),
		},
		{
			Path:    "/v1/rascunhos/:id/itens",
			Method:  http.MethodPost,
			Handler: AddRascunhoItem(service, authenticator),
		},
		{
			Path:    "/v1/rascunhos/:id/itens/:index",
			Method:  http.MethodDelete,
			Handler: RemoveRascunhoItem(service, authenticator),
		},
		{
			Path:    "/v1/rascunhos/:id/itens/:index/medicamento",
			Method:  http.MethodPut,
			Handler: SetRascunhoItemMedicamento(service, authenticator),
		},
		{
			Path:    "/v1/rascunhos/:id/itens/:index/quantidade",
			Method:  http.MethodPut,
			Handler: SetRascunhoItemQuantidade(service, authenticator),
		},
		{
			Path:    "/v1/rascunhos/:id/submeter",
			Method:  http.MethodPost,
			Handler: SubmeterRascunho(service, authenticator),
		},
	}
}

func Alertas(service alerting.Alerter, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/alertas/estoque-baixo",
			Method:  http.MethodGet,
			Handler: GetAlertaEstoqueBaixo(service, authenticator),
		},
		{
			Path:    "/v1/alertas/validade-proxima",
			Method:  http.MethodGet,
			Handler: GetAlertaValidadeProxima(service, authenticator),
		},
	}
}

func Dashboard(service dashboarding.Dashboarder, authenticator authenticating.Authenticator) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/dashboard",
			Method:  http.MethodGet,
			Handler: GetDashboard(service, authenticator),
		},
	}
}

func CronJobs(services CronJobServices) []router.Route {
	return []router.Route{
		{
			Path:    "/v1/cron/:type/run",
			Method:  http.MethodPost,
			Handler: RunCronJob(services),
		},
		{
			Path:    "/v1/cron/status",
			Method:  http.MethodGet,
			Handler: GetCronStatus(services),
		},
	}
}
