// Package registering cuida do cadastro de clientes: criação, atualização,
// busca com sugestões e o histórico de compras de cada cliente.
package registering

import (
	"context"
	"time"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/picking"
	"github.com/erickpaes/farmacia-manager-api/internal/usecases/validating"
	"github.com/erickpaes/farmacia-manager-api/pkg/utils"
)

const (
	idadeMinima     = 18
	minQuerySugerir = 2
	maxSugestoes    = 10
)

type Registrar interface {
	ListarClientes(ctx context.Context) ([]domain.Cliente, error)
	BuscarCliente(ctx context.Context, id int64) (*domain.Cliente, error)
	CriarCliente(ctx context.Context, req *domain.ClienteRequest) (*domain.Cliente, error)
	AtualizarCliente(ctx context.Context, id int64, req *domain.ClienteRequest) (*domain.Cliente, error)
	BuscarVendasDoCliente(ctx context.Context, clienteID int64) ([]domain.Venda, error)
	SugerirClientes(ctx context.Context, query string) ([]domain.Cliente, error)
}

type Service struct {
	farmacia  farmaciaclient.Client
	validator *validating.Validator
}

func NewService(farmacia farmaciaclient.Client, validator *validating.Validator) Registrar {
	return &Service{
		farmacia:  farmacia,
		validator: validator,
	}
}

func (s *Service) ListarClientes(ctx context.Context) ([]domain.Cliente, error) {
	return s.farmacia.ListarClientes(ctx)
}

func (s *Service) BuscarCliente(ctx context.Context, id int64) (*domain.Cliente, error) {
	return s.farmacia.BuscarCliente(ctx, id)
}

func (s *Service) CriarCliente(ctx context.Context, req *domain.ClienteRequest) (*domain.Cliente, error) {
	if err := s.validarCliente(req); err != nil {
		return nil, err
	}
	return s.farmacia.CriarCliente(ctx, normalizar(req))
}

func (s *Service) AtualizarCliente(ctx context.Context, id int64, req *domain.ClienteRequest) (*domain.Cliente, error) {
	if err := s.validarCliente(req); err != nil {
		return nil, err
	}
	return s.farmacia.AtualizarCliente(ctx, id, normalizar(req))
}

// validarCliente soma às tags de validação as duas regras que elas não
// expressam: CPF com 11 dígitos e idade mínima de 18 anos.
func (s *Service) validarCliente(req *domain.ClienteRequest) error {
	problems := s.validator.Validate(req)
	if problems == nil {
		problems = make(map[string]string)
	}

	if _, ok := problems["CPF"]; !ok {
		if len(utils.OnlyDigits(req.CPF)) != 11 {
			problems["CPF"] = "CPF deve conter 11 dígitos"
		}
	}

	if _, ok := problems["DataNascimento"]; !ok {
		nascimento, err := utils.ParseDate(req.DataNascimento)
		if err == nil && utils.IdadeEm(*nascimento, time.Now()) < idadeMinima {
			problems["DataNascimento"] = "Cliente deve ter 18 anos ou mais"
		}
	}

	if len(problems) > 0 {
		return &validating.ValidationError{Fields: problems}
	}

	return nil
}

// normalizar envia o CPF só com dígitos; a máscara é coisa de apresentação.
func normalizar(req *domain.ClienteRequest) *domain.ClienteRequest {
	normalized := *req
	normalized.CPF = utils.UnmaskCPF(req.CPF)
	return &normalized
}

func (s *Service) BuscarVendasDoCliente(ctx context.Context, clienteID int64) ([]domain.Venda, error) {
	return s.farmacia.BuscarVendasPorCliente(ctx, clienteID)
}

// SugerirClientes casa o texto contra o nome ou os dígitos do CPF. A lista só
// abre com dois ou mais caracteres e devolve no máximo dez clientes.
func (s *Service) SugerirClientes(ctx context.Context, query string) ([]domain.Cliente, error) {
	clientes, err := s.farmacia.ListarClientes(ctx)
	if err != nil {
		return nil, err
	}

	picker := picking.NewPicker(
		func(cliente domain.Cliente, q string) bool {
			if picking.ContainsFold(cliente.Nome, q) {
				return true
			}
			digits := utils.OnlyDigits(q)
			return digits != "" && picking.ContainsFold(utils.OnlyDigits(cliente.CPF), digits)
		},
		func(cliente domain.Cliente) string { return cliente.Nome },
		picking.Options{MinQuery: minQuerySugerir, Limit: maxSugestoes},
	)
	picker.SetItems(clientes)
	picker.Type(query)

	return picker.Suggestions(), nil
}
