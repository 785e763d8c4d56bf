package farmaciaclient

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"net/url"
	"path"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/erickpaes/farmacia-manager-api/internal/config"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client é o contrato de acesso ao backend REST da farmácia. Cada chamada é
// independente e falha rápido: não há retry, fila nem deduplicação.
type Client interface {
	ListarCategorias(ctx context.Context) ([]domain.Categoria, error)
	BuscarCategoria(ctx context.Context, id int64) (*domain.Categoria, error)
	CriarCategoria(ctx context.Context, req *domain.CategoriaRequest) (*domain.Categoria, error)
	AtualizarCategoria(ctx context.Context, id int64, req *domain.CategoriaRequest) (*domain.Categoria, error)
	ExcluirCategoria(ctx context.Context, id int64) error

	ListarClientes(ctx context.Context) ([]domain.Cliente, error)
	BuscarCliente(ctx context.Context, id int64) (*domain.Cliente, error)
	CriarCliente(ctx context.Context, req *domain.ClienteRequest) (*domain.Cliente, error)
	AtualizarCliente(ctx context.Context, id int64, req *domain.ClienteRequest) (*domain.Cliente, error)

	ListarMedicamentos(ctx context.Context) ([]domain.Medicamento, error)
	BuscarMedicamento(ctx context.Context, id int64) (*domain.Medicamento, error)
	CriarMedicamento(ctx context.Context, req *domain.MedicamentoRequest) (*domain.Medicamento, error)
	AtualizarMedicamento(ctx context.Context, id int64, req *domain.MedicamentoRequest) (*domain.Medicamento, error)
	ExcluirMedicamento(ctx context.Context, id int64) error
	AtualizarStatusMedicamento(ctx context.Context, id int64, ativo bool) error

	RegistrarEntradaEstoque(ctx context.Context, req *domain.MovimentacaoEstoqueRequest) (*domain.MovimentacaoEstoque, error)
	RegistrarSaidaEstoque(ctx context.Context, req *domain.MovimentacaoEstoqueRequest) (*domain.MovimentacaoEstoque, error)
	BuscarHistoricoEstoque(ctx context.Context, medicamentoID int64, limite int) ([]domain.MovimentacaoEstoque, error)

	ListarVendas(ctx context.Context) ([]domain.Venda, error)
	BuscarVenda(ctx context.Context, id int64) (*domain.Venda, error)
	BuscarVendasPorCliente(ctx context.Context, clienteID int64) ([]domain.Venda, error)
	CriarVenda(ctx context.Context, req *domain.VendaRequest) (*domain.Venda, error)

	AlertaEstoqueBaixo(ctx context.Context, limite int) (*domain.AlertaEstoque, error)
	AlertaValidadeProxima(ctx context.Context, dias int) (*domain.AlertaValidade, error)
}

type FarmaciaClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	timeout := time.Duration(cfg.Farmacia.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	return &FarmaciaClient{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		config: cfg,
	}
}

// doRequest monta e executa uma chamada ao backend. O cabeçalho Basic vem das
// credenciais da sessão presentes no contexto; chamadas sem sessão (ex.: o
// probe de login injeta as credenciais direto) saem sem Authorization e o
// backend responde 401.
func (c *FarmaciaClient) doRequest(ctx context.Context, method, apiPath string, query url.Values, body any, out any) error {
	endpoint, err := url.Parse(c.config.Farmacia.BaseURL)
	if err != nil {
		return &APIError{Kind: KindUnknown, Message: "URL base do backend inválida", cause: err}
	}
	endpoint.Path = path.Join(endpoint.Path, apiPath)
	if query != nil {
		endpoint.RawQuery = query.Encode()
	}

	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return &APIError{Kind: KindUnknown, Message: "erro ao serializar o corpo da requisição", cause: err}
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint.String(), reqBody)
	if err != nil {
		return &APIError{Kind: KindUnknown, Message: "erro ao criar a requisição", cause: err}
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if creds, ok := domain.CredentialsFromContext(ctx); ok {
		req.SetBasicAuth(creds.Username, creds.Password)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		// Sem objeto de resposta: falha de rede, DNS ou CORS no caminho.
		return &APIError{
			Kind: KindNetwork,
			Message: "Não foi possível contatar o backend da farmácia.\n" +
				"Verifique se o serviço está no ar em " + c.config.Farmacia.BaseURL +
				" e se a configuração de CORS permite esta origem.",
			cause: err,
		}
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		return decodeError(resp)
	}

	if out != nil && resp.StatusCode != http.StatusNoContent {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return &APIError{Kind: KindUnknown, StatusCode: resp.StatusCode, Message: "erro ao decodificar a resposta", cause: err}
		}
	}

	return nil
}

// decodeError converte a resposta de erro do backend na variante fechada.
// Um 400 com mapa de campos vira Validation; sem mapa, Conflict com a
// mensagem do backend repassada textualmente.
func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<20))

	var body backendErrorBody
	_ = json.Unmarshal(raw, &body)

	message := body.Message
	if message == "" {
		message = resp.Status
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &APIError{Kind: KindUnauthorized, StatusCode: resp.StatusCode, Message: message}

	case resp.StatusCode == http.StatusNotFound:
		return &APIError{Kind: KindNotFound, StatusCode: resp.StatusCode, Message: message}

	case resp.StatusCode == http.StatusBadRequest && len(body.Errors) > 0:
		return &APIError{Kind: KindValidation, StatusCode: resp.StatusCode, Message: message, Fields: body.Errors}

	case resp.StatusCode == http.StatusBadRequest:
		return &APIError{Kind: KindConflict, StatusCode: resp.StatusCode, Message: message}

	default:
		return &APIError{Kind: KindUnknown, StatusCode: resp.StatusCode, Message: message}
	}
}
