// Package selling mantém o rascunho de venda do lado do servidor. O backend
// da farmácia só conhece a venda pronta: toda a montagem (cliente, itens,
// quantidades) vive aqui até a submissão.
package selling

import (
	"context"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/farmaciaclient"
	"github.com/erickpaes/farmacia-manager-api/infrastructure/repository"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/pkg/utils"
)

type Seller interface {
	ListarVendas(ctx context.Context) ([]domain.Venda, error)
	BuscarVenda(ctx context.Context, id int64) (*domain.Venda, error)

	CriarRascunho(ctx context.Context, sessionID string) (*domain.VendaDraft, error)
	BuscarRascunho(ctx context.Context, sessionID, draftID string) (*domain.VendaDraft, error)
	DefinirCliente(ctx context.Context, sessionID, draftID string, clienteID int64) error
	AdicionarItem(ctx context.Context, sessionID, draftID string) (*domain.VendaDraft, error)
	RemoverItem(ctx context.Context, sessionID, draftID string, index int) (*domain.VendaDraft, error)
	DefinirItemMedicamento(ctx context.Context, sessionID, draftID string, index int, medicamentoID int64) (*domain.VendaDraft, error)
	DefinirItemQuantidade(ctx context.Context, sessionID, draftID string, index, quantidade int) (*domain.VendaDraft, error)
	Resumo(ctx context.Context, sessionID, draftID string) (*domain.VendaDraftResumo, error)
	Submeter(ctx context.Context, sessionID, draftID string) (*domain.Venda, error)
	DescartarRascunho(ctx context.Context, sessionID, draftID string) error
}

type Service struct {
	draftRepo repository.VendaDraftRepository
	farmacia  farmaciaclient.Client
}

func NewService(draftRepo repository.VendaDraftRepository, farmacia farmaciaclient.Client) Seller {
	return &Service{
		draftRepo: draftRepo,
		farmacia:  farmacia,
	}
}

func (s *Service) ListarVendas(ctx context.Context) ([]domain.Venda, error) {
	return s.farmacia.ListarVendas(ctx)
}

func (s *Service) BuscarVenda(ctx context.Context, id int64) (*domain.Venda, error) {
	return s.farmacia.BuscarVenda(ctx, id)
}

// CriarRascunho abre um rascunho novo já com uma linha vazia, pronto para o
// primeiro medicamento.
func (s *Service) CriarRascunho(ctx context.Context, sessionID string) (*domain.VendaDraft, error) {
	now := time.Now().UTC()
	draft := &domain.VendaDraft{
		ID:           utils.GenerateID(),
		SessionID:    sessionID,
		Itens:        []domain.VendaDraftItem{{Quantidade: 1}},
		CriadoEm:     now,
		AtualizadoEm: now,
	}

	if err := s.draftRepo.CreateDraft(ctx, draft); err != nil {
		return nil, err
	}

	return draft, nil
}

// loadDraft busca o rascunho garantindo que pertence à sessão corrente.
// Rascunho de outra sessão resolve para não-encontrado, sem vazar que existe.
func (s *Service) loadDraft(sessionID, draftID string) (*domain.VendaDraft, error) {
	draft, err := s.draftRepo.GetDraftByID(draftID)
	if err != nil {
		return nil, err
	}
	if draft == nil || draft.SessionID != sessionID {
		return nil, ErrDraftNotFound
	}
	return draft, nil
}

func (s *Service) BuscarRascunho(ctx context.Context, sessionID, draftID string) (*domain.VendaDraft, error) {
	return s.loadDraft(sessionID, draftID)
}

func (s *Service) DefinirCliente(ctx context.Context, sessionID, draftID string, clienteID int64) error {
	if _, err := s.loadDraft(sessionID, draftID); err != nil {
		return err
	}
	return s.draftRepo.UpdateDraftCliente(draftID, clienteID)
}

// AdicionarItem acrescenta uma linha vazia ao fim do rascunho.
func (s *Service) AdicionarItem(ctx context.Context, sessionID, draftID string) (*domain.VendaDraft, error) {
	draft, err := s.loadDraft(sessionID, draftID)
	if err != nil {
		return nil, err
	}

	draft.Itens = append(draft.Itens, domain.VendaDraftItem{Quantidade: 1})
	if err := s.draftRepo.ReplaceItems(ctx, draftID, draft.Itens); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *Service) RemoverItem(ctx context.Context, sessionID, draftID string, index int) (*domain.VendaDraft, error) {
	draft, err := s.loadDraft(sessionID, draftID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(draft.Itens) {
		return nil, ErrItemNotFound
	}

	draft.Itens = append(draft.Itens[:index], draft.Itens[index+1:]...)
	if err := s.draftRepo.ReplaceItems(ctx, draftID, draft.Itens); err != nil {
		return nil, err
	}

	return draft, nil
}

// DefinirItemMedicamento associa um medicamento à linha. Repetir um
// medicamento já usado em outra linha é rejeitado e a linha volta ao estado
// sem medicamento, nunca fica com a escolha anterior.
func (s *Service) DefinirItemMedicamento(ctx context.Context, sessionID, draftID string, index int, medicamentoID int64) (*domain.VendaDraft, error) {
	draft, err := s.loadDraft(sessionID, draftID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(draft.Itens) {
		return nil, ErrItemNotFound
	}

	// Zero significa "linha sem medicamento"; limpar uma linha nunca conta
	// como repetição, mesmo com outra linha ainda vazia.
	if medicamentoID != 0 {
		for i, item := range draft.Itens {
			if i != index && item.MedicamentoID == medicamentoID {
				draft.Itens[index].MedicamentoID = 0
				if err := s.draftRepo.ReplaceItems(ctx, draftID, draft.Itens); err != nil {
					return nil, err
				}
				return draft, ErrDuplicateMedication
			}
		}
	}

	draft.Itens[index].MedicamentoID = medicamentoID
	if err := s.draftRepo.ReplaceItems(ctx, draftID, draft.Itens); err != nil {
		return nil, err
	}

	return draft, nil
}

func (s *Service) DefinirItemQuantidade(ctx context.Context, sessionID, draftID string, index, quantidade int) (*domain.VendaDraft, error) {
	draft, err := s.loadDraft(sessionID, draftID)
	if err != nil {
		return nil, err
	}

	if index < 0 || index >= len(draft.Itens) {
		return nil, ErrItemNotFound
	}
	if quantidade < 1 {
		return nil, ErrInvalidQuantity
	}

	draft.Itens[index].Quantidade = quantidade
	if err := s.draftRepo.ReplaceItems(ctx, draftID, draft.Itens); err != nil {
		return nil, err
	}

	return draft, nil
}

// Resumo deriva a visão corrente do rascunho: cada linha enriquecida com os
// dados do medicamento e o total sempre recalculado do zero como a soma de
// preço vezes quantidade. Nada de total incremental guardado.
func (s *Service) Resumo(ctx context.Context, sessionID, draftID string) (*domain.VendaDraftResumo, error) {
	draft, err := s.loadDraft(sessionID, draftID)
	if err != nil {
		return nil, err
	}

	medicamentos, err := s.farmacia.ListarMedicamentos(ctx)
	if err != nil {
		return nil, err
	}

	porID := make(map[int64]domain.Medicamento, len(medicamentos))
	for _, med := range medicamentos {
		porID[med.ID] = med
	}

	resumo := &domain.VendaDraftResumo{
		ID:        draft.ID,
		ClienteID: draft.ClienteID,
		Itens:     make([]domain.ItemVendaDraftResumo, 0, len(draft.Itens)),
	}

	for _, item := range draft.Itens {
		linha := domain.ItemVendaDraftResumo{
			MedicamentoID: item.MedicamentoID,
			Quantidade:    item.Quantidade,
		}

		if med, ok := porID[item.MedicamentoID]; ok {
			linha.MedicamentoNome = med.Nome
			linha.PrecoUnitario = med.Preco
			linha.Subtotal = utils.RoundWithTwoDecimalPlace(med.Preco * float64(item.Quantidade))
			linha.EstoqueDisponivel = med.QuantidadeEstoque
		}

		resumo.Itens = append(resumo.Itens, linha)
		resumo.ValorTotal += linha.Subtotal
	}
	resumo.ValorTotal = utils.RoundWithTwoDecimalPlace(resumo.ValorTotal)

	resumo.PodeEnviar, resumo.Impedimento = avaliarProntidao(draft, porID)

	return resumo, nil
}

// avaliarProntidao decide se o rascunho pode virar venda e, quando não pode,
// nomeia o primeiro impedimento. A checagem de estoque usa a quantidade vista
// nesta consulta; a palavra final sobre estoque é sempre do backend na
// submissão.
func avaliarProntidao(draft *domain.VendaDraft, porID map[int64]domain.Medicamento) (bool, string) {
	if draft.ClienteID == 0 {
		return false, "Selecione o cliente da venda"
	}
	if len(draft.Itens) == 0 {
		return false, "Adicione ao menos um item à venda"
	}

	for _, item := range draft.Itens {
		if item.MedicamentoID == 0 {
			return false, "Há itens sem medicamento selecionado"
		}

		med, ok := porID[item.MedicamentoID]
		if !ok {
			return false, "Há itens com medicamento inexistente"
		}
		if !med.Ativo {
			return false, "O medicamento " + med.Nome + " está inativo"
		}
		if item.Quantidade < 1 {
			return false, "Há itens com quantidade inválida"
		}
		if item.Quantidade > med.QuantidadeEstoque {
			return false, "Estoque insuficiente para " + med.Nome
		}
	}

	return true, ""
}

// Submeter envia a venda ao backend e, aceita, descarta o rascunho. O backend
// revalida tudo; rejeição dele mantém o rascunho intacto para correção.
func (s *Service) Submeter(ctx context.Context, sessionID, draftID string) (*domain.Venda, error) {
	draft, err := s.loadDraft(sessionID, draftID)
	if err != nil {
		return nil, err
	}

	if draft.ClienteID == 0 || len(draft.Itens) == 0 {
		return nil, ErrDraftNotReady
	}

	req := &domain.VendaRequest{
		ClienteID: draft.ClienteID,
		Itens:     make([]domain.ItemVendaRequest, 0, len(draft.Itens)),
	}
	for _, item := range draft.Itens {
		if item.MedicamentoID == 0 {
			return nil, ErrDraftNotReady
		}
		req.Itens = append(req.Itens, domain.ItemVendaRequest{
			MedicamentoID: item.MedicamentoID,
			Quantidade:    item.Quantidade,
		})
	}

	venda, err := s.farmacia.CriarVenda(ctx, req)
	if err != nil {
		return nil, err
	}

	logrus.Infof("Venda %d registrada no backend, total %s", venda.ID, utils.FormatCurrency(venda.ValorTotal))

	if err := s.draftRepo.DeleteDraft(draftID); err != nil {
		// A venda já existe no backend; o rascunho órfão sai no encerramento
		// da sessão pelo ON DELETE CASCADE.
		logrus.Warnf("Venda %d criada mas o rascunho %s não foi removido: %v", venda.ID, draftID, err)
	}

	return venda, nil
}

func (s *Service) DescartarRascunho(ctx context.Context, sessionID, draftID string) error {
	if _, err := s.loadDraft(sessionID, draftID); err != nil {
		return err
	}
	return s.draftRepo.DeleteDraft(draftID)
}
