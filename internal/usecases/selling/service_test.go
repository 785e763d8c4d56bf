package selling

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	farmaciamocks "github.com/erickpaes/farmacia-manager-api/infrastructure/integrator/farmacia/mocks"
	"github.com/erickpaes/farmacia-manager-api/infrastructure/repository/mocks"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

const (
	testSessionID = "sess-1"
	testDraftID   = "draft-1"
)

func newTestService(t *testing.T) (*Service, *mocks.MockVendaDraftRepository, *farmaciamocks.MockClient) {
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	draftRepo := mocks.NewMockVendaDraftRepository(ctrl)
	farmacia := farmaciamocks.NewMockClient(ctrl)

	service := &Service{
		draftRepo: draftRepo,
		farmacia:  farmacia,
	}

	return service, draftRepo, farmacia
}

func draftWith(clienteID int64, itens ...domain.VendaDraftItem) *domain.VendaDraft {
	return &domain.VendaDraft{
		ID:        testDraftID,
		SessionID: testSessionID,
		ClienteID: clienteID,
		Itens:     itens,
	}
}

func TestService_CriarRascunho(t *testing.T) {
	service, draftRepo, _ := newTestService(t)

	var created *domain.VendaDraft
	draftRepo.EXPECT().
		CreateDraft(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, draft *domain.VendaDraft) error {
			created = draft
			return nil
		})

	draft, err := service.CriarRascunho(context.Background(), testSessionID)

	assert.NoError(t, err)
	assert.NotEmpty(t, draft.ID)
	assert.Equal(t, testSessionID, draft.SessionID)

	// Nasce com uma linha vazia pronta para o primeiro medicamento
	assert.Len(t, created.Itens, 1)
	assert.Equal(t, int64(0), created.Itens[0].MedicamentoID)
	assert.Equal(t, 1, created.Itens[0].Quantidade)
}

func TestService_DefinirItemMedicamento(t *testing.T) {
	t.Run("Medicamento inédito - deve associar à linha", func(t *testing.T) {
		service, draftRepo, _ := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(1, domain.VendaDraftItem{Quantidade: 1}), nil)

		draftRepo.EXPECT().
			ReplaceItems(gomock.Any(), testDraftID, []domain.VendaDraftItem{
				{MedicamentoID: 10, Quantidade: 1},
			}).
			Return(nil)

		draft, err := service.DefinirItemMedicamento(context.Background(), testSessionID, testDraftID, 0, 10)

		assert.NoError(t, err)
		assert.Equal(t, int64(10), draft.Itens[0].MedicamentoID)
	})

	t.Run("Medicamento repetido - deve rejeitar e voltar a linha ao estado sem seleção", func(t *testing.T) {
		service, draftRepo, _ := newTestService(t)

		// A linha 1 já tinha o medicamento 20 antes da tentativa
		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(1,
				domain.VendaDraftItem{MedicamentoID: 10, Quantidade: 1},
				domain.VendaDraftItem{MedicamentoID: 20, Quantidade: 2},
			), nil)

		// A linha persiste sem medicamento, não com a escolha anterior
		draftRepo.EXPECT().
			ReplaceItems(gomock.Any(), testDraftID, []domain.VendaDraftItem{
				{MedicamentoID: 10, Quantidade: 1},
				{MedicamentoID: 0, Quantidade: 2},
			}).
			Return(nil)

		draft, err := service.DefinirItemMedicamento(context.Background(), testSessionID, testDraftID, 1, 10)

		assert.ErrorIs(t, err, ErrDuplicateMedication)
		assert.Equal(t, int64(0), draft.Itens[1].MedicamentoID)
	})

	t.Run("Limpar a linha com outra linha ainda vazia - não é repetição", func(t *testing.T) {
		service, draftRepo, _ := newTestService(t)

		// A linha 0 nunca recebeu medicamento; limpar a linha 1 não pode
		// esbarrar nela.
		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(1,
				domain.VendaDraftItem{Quantidade: 1},
				domain.VendaDraftItem{MedicamentoID: 20, Quantidade: 2},
			), nil)

		draftRepo.EXPECT().
			ReplaceItems(gomock.Any(), testDraftID, []domain.VendaDraftItem{
				{MedicamentoID: 0, Quantidade: 1},
				{MedicamentoID: 0, Quantidade: 2},
			}).
			Return(nil)

		draft, err := service.DefinirItemMedicamento(context.Background(), testSessionID, testDraftID, 1, 0)

		assert.NoError(t, err)
		assert.Equal(t, int64(0), draft.Itens[1].MedicamentoID)
	})

	t.Run("Rascunho de outra sessão - deve resolver para não encontrado", func(t *testing.T) {
		service, draftRepo, _ := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(&domain.VendaDraft{ID: testDraftID, SessionID: "outra-sessao"}, nil)

		_, err := service.DefinirItemMedicamento(context.Background(), testSessionID, testDraftID, 0, 10)

		assert.ErrorIs(t, err, ErrDraftNotFound)
	})
}

func TestService_Resumo(t *testing.T) {
	medicamentos := []domain.Medicamento{
		{ID: 10, Nome: "Dipirona 500mg", Preco: 5.50, QuantidadeEstoque: 100, Ativo: true},
		{ID: 20, Nome: "Paracetamol", Preco: 3.25, QuantidadeEstoque: 2, Ativo: true},
		{ID: 30, Nome: "Descontinuado", Preco: 9.99, QuantidadeEstoque: 50, Ativo: false},
	}

	t.Run("Total é sempre a soma de preço vezes quantidade das linhas correntes", func(t *testing.T) {
		service, draftRepo, farmacia := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(1,
				domain.VendaDraftItem{MedicamentoID: 10, Quantidade: 3},
				domain.VendaDraftItem{MedicamentoID: 20, Quantidade: 2},
			), nil)

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(medicamentos, nil)

		resumo, err := service.Resumo(context.Background(), testSessionID, testDraftID)

		assert.NoError(t, err)
		assert.Equal(t, 16.50, resumo.Itens[0].Subtotal)
		assert.Equal(t, 6.50, resumo.Itens[1].Subtotal)
		assert.Equal(t, 23.00, resumo.ValorTotal)
		assert.True(t, resumo.PodeEnviar)
		assert.Empty(t, resumo.Impedimento)
	})

	t.Run("Remover uma linha derruba o total junto, sem resíduo", func(t *testing.T) {
		service, draftRepo, farmacia := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(1,
				domain.VendaDraftItem{MedicamentoID: 20, Quantidade: 2},
			), nil)

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(medicamentos, nil)

		resumo, err := service.Resumo(context.Background(), testSessionID, testDraftID)

		assert.NoError(t, err)
		assert.Equal(t, 6.50, resumo.ValorTotal)
	})

	t.Run("Linha sem medicamento não soma e bloqueia o envio", func(t *testing.T) {
		service, draftRepo, farmacia := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(1,
				domain.VendaDraftItem{MedicamentoID: 10, Quantidade: 1},
				domain.VendaDraftItem{Quantidade: 1},
			), nil)

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(medicamentos, nil)

		resumo, err := service.Resumo(context.Background(), testSessionID, testDraftID)

		assert.NoError(t, err)
		assert.Equal(t, 5.50, resumo.ValorTotal)
		assert.False(t, resumo.PodeEnviar)
		assert.Equal(t, "Há itens sem medicamento selecionado", resumo.Impedimento)
	})

	t.Run("Sem cliente selecionado o envio fica bloqueado", func(t *testing.T) {
		service, draftRepo, farmacia := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(0,
				domain.VendaDraftItem{MedicamentoID: 10, Quantidade: 1},
			), nil)

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(medicamentos, nil)

		resumo, err := service.Resumo(context.Background(), testSessionID, testDraftID)

		assert.NoError(t, err)
		assert.False(t, resumo.PodeEnviar)
		assert.Equal(t, "Selecione o cliente da venda", resumo.Impedimento)
	})

	t.Run("Quantidade acima do estoque visto bloqueia o envio", func(t *testing.T) {
		service, draftRepo, farmacia := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(1,
				domain.VendaDraftItem{MedicamentoID: 20, Quantidade: 5},
			), nil)

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(medicamentos, nil)

		resumo, err := service.Resumo(context.Background(), testSessionID, testDraftID)

		assert.NoError(t, err)
		assert.False(t, resumo.PodeEnviar)
		assert.Equal(t, "Estoque insuficiente para Paracetamol", resumo.Impedimento)
	})

	t.Run("Medicamento inativo bloqueia o envio", func(t *testing.T) {
		service, draftRepo, farmacia := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(1,
				domain.VendaDraftItem{MedicamentoID: 30, Quantidade: 1},
			), nil)

		farmacia.EXPECT().
			ListarMedicamentos(gomock.Any()).
			Return(medicamentos, nil)

		resumo, err := service.Resumo(context.Background(), testSessionID, testDraftID)

		assert.NoError(t, err)
		assert.False(t, resumo.PodeEnviar)
		assert.Equal(t, "O medicamento Descontinuado está inativo", resumo.Impedimento)
	})
}

func TestService_Submeter(t *testing.T) {
	t.Run("Rascunho completo - deve criar a venda e descartar o rascunho", func(t *testing.T) {
		service, draftRepo, farmacia := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(7,
				domain.VendaDraftItem{MedicamentoID: 10, Quantidade: 3},
				domain.VendaDraftItem{MedicamentoID: 20, Quantidade: 1},
			), nil)

		farmacia.EXPECT().
			CriarVenda(gomock.Any(), &domain.VendaRequest{
				ClienteID: 7,
				Itens: []domain.ItemVendaRequest{
					{MedicamentoID: 10, Quantidade: 3},
					{MedicamentoID: 20, Quantidade: 1},
				},
			}).
			Return(&domain.Venda{ID: 99, ValorTotal: 19.75}, nil)

		draftRepo.EXPECT().
			DeleteDraft(testDraftID).
			Return(nil)

		venda, err := service.Submeter(context.Background(), testSessionID, testDraftID)

		assert.NoError(t, err)
		assert.Equal(t, int64(99), venda.ID)
	})

	t.Run("Backend rejeita a venda - o rascunho permanece para correção", func(t *testing.T) {
		service, draftRepo, farmacia := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(7,
				domain.VendaDraftItem{MedicamentoID: 10, Quantidade: 3},
			), nil)

		farmacia.EXPECT().
			CriarVenda(gomock.Any(), gomock.Any()).
			Return(nil, assert.AnError)

		// Sem EXPECT de DeleteDraft: a rejeição não descarta o rascunho

		venda, err := service.Submeter(context.Background(), testSessionID, testDraftID)

		assert.Error(t, err)
		assert.Nil(t, venda)
	})

	t.Run("Rascunho sem cliente - não chega ao backend", func(t *testing.T) {
		service, draftRepo, _ := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(0,
				domain.VendaDraftItem{MedicamentoID: 10, Quantidade: 1},
			), nil)

		_, err := service.Submeter(context.Background(), testSessionID, testDraftID)

		assert.ErrorIs(t, err, ErrDraftNotReady)
	})

	t.Run("Rascunho com linha sem medicamento - não chega ao backend", func(t *testing.T) {
		service, draftRepo, _ := newTestService(t)

		draftRepo.EXPECT().
			GetDraftByID(testDraftID).
			Return(draftWith(7,
				domain.VendaDraftItem{MedicamentoID: 10, Quantidade: 1},
				domain.VendaDraftItem{Quantidade: 1},
			), nil)

		_, err := service.Submeter(context.Background(), testSessionID, testDraftID)

		assert.ErrorIs(t, err, ErrDraftNotReady)
	})
}

func TestService_RemoverItem(t *testing.T) {
	service, draftRepo, _ := newTestService(t)

	draftRepo.EXPECT().
		GetDraftByID(testDraftID).
		Return(draftWith(1,
			domain.VendaDraftItem{MedicamentoID: 10, Quantidade: 1},
			domain.VendaDraftItem{MedicamentoID: 20, Quantidade: 2},
		), nil)

	draftRepo.EXPECT().
		ReplaceItems(gomock.Any(), testDraftID, []domain.VendaDraftItem{
			{MedicamentoID: 20, Quantidade: 2},
		}).
		Return(nil)

	draft, err := service.RemoverItem(context.Background(), testSessionID, testDraftID, 0)

	assert.NoError(t, err)
	assert.Len(t, draft.Itens, 1)
	assert.Equal(t, int64(20), draft.Itens[0].MedicamentoID)
}
