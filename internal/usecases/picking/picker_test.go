package picking

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erickpaes/farmacia-manager-api/internal/domain"
	"github.com/erickpaes/farmacia-manager-api/pkg/utils"
)

func newMedicamentoPicker(nomes ...string) *Picker[domain.Medicamento] {
	picker := NewPicker(
		func(med domain.Medicamento, query string) bool {
			return ContainsFold(med.Nome, query)
		},
		func(med domain.Medicamento) string { return med.Nome },
		Options{},
	)

	itens := make([]domain.Medicamento, 0, len(nomes))
	for i, nome := range nomes {
		itens = append(itens, domain.Medicamento{ID: int64(i + 1), Nome: nome})
	}
	picker.SetItems(itens)

	return picker
}

func TestPicker_Suggestions(t *testing.T) {
	t.Run("Campo vazio não sugere nada, nem o universo inteiro", func(t *testing.T) {
		picker := newMedicamentoPicker("Dipirona", "Paracetamol")

		picker.Type("")

		assert.Empty(t, picker.Suggestions())
		assert.False(t, picker.IsOpen())
	})

	t.Run("Casamento ignora maiúsculas e busca por substring", func(t *testing.T) {
		picker := newMedicamentoPicker("Dipirona 500mg", "Paracetamol", "Dipirona Gotas")

		picker.Type("dipi")

		suggestions := picker.Suggestions()
		assert.Len(t, suggestions, 2)
		assert.Equal(t, "Dipirona 500mg", suggestions[0].Nome)
		assert.Equal(t, "Dipirona Gotas", suggestions[1].Nome)
	})

	t.Run("Texto abaixo do mínimo configurado não abre a lista", func(t *testing.T) {
		picker := NewPicker(
			func(med domain.Medicamento, query string) bool { return ContainsFold(med.Nome, query) },
			func(med domain.Medicamento) string { return med.Nome },
			Options{MinQuery: 2},
		)
		picker.SetItems([]domain.Medicamento{{ID: 1, Nome: "Dipirona"}})

		picker.Type("d")
		assert.Empty(t, picker.Suggestions())

		picker.Type("di")
		assert.Len(t, picker.Suggestions(), 1)
	})

	t.Run("Limite corta a lista de sugestões", func(t *testing.T) {
		picker := NewPicker(
			func(med domain.Medicamento, query string) bool { return ContainsFold(med.Nome, query) },
			func(med domain.Medicamento) string { return med.Nome },
			Options{Limit: 2},
		)
		picker.SetItems([]domain.Medicamento{
			{ID: 1, Nome: "Dipirona 500mg"},
			{ID: 2, Nome: "Dipirona Gotas"},
			{ID: 3, Nome: "Dipirona Infantil"},
		})

		picker.Type("dipirona")

		assert.Len(t, picker.Suggestions(), 2)
	})
}

func TestPicker_HandleKey(t *testing.T) {
	t.Run("Setas movem o realce preso ao intervalo da lista", func(t *testing.T) {
		picker := newMedicamentoPicker("Dipirona 500mg", "Dipirona Gotas")
		picker.Type("dipirona")

		// Subir no topo não sai do índice zero
		picker.HandleKey(KeyUp)
		assert.Equal(t, 0, picker.Highlight())

		picker.HandleKey(KeyDown)
		assert.Equal(t, 1, picker.Highlight())

		// Descer no fim não passa do último
		picker.HandleKey(KeyDown)
		assert.Equal(t, 1, picker.Highlight())
	})

	t.Run("Enter com a lista aberta confirma o item realçado", func(t *testing.T) {
		picker := newMedicamentoPicker("Dipirona 500mg", "Dipirona Gotas")
		picker.Type("dipirona")

		picker.HandleKey(KeyDown)
		picker.HandleKey(KeyEnter)

		selected, ok := picker.Selected()
		assert.True(t, ok)
		assert.Equal(t, "Dipirona Gotas", selected.Nome)
		assert.Equal(t, "Dipirona Gotas", picker.Query())
		assert.False(t, picker.IsOpen())
	})

	t.Run("Enter com a lista fechada confirma quando sobra um único casamento", func(t *testing.T) {
		picker := newMedicamentoPicker("Dipirona 500mg", "Paracetamol")
		picker.Type("parace")
		picker.HandleKey(KeyEscape)
		assert.False(t, picker.IsOpen())

		picker.HandleKey(KeyEnter)

		selected, ok := picker.Selected()
		assert.True(t, ok)
		assert.Equal(t, "Paracetamol", selected.Nome)
	})

	t.Run("Enter com a lista fechada e casamento ambíguo não confirma nada", func(t *testing.T) {
		picker := newMedicamentoPicker("Dipirona 500mg", "Dipirona Gotas")
		picker.Type("dipirona")
		picker.HandleKey(KeyEscape)

		picker.HandleKey(KeyEnter)

		_, ok := picker.Selected()
		assert.False(t, ok)
	})

	t.Run("Escape fecha a lista preservando o texto digitado", func(t *testing.T) {
		picker := newMedicamentoPicker("Dipirona 500mg")
		picker.Type("dipi")

		picker.HandleKey(KeyEscape)

		assert.False(t, picker.IsOpen())
		assert.Equal(t, "dipi", picker.Query())
	})

	t.Run("Digitar derruba a seleção confirmada", func(t *testing.T) {
		picker := newMedicamentoPicker("Dipirona 500mg")
		picker.Type("dipirona")
		picker.HandleKey(KeyEnter)

		_, ok := picker.Selected()
		assert.True(t, ok)

		picker.Type("dipirona 5")

		_, ok = picker.Selected()
		assert.False(t, ok)
	})
}

func TestPicker_Clientes(t *testing.T) {
	t.Run("Cliente casa por nome ou por dígitos do CPF", func(t *testing.T) {
		picker := NewPicker(
			func(cliente domain.Cliente, query string) bool {
				if ContainsFold(cliente.Nome, query) {
					return true
				}
				digits := utils.OnlyDigits(query)
				return digits != "" && ContainsFold(utils.OnlyDigits(cliente.CPF), digits)
			},
			func(cliente domain.Cliente) string { return cliente.Nome },
			Options{MinQuery: 2, Limit: 10},
		)
		picker.SetItems([]domain.Cliente{
			{ID: 1, Nome: "Maria Souza", CPF: "123.456.789-01"},
			{ID: 2, Nome: "João Lima", CPF: "987.654.321-00"},
		})

		picker.Type("987.654")
		suggestions := picker.Suggestions()
		assert.Len(t, suggestions, 1)
		assert.Equal(t, "João Lima", suggestions[0].Nome)

		picker.Type("maria")
		suggestions = picker.Suggestions()
		assert.Len(t, suggestions, 1)
		assert.Equal(t, "Maria Souza", suggestions[0].Nome)
	})
}
