// Package picking concentra a máquina de estados dos campos de busca com
// sugestões (medicamento na venda, cliente na venda, medicamento no estoque).
// Os três campos compartilham o mesmo contrato de teclado e seleção, variando
// apenas o tipo do item e a regra de casamento do texto.
package picking

import "strings"

// Key é uma tecla tratada pelo campo de sugestões.
type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyEnter
	KeyEscape
)

// Options ajusta o comportamento da lista de sugestões.
type Options struct {
	// MinQuery é o mínimo de caracteres digitados para a lista abrir.
	MinQuery int
	// Limit corta a lista de sugestões. Zero significa sem corte.
	Limit int
}

// Picker mantém o estado de um campo de busca: o texto digitado, a lista
// aberta ou fechada, o item realçado e a seleção confirmada.
type Picker[T any] struct {
	match func(item T, query string) bool
	label func(item T) string
	opts  Options

	items     []T
	query     string
	open      bool
	highlight int
	selected  *T
}

// NewPicker cria o campo com a regra de casamento e o rótulo usado para
// preencher o texto após a seleção.
func NewPicker[T any](match func(item T, query string) bool, label func(item T) string, opts Options) *Picker[T] {
	return &Picker[T]{
		match: match,
		label: label,
		opts:  opts,
	}
}

// SetItems troca o universo de itens pesquisáveis mantendo o restante do
// estado. A lista realçada é reaproximada do novo universo.
func (p *Picker[T]) SetItems(items []T) {
	p.items = items
	p.clampHighlight()
}

// Type registra o texto digitado. Digitar sempre derruba a seleção anterior e
// reabre a lista quando há sugestões para mostrar.
func (p *Picker[T]) Type(query string) {
	p.query = query
	p.selected = nil
	p.highlight = 0
	p.open = len(p.Suggestions()) > 0
}

// Query retorna o texto corrente do campo.
func (p *Picker[T]) Query() string {
	return p.query
}

// IsOpen informa se a lista de sugestões está visível.
func (p *Picker[T]) IsOpen() bool {
	return p.open
}

// Highlight retorna o índice realçado dentro das sugestões correntes.
func (p *Picker[T]) Highlight() int {
	return p.highlight
}

// Selected retorna o item confirmado, se houver.
func (p *Picker[T]) Selected() (T, bool) {
	if p.selected == nil {
		var zero T
		return zero, false
	}
	return *p.selected, true
}

// Suggestions recalcula a lista para o texto corrente. Texto abaixo do mínimo
// resolve para lista vazia, nunca para o universo inteiro.
func (p *Picker[T]) Suggestions() []T {
	query := strings.TrimSpace(p.query)
	if len([]rune(query)) < p.minQuery() {
		return nil
	}

	suggestions := make([]T, 0)
	for _, item := range p.items {
		if p.match(item, query) {
			suggestions = append(suggestions, item)
		}
		if p.opts.Limit > 0 && len(suggestions) == p.opts.Limit {
			break
		}
	}

	return suggestions
}

func (p *Picker[T]) minQuery() int {
	if p.opts.MinQuery <= 0 {
		return 1
	}
	return p.opts.MinQuery
}

// HandleKey aplica uma tecla ao estado corrente.
//
// Setas movem o realce preso ao intervalo da lista. Enter confirma o item
// realçado com a lista aberta; com a lista fechada, confirma apenas quando o
// texto casa com exatamente uma sugestão. Escape fecha a lista preservando o
// texto digitado.
func (p *Picker[T]) HandleKey(key Key) {
	suggestions := p.Suggestions()

	switch key {
	case KeyDown:
		if len(suggestions) == 0 {
			return
		}
		if !p.open {
			p.open = true
			p.highlight = 0
			return
		}
		if p.highlight < len(suggestions)-1 {
			p.highlight++
		}

	case KeyUp:
		if !p.open {
			return
		}
		if p.highlight > 0 {
			p.highlight--
		}

	case KeyEnter:
		if p.open && p.highlight < len(suggestions) {
			p.Select(suggestions[p.highlight])
			return
		}
		if !p.open && len(suggestions) == 1 {
			p.Select(suggestions[0])
		}

	case KeyEscape:
		p.open = false
	}
}

// Select confirma um item: o texto vira o rótulo do item e a lista fecha.
func (p *Picker[T]) Select(item T) {
	p.selected = &item
	p.query = p.label(item)
	p.open = false
	p.highlight = 0
}

// Clear devolve o campo ao estado inicial.
func (p *Picker[T]) Clear() {
	p.query = ""
	p.selected = nil
	p.open = false
	p.highlight = 0
}

func (p *Picker[T]) clampHighlight() {
	suggestions := p.Suggestions()
	if len(suggestions) == 0 {
		p.highlight = 0
		p.open = false
		return
	}
	if p.highlight > len(suggestions)-1 {
		p.highlight = len(suggestions) - 1
	}
}

// ContainsFold casa por substring sem diferenciar maiúsculas de minúsculas,
// a regra padrão dos três campos de busca.
func ContainsFold(text, query string) bool {
	return strings.Contains(strings.ToLower(text), strings.ToLower(query))
}
