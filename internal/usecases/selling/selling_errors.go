package selling

import "errors"

var (
	ErrDraftNotFound       = errors.New("rascunho de venda não encontrado")
	ErrItemNotFound        = errors.New("item do rascunho não encontrado")
	ErrDuplicateMedication = errors.New("medicamento já adicionado à venda")
	ErrInvalidQuantity     = errors.New("quantidade deve ser maior ou igual a 1")
	ErrDraftNotReady       = errors.New("rascunho incompleto para submissão")
)
