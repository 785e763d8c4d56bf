package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/erickpaes/farmacia-manager-api/infrastructure/database/postgres"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

const (
	vendaDraftsTable    = "venda_drafts"
	vendaDraftItemTable = "venda_draft_items"
)

type VendaDraftRepository interface {
	CreateDraft(ctx context.Context, draft *domain.VendaDraft) error
	GetDraftByID(draftID string) (*domain.VendaDraft, error)
	UpdateDraftCliente(draftID string, clienteID int64) error
	ReplaceItems(ctx context.Context, draftID string, itens []domain.VendaDraftItem) error
	DeleteDraft(draftID string) error
	DeleteDraftsBySession(sessionID string) error
}

type vendaDraftRepository struct {
	conn *postgres.Connection
}

func NewVendaDraftRepository(conn *postgres.Connection) VendaDraftRepository {
	return &vendaDraftRepository{
		conn: conn,
	}
}

func (r *vendaDraftRepository) CreateDraft(ctx context.Context, draft *domain.VendaDraft) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		draftSQL, draftArgs, err := squirrel.
			Insert(vendaDraftsTable).
			Columns("id", "session_id", "cliente_id", "created_at", "updated_at").
			Values(draft.ID, draft.SessionID, draft.ClienteID, draft.CriadoEm, draft.AtualizadoEm).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		if _, err := tx.Exec(draftSQL, draftArgs...); err != nil {
			return fmt.Errorf("erro ao criar rascunho: %w", err)
		}

		return insertItems(tx, draft.ID, draft.Itens)
	})
}

func (r *vendaDraftRepository) GetDraftByID(draftID string) (*domain.VendaDraft, error) {
	var draft domain.VendaDraft
	err := r.conn.QueryRow(
		"SELECT id, session_id, cliente_id, created_at, updated_at FROM venda_drafts WHERE id = $1",
		draftID,
	).Scan(
		&draft.ID,
		&draft.SessionID,
		&draft.ClienteID,
		&draft.CriadoEm,
		&draft.AtualizadoEm,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	itens, err := r.getItems(draftID)
	if err != nil {
		return nil, err
	}
	draft.Itens = itens

	return &draft, nil
}

func (r *vendaDraftRepository) getItems(draftID string) ([]domain.VendaDraftItem, error) {
	itemsSQL, itemsArgs, err := squirrel.
		Select("medicamento_id", "quantidade").
		From(vendaDraftItemTable).
		Where(squirrel.Eq{"draft_id": draftID}).
		OrderBy("position ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	rows, err := r.conn.Query(itemsSQL, itemsArgs...)
	if err != nil {
		return nil, fmt.Errorf("erro ao consultar itens do rascunho: %w", err)
	}
	defer rows.Close()

	itens := make([]domain.VendaDraftItem, 0)
	for rows.Next() {
		var item domain.VendaDraftItem
		if err := rows.Scan(&item.MedicamentoID, &item.Quantidade); err != nil {
			return nil, fmt.Errorf("erro ao processar resultado: %w", err)
		}
		itens = append(itens, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante iteração: %w", err)
	}

	return itens, nil
}

func (r *vendaDraftRepository) UpdateDraftCliente(draftID string, clienteID int64) error {
	draftSQL, draftArgs, err := squirrel.
		Update(vendaDraftsTable).
		Set("cliente_id", clienteID).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": draftID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(draftSQL, draftArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar cliente do rascunho: %w", err)
	}

	return nil
}

// ReplaceItems troca todas as linhas do rascunho de uma vez, na mesma
// transação, para o rascunho nunca ficar visível pela metade.
func (r *vendaDraftRepository) ReplaceItems(ctx context.Context, draftID string, itens []domain.VendaDraftItem) error {
	return r.conn.RunInTransaction(ctx, func(tx *sql.Tx) error {
		deleteSQL, deleteArgs, err := squirrel.
			Delete(vendaDraftItemTable).
			Where(squirrel.Eq{"draft_id": draftID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		if _, err := tx.Exec(deleteSQL, deleteArgs...); err != nil {
			return fmt.Errorf("erro ao limpar itens do rascunho: %w", err)
		}

		if err := insertItems(tx, draftID, itens); err != nil {
			return err
		}

		touchSQL, touchArgs, err := squirrel.
			Update(vendaDraftsTable).
			Set("updated_at", time.Now().UTC()).
			Where(squirrel.Eq{"id": draftID}).
			PlaceholderFormat(squirrel.Dollar).
			ToSql()
		if err != nil {
			return fmt.Errorf("erro ao construir consulta: %w", err)
		}

		if _, err := tx.Exec(touchSQL, touchArgs...); err != nil {
			return fmt.Errorf("erro ao atualizar rascunho: %w", err)
		}

		return nil
	})
}

func insertItems(tx *sql.Tx, draftID string, itens []domain.VendaDraftItem) error {
	if len(itens) == 0 {
		return nil
	}

	queryBuilder := squirrel.
		Insert(vendaDraftItemTable).
		Columns("draft_id", "position", "medicamento_id", "quantidade").
		PlaceholderFormat(squirrel.Dollar)

	for position, item := range itens {
		queryBuilder = queryBuilder.Values(draftID, position, item.MedicamentoID, item.Quantidade)
	}

	itemsSQL, itemsArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	if _, err := tx.Exec(itemsSQL, itemsArgs...); err != nil {
		return fmt.Errorf("erro ao inserir itens do rascunho: %w", err)
	}

	return nil
}

func (r *vendaDraftRepository) DeleteDraft(draftID string) error {
	draftSQL, draftArgs, err := squirrel.
		Delete(vendaDraftsTable).
		Where(squirrel.Eq{"id": draftID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(draftSQL, draftArgs...)
	if err != nil {
		return fmt.Errorf("erro ao remover rascunho: %w", err)
	}

	return nil
}

func (r *vendaDraftRepository) DeleteDraftsBySession(sessionID string) error {
	draftSQL, draftArgs, err := squirrel.
		Delete(vendaDraftsTable).
		Where(squirrel.Eq{"session_id": sessionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(draftSQL, draftArgs...)
	if err != nil {
		return fmt.Errorf("erro ao remover rascunhos da sessão: %w", err)
	}

	return nil
}
