package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	_ "github.com/lib/pq"
	"github.com/erickpaes/farmacia-manager-api/infrastructure/database/postgres"
	"github.com/erickpaes/farmacia-manager-api/internal/domain"
)

const sessionsTable = "sessions"

type SessionRepository interface {
	CreateSession(session *domain.Session) error
	GetSessionByID(sessionID string) (*domain.Session, error)
	TouchSession(sessionID string, ultimoUso time.Time) error
	DeleteSession(sessionID string) (bool, error)
	DeleteExpiredSessions(before time.Time) (int64, error)
}

type sessionRepository struct {
	conn *postgres.Connection
}

func NewSessionRepository(conn *postgres.Connection) SessionRepository {
	return &sessionRepository{
		conn: conn,
	}
}

func (r *sessionRepository) CreateSession(session *domain.Session) error {
	queryBuilder := squirrel.
		Insert(sessionsTable).
		Columns("id", "username", "sealed_credentials", "created_at", "last_used_at").
		Values(session.ID, session.Username, session.CredenciaisSeladas, session.CriadoEm, session.UltimoUso).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(sessionSQL, sessionArgs...)
	if err != nil {
		return fmt.Errorf("erro ao criar sessão: %w", err)
	}

	return nil
}

func (r *sessionRepository) GetSessionByID(sessionID string) (*domain.Session, error) {
	var session domain.Session
	err := r.conn.QueryRow(
		"SELECT id, username, sealed_credentials, created_at, last_used_at FROM sessions WHERE id = $1",
		sessionID,
	).Scan(
		&session.ID,
		&session.Username,
		&session.CredenciaisSeladas,
		&session.CriadoEm,
		&session.UltimoUso,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &session, nil
}

func (r *sessionRepository) TouchSession(sessionID string, ultimoUso time.Time) error {
	queryBuilder := squirrel.
		Update(sessionsTable).
		Set("last_used_at", ultimoUso).
		Where(squirrel.Eq{"id": sessionID}).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir consulta: %w", err)
	}

	_, err = r.conn.Exec(sessionSQL, sessionArgs...)
	if err != nil {
		return fmt.Errorf("erro ao atualizar sessão: %w", err)
	}

	return nil
}

// DeleteSession remove a sessão e informa se a remoção aconteceu nesta
// chamada. Chamadas repetidas para o mesmo ID retornam false sem erro.
func (r *sessionRepository) DeleteSession(sessionID string) (bool, error) {
	queryBuilder := squirrel.
		Delete(sessionsTable).
		Where(squirrel.Eq{"id": sessionID}).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(sessionSQL, sessionArgs...)
	if err != nil {
		return false, fmt.Errorf("erro ao remover sessão: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}

	return affected > 0, nil
}

func (r *sessionRepository) DeleteExpiredSessions(before time.Time) (int64, error) {
	queryBuilder := squirrel.
		Delete(sessionsTable).
		Where(squirrel.Lt{"last_used_at": before}).
		PlaceholderFormat(squirrel.Dollar)

	sessionSQL, sessionArgs, err := queryBuilder.ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir consulta: %w", err)
	}

	result, err := r.conn.Exec(sessionSQL, sessionArgs...)
	if err != nil {
		return 0, fmt.Errorf("erro ao remover sessões expiradas: %w", err)
	}

	return result.RowsAffected()
}
