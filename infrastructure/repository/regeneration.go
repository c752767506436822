// Package repository contém as implementações dos repositórios para acesso aos dados
package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/production-dashboard-api/infrastructure/database/postgres"
	"github.com/vfg2006/production-dashboard-api/internal/domain"
)

const (
	regenerationTable = "schedule_regeneration"

	// DefaultRegenerationLimit é o tamanho padrão da listagem do histórico
	DefaultRegenerationLimit = 20
)

const createRegenerationTable = `
CREATE TABLE IF NOT EXISTS schedule_regeneration (
	id                       VARCHAR(32) PRIMARY KEY,
	max_daily_capacity       INTEGER NOT NULL,
	machine_efficiency       INTEGER NOT NULL,
	available_shifts_per_day INTEGER NOT NULL,
	hours_per_shift          INTEGER NOT NULL,
	downtime_schedule        TEXT NOT NULL,
	status                   VARCHAR(16) NOT NULL,
	entries                  INTEGER NOT NULL DEFAULT 0,
	error                    TEXT NOT NULL DEFAULT '',
	created_at               TIMESTAMPTZ NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

// RegenerationRepository guarda o histórico de regenerações. O cronograma em si nunca é persistido.
type RegenerationRepository interface {
	EnsureSchema(ctx context.Context) error
	Save(ctx context.Context, record *domain.RegenerationRecord) error
	List(ctx context.Context, limit int) ([]*domain.RegenerationRecord, error)
}

type regenerationRepository struct {
	conn *postgres.Connection
}

func NewRegenerationRepository(conn *postgres.Connection) RegenerationRepository {
	return &regenerationRepository{
		conn: conn,
	}
}

func (r *regenerationRepository) EnsureSchema(ctx context.Context) error {
	if _, err := r.conn.ExecContext(ctx, createRegenerationTable); err != nil {
		return fmt.Errorf("erro ao criar tabela %s: %w", regenerationTable, err)
	}
	return nil
}

func (r *regenerationRepository) Save(ctx context.Context, record *domain.RegenerationRecord) error {
	query, args, err := buildInsertRegeneration(record)
	if err != nil {
		return fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	if _, err := r.conn.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("erro ao executar query de inserção: %w", err)
	}
	return nil
}

func (r *regenerationRepository) List(ctx context.Context, limit int) ([]*domain.RegenerationRecord, error) {
	query, args, err := buildListRegenerations(limit)
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	records := make([]*domain.RegenerationRecord, 0)
	for rows.Next() {
		record, err := scanRegeneration(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear regeneração: %w", err)
		}
		records = append(records, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return records, nil
}

func buildInsertRegeneration(record *domain.RegenerationRecord) (string, []interface{}, error) {
	return squirrel.StatementBuilder.
		Insert(regenerationTable).
		Columns(
			"id",
			"max_daily_capacity",
			"machine_efficiency",
			"available_shifts_per_day",
			"hours_per_shift",
			"downtime_schedule",
			"status",
			"entries",
			"error",
			"created_at",
		).
		Values(
			record.ID,
			record.Params.MaxDailyCapacity,
			record.Params.MachineEfficiency,
			record.Params.AvailableShiftsPerDay,
			record.Params.HoursPerShift,
			record.Params.DowntimeSchedule,
			string(record.Status),
			record.Entries,
			record.Error,
			record.CreatedAt,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func buildListRegenerations(limit int) (string, []interface{}, error) {
	if limit <= 0 {
		limit = DefaultRegenerationLimit
	}

	return squirrel.
		Select(
			"sr.id",
			"sr.max_daily_capacity",
			"sr.machine_efficiency",
			"sr.available_shifts_per_day",
			"sr.hours_per_shift",
			"sr.downtime_schedule",
			"sr.status",
			"sr.entries",
			"sr.error",
			"sr.created_at",
		).
		From(regenerationTable + " sr").
		OrderBy("sr.created_at DESC").
		Limit(uint64(limit)).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
}

func scanRegeneration(rows *sql.Rows) (*domain.RegenerationRecord, error) {
	record := &domain.RegenerationRecord{}
	var status string

	err := rows.Scan(
		&record.ID,
		&record.Params.MaxDailyCapacity,
		&record.Params.MachineEfficiency,
		&record.Params.AvailableShiftsPerDay,
		&record.Params.HoursPerShift,
		&record.Params.DowntimeSchedule,
		&status,
		&record.Entries,
		&record.Error,
		&record.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	record.Status = domain.RegenerationStatus(status)
	return record, nil
}
