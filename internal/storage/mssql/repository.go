package mssql

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/microsoft/go-mssqldb"

	"github.com/MegandM/web-scrape/internal/observability"
	"github.com/MegandM/web-scrape/internal/storage"
)

type Repository struct {
	db             *sql.DB
	commandTimeout time.Duration
	logger         *observability.Logger
}

var _ storage.Repository = (*Repository)(nil)

func NewRepository(dsn string, commandTimeout time.Duration, logger *observability.Logger) (*Repository, error) {
	db, err := sql.Open("sqlserver", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Тестируем соединение
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return &Repository{
		db:             db,
		commandTimeout: commandTimeout,
		logger:         logger,
	}, nil
}

// InsertRow добавляет строку, если её CheckSum ещё не встречался
func (r *Repository) InsertRow(ctx context.Context, rec *storage.SeasonRecord) (bool, error) {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	query := `
		MERGE INTO TblSeasonSalaries AS target
		USING (SELECT @CheckSum AS CheckSum) AS source
		ON target.[CheckSum] = source.CheckSum
		WHEN NOT MATCHED THEN
			INSERT ([Site], [PlayerName], [PlayerSalary], [Season], [CheckSum])
			VALUES (@Site, @PlayerName, @PlayerSalary, @Season, @CheckSum);
	`

	stmt, err := r.db.PrepareContext(ctx, query)
	if err != nil {
		return false, fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer func() {
		if err := stmt.Close(); err != nil {
			r.logger.Error("Failed to close statement", "error", err.Error())
		}
	}()

	result, err := stmt.ExecContext(ctx,
		sql.Named("Site", rec.Site),
		sql.Named("PlayerName", rec.Name),
		sql.Named("PlayerSalary", rec.Salary),
		sql.Named("Season", rec.Season),
		sql.Named("CheckSum", rec.CheckSum),
	)
	if err != nil {
		return false, fmt.Errorf("failed to execute insert: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("failed to get rows affected: %w", err)
	}

	return rowsAffected > 0, nil
}

// GetSeasonCount получает количество строк сайта за сезон
func (r *Repository) GetSeasonCount(ctx context.Context, site string, season int) (int, error) {
	ctx, cancel := context.WithTimeout(ctx, r.commandTimeout)
	defer cancel()

	query := `SELECT COUNT(*) FROM TblSeasonSalaries WHERE [Site] = @Site AND [Season] = @Season`

	var count int
	err := r.db.QueryRowContext(ctx, query, sql.Named("Site", site), sql.Named("Season", season)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to query database: %w", err)
	}

	return count, nil
}

// Close закрывает соединение с БД
func (r *Repository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}
