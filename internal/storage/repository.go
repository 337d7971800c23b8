package storage

import (
	"context"
)

// SeasonRecord - строка таблицы сезонов для сохранения в БД
type SeasonRecord struct {
	Site     string
	Name     string
	Salary   string
	Season   int
	CheckSum string // SHA256(site|name|salary|season)
}

// Repository интерфейс для работы с хранилищем сезонов
type Repository interface {
	// InsertRow сохраняет строку, если строки с таким CheckSum ещё нет
	InsertRow(ctx context.Context, rec *SeasonRecord) (isNew bool, err error)

	// GetSeasonCount получает количество строк сайта за сезон
	GetSeasonCount(ctx context.Context, site string, season int) (int, error)

	Close() error
}
