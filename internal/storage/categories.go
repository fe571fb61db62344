package storage

import (
	"context"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"

	"github.com/carson-networks/cashflow-engine/internal/domain"
)

type categoryRow struct {
	ID          uuid.UUID  `db:"id"`
	Name        string     `db:"category_name"`
	DefaultType int16      `db:"default_type"`
	ParentID    *uuid.UUID `db:"parent_id"`
	Icon        string     `db:"icon"`
}

func (s *Storage) categoryIndex(ctx context.Context) (map[uuid.UUID]domain.Category, error) {
	q := psql.Select(
		sm.Columns("id", "category_name", "default_type", "parent_id", "icon"),
		sm.From("categories"),
	)
	rows, err := bob.All(ctx, s.exec, q, scan.StructMapper[categoryRow]())
	if err != nil {
		return nil, err
	}

	index := make(map[uuid.UUID]domain.Category, len(rows))
	for _, row := range rows {
		var parentID uuid.NullUUID
		if row.ParentID != nil {
			parentID = uuid.NullUUID{UUID: *row.ParentID, Valid: true}
		}
		index[row.ID] = domain.Category{
			ID:          row.ID,
			Name:        row.Name,
			DefaultType: domain.CategoryType(row.DefaultType),
			ParentID:    parentID,
			Icon:        row.Icon,
		}
	}
	return index, nil
}
