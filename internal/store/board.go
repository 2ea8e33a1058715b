package store

import (
	"context"
	"fmt"
	"time"

	"pasithulir/internal/utils"
	"pasithulir/pkg/types"

	sq "github.com/Masterminds/squirrel"
	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5/pgxpool"
)

const boardTableName = "pasithulir.board_items"

var boardColumns = utils.StructTagValues(types.BoardItem{})

type BoardRepository struct {
	pool *pgxpool.Pool
}

func NewBoardRepository(pool *pgxpool.Pool) *BoardRepository {
	return &BoardRepository{pool: pool}
}

// BoardItems returns live-board entries, optionally narrowed by a free-text
// search over donor, location and food type, and by urgency badge.
func (r *BoardRepository) BoardItems(ctx context.Context, search, urgency string) ([]*types.BoardItem, error) {

	builder := psql().Select(boardColumns...).From(boardTableName).
		OrderBy("created_at asc")

	if search != "" {
		pattern := fmt.Sprintf("%%%s%%", search)
		builder = builder.Where(sq.Or{
			sq.ILike{"donor_name": pattern},
			sq.ILike{"location": pattern},
			sq.ILike{"food_type": pattern},
		})
	}

	if urgency != "" && urgency != "all" {
		builder = builder.Where(sq.Eq{"urgency": urgency})
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate board items query: %w", err)
	}

	var items = make([]*types.BoardItem, 0)
	err = pgxscan.Select(ctx, r.pool, &items, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch board items: %w", err)
	}

	return items, nil
}

func (r *BoardRepository) CreateBoardItem(ctx context.Context, item *types.BoardItem) error {

	if item.ID == "" {
		item.ID = utils.NanoID()
	}
	item.CreatedAt = time.Now()

	itemMap := utils.StructToMap(item)

	query, args, err := psql().Insert(boardTableName).SetMap(itemMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert board item query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create board item")

}
