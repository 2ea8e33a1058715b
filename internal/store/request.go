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

const requestTableName = "pasithulir.requests"

var requestColumns = utils.StructTagValues(types.Request{})

type RequestRepository struct {
	pool *pgxpool.Pool
}

func NewRequestRepository(pool *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{pool: pool}
}

// Requests returns the full collection in insertion order.
func (r *RequestRepository) Requests(ctx context.Context) ([]*types.Request, error) {

	query, args, err := psql().Select(requestColumns...).From(requestTableName).
		OrderBy("created_at asc").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate requests query: %w", err)
	}

	var requests = make([]*types.Request, 0)
	err = pgxscan.Select(ctx, r.pool, &requests, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch requests: %w", err)
	}

	return requests, nil
}

func (r *RequestRepository) Request(ctx context.Context, requestID string) (*types.Request, error) {

	query, args, err := psql().Select(requestColumns...).From(requestTableName).
		Where(sq.Eq{"id": requestID}).
		Limit(1).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("failed to generate request query: %w", err)
	}

	var request = new(types.Request)
	err = pgxscan.Get(ctx, r.pool, request, query, args...)
	if err != nil && !pgxscan.NotFound(err) {
		return nil, err
	}

	if err != nil {
		return nil, types.ErrRequestNotFound
	}

	return request, nil
}

func (r *RequestRepository) CreateRequest(ctx context.Context, request *types.Request) error {

	request.ID = utils.NanoID()
	request.CreatedAt = time.Now()

	requestMap := utils.StructToMap(request)

	query, args, err := psql().Insert(requestTableName).SetMap(requestMap).ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate insert request query: %w", err)
	}

	_, err = r.pool.Exec(ctx, query, args...)
	return utils.ErrorWrapOrNil(err, "failed to create request")

}

// ApproveRequest sets the status field only; the rest of the record is
// untouched. Approving an already approved request is a no-op write.
func (r *RequestRepository) ApproveRequest(ctx context.Context, requestID string) error {
	return r.setRequestField(ctx, requestID, "status", types.RequestStatusApproved)
}

// FinishRequest flips the finished flag regardless of approval state; a
// pending request may be finished directly.
func (r *RequestRepository) FinishRequest(ctx context.Context, requestID string) error {
	return r.setRequestField(ctx, requestID, "finished", true)
}

func (r *RequestRepository) setRequestField(ctx context.Context, requestID, column string, value any) error {

	query, args, err := psql().Update(requestTableName).
		Set(column, value).
		Where(sq.Eq{"id": requestID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("failed to generate update request query for request %s: %w", requestID, err)
	}

	tag, err := r.pool.Exec(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to update request: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return types.ErrRequestNotFound
	}

	return nil
}
