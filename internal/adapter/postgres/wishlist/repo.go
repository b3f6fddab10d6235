// Package wishlist implements the wishlist repository using PostgreSQL:
// items, hearts and comments. Counter updates share the transaction of the
// child row, so heart and comment methods expect to run inside
// TxManager.RunInTx.
package wishlist

import (
	"context"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	postgres "github.com/kadong/kadong-backend/internal/adapter/postgres"
	"github.com/kadong/kadong-backend/internal/domain"
)

// Repo provides wishlist persistence backed by PostgreSQL.
type Repo struct {
	pool *pgxpool.Pool
}

// New creates a new wishlist repository.
func New(pool *pgxpool.Pool) *Repo {
	return &Repo{pool: pool}
}

// ---------------------------------------------------------------------------
// SQL constants
// ---------------------------------------------------------------------------

const itemColumns = `id, user_id, product_name, product_url, image_url, description, category,
	price::float8, currency, purchased, heart_count, comment_count, created_at, updated_at, deleted_at`

const createSQL = `
INSERT INTO wishlist_items (user_id, product_name, product_url, image_url, description, category, price, currency, purchased)
VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
RETURNING ` + itemColumns

const getByIDSQL = `
SELECT ` + itemColumns + `
FROM wishlist_items
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

const setPurchasedSQL = `
UPDATE wishlist_items SET purchased = $3, updated_at = NOW()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL
RETURNING ` + itemColumns

const softDeleteSQL = `
UPDATE wishlist_items SET deleted_at = NOW()
WHERE id = $1 AND user_id = $2 AND deleted_at IS NULL`

const statsCountsSQL = `
SELECT count(*),
       count(*) FILTER (WHERE purchased),
       count(*) FILTER (WHERE NOT purchased)
FROM wishlist_items
WHERE user_id = $1 AND deleted_at IS NULL`

const statsValueSQL = `
SELECT currency, COALESCE(SUM(price), 0)::float8
FROM wishlist_items
WHERE user_id = $1 AND deleted_at IS NULL AND NOT purchased AND price IS NOT NULL
GROUP BY currency`

const statsCategorySQL = `
SELECT COALESCE(category, ''), count(*)
FROM wishlist_items
WHERE user_id = $1 AND deleted_at IS NULL
GROUP BY 1`

const lockItemSQL = `
SELECT id FROM wishlist_items
WHERE id = $1 AND deleted_at IS NULL
FOR UPDATE`

const insertHeartSQL = `
INSERT INTO wishlist_hearts (item_id, user_id) VALUES ($1, $2)
ON CONFLICT (item_id, user_id) DO NOTHING`

const deleteHeartSQL = `
DELETE FROM wishlist_hearts WHERE item_id = $1 AND user_id = $2`

const bumpHeartsSQL = `
UPDATE wishlist_items SET heart_count = GREATEST(heart_count + $2, 0)
WHERE id = $1
RETURNING heart_count`

const heartCountSQL = `SELECT heart_count FROM wishlist_items WHERE id = $1`

const bumpCommentsSQL = `
UPDATE wishlist_items SET comment_count = GREATEST(comment_count + $2, 0)
WHERE id = $1`

const commentColumns = `c.id, c.item_id, c.user_id, u.name, c.content, c.created_at, c.deleted_at`

const itemExistsSQL = `
SELECT id FROM wishlist_items WHERE id = $1 AND deleted_at IS NULL`

const listCommentsSQL = `
SELECT ` + commentColumns + `
FROM wishlist_comments c
JOIN users u ON u.id = c.user_id
WHERE c.item_id = $1 AND c.deleted_at IS NULL
ORDER BY c.created_at ASC, c.id ASC
LIMIT $2 OFFSET $3`

const countCommentsSQL = `
SELECT count(*) FROM wishlist_comments WHERE item_id = $1 AND deleted_at IS NULL`

const createCommentSQL = `
WITH c AS (
    INSERT INTO wishlist_comments (item_id, user_id, content)
    VALUES ($1, $2, $3)
    RETURNING id, item_id, user_id, content, created_at, deleted_at
)
SELECT ` + commentColumns + `
FROM c
JOIN users u ON u.id = c.user_id`

const softDeleteCommentSQL = `
UPDATE wishlist_comments SET deleted_at = NOW()
WHERE id = $1 AND item_id = $2 AND user_id = $3 AND deleted_at IS NULL`

var updater = postgres.NewUpdateBuilder("wishlist_items",
	[]string{"product_name", "product_url", "image_url", "description", "category", "price", "currency", "purchased"},
	itemColumns,
)

// sortColumns maps accepted sort keys to SQL expressions.
var sortColumns = map[string]string{
	domain.WishlistSortCreatedAt:  "created_at",
	domain.WishlistSortPrice:      "price",
	domain.WishlistSortHeartCount: "heart_count",
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ---------------------------------------------------------------------------
// Items
// ---------------------------------------------------------------------------

// List returns the user's items matching f plus the total count.
func (r *Repo) List(ctx context.Context, userID uuid.UUID, f domain.WishlistFilter) ([]domain.WishlistItem, int, error) {
	page := f.Page.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	base := postgres.Builder().
		Select().
		From("wishlist_items").
		Where("user_id = ?", userID).
		Where("deleted_at IS NULL")
	if f.Category != nil {
		base = base.Where("category = ?", string(*f.Category))
	}
	if f.Purchased != nil {
		base = base.Where("purchased = ?", *f.Purchased)
	}
	if f.Search != "" {
		base = base.Where(sq.ILike{"product_name": "%" + likeEscaper.Replace(f.Search) + "%"})
	}

	countSQL, countArgs, err := base.Columns("count(*)").ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build wishlist count: %w", err)
	}
	var total int
	if err := q.QueryRow(ctx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count wishlist items: %w", err)
	}

	listSQL, listArgs, err := base.Columns(itemColumns).
		OrderBy(orderClause(f.SortBy, f.SortOrder), "id ASC").
		Limit(uint64(page.Limit)).
		Offset(uint64(page.Offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("build wishlist list: %w", err)
	}

	rows, err := q.Query(ctx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("list wishlist items: %w", err)
	}
	defer rows.Close()

	items := []domain.WishlistItem{}
	for rows.Next() {
		it, err := scanItem(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan wishlist item: %w", err)
		}
		items = append(items, *it)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list wishlist items: %w", err)
	}
	return items, total, nil
}

// orderClause defaults to created_at DESC. Unknown keys never reach SQL.
func orderClause(sortBy string, order domain.SortOrder) string {
	col, ok := sortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "DESC"
	if order == domain.SortAsc {
		dir = "ASC"
	}
	if col == "price" {
		return col + " " + dir + " NULLS LAST"
	}
	return col + " " + dir
}

// GetByID returns an item owned by userID.
func (r *Repo) GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.WishlistItem, error) {
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, getByIDSQL, id, userID))
	if err != nil {
		return nil, postgres.MapError(err, "wishlist item", id)
	}
	return it, nil
}

// Create inserts an item.
func (r *Repo) Create(ctx context.Context, it *domain.WishlistItem) (*domain.WishlistItem, error) {
	row := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, createSQL,
		it.UserID, it.ProductName, it.ProductURL, it.ImageURL, it.Description,
		categoryValue(it.Category), it.Price, string(it.Currency), it.Purchased,
	)
	created, err := scanItem(row)
	if err != nil {
		return nil, postgres.MapError(err, "wishlist item", uuid.Nil)
	}
	return created, nil
}

// Update applies the set fields of patch.
func (r *Repo) Update(ctx context.Context, userID, id uuid.UUID, patch domain.WishlistPatch) (*domain.WishlistItem, error) {
	var fields []postgres.Field
	fields = postgres.AppendOptional(fields, "product_name", patch.ProductName, nil)
	fields = postgres.AppendOptional(fields, "product_url", patch.ProductURL, nil)
	fields = postgres.AppendOptional(fields, "image_url", patch.ImageURL, nil)
	fields = postgres.AppendOptional(fields, "description", patch.Description, nil)
	fields = postgres.AppendOptional(fields, "category", patch.Category, func(c domain.WishlistCategory) any { return string(c) })
	fields = postgres.AppendOptional(fields, "price", patch.Price, nil)
	fields = postgres.AppendOptional(fields, "currency", patch.Currency, func(c domain.Currency) any { return string(c) })
	fields = postgres.AppendOptional(fields, "purchased", patch.Purchased, nil)

	sql, args, err := updater.Build(id, userID, fields)
	if err != nil {
		return nil, err
	}

	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, sql, args...))
	if err != nil {
		return nil, postgres.MapError(err, "wishlist item", id)
	}
	return it, nil
}

// SetPurchased sets the purchased flag.
func (r *Repo) SetPurchased(ctx context.Context, userID, id uuid.UUID, purchased bool) (*domain.WishlistItem, error) {
	it, err := scanItem(postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, setPurchasedSQL, id, userID, purchased))
	if err != nil {
		return nil, postgres.MapError(err, "wishlist item", id)
	}
	return it, nil
}

// SoftDelete sets deleted_at. A second delete returns domain.ErrNotFound.
func (r *Repo) SoftDelete(ctx context.Context, userID, id uuid.UUID) error {
	ct, err := postgres.QuerierFromCtx(ctx, r.pool).Exec(ctx, softDeleteSQL, id, userID)
	if err != nil {
		return postgres.MapError(err, "wishlist item", id)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("wishlist item %s: %w", id, domain.ErrNotFound)
	}
	return nil
}

// Stats aggregates the user's live items. TotalValue only counts unpurchased
// items that have a price.
func (r *Repo) Stats(ctx context.Context, userID uuid.UUID) (*domain.WishlistStats, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)
	st := &domain.WishlistStats{
		TotalValue: map[domain.Currency]float64{},
		ByCategory: map[string]int{},
	}

	if err := q.QueryRow(ctx, statsCountsSQL, userID).Scan(&st.Total, &st.Purchased, &st.Pending); err != nil {
		return nil, fmt.Errorf("wishlist stats counts: %w", err)
	}

	rows, err := q.Query(ctx, statsValueSQL, userID)
	if err != nil {
		return nil, fmt.Errorf("wishlist stats value: %w", err)
	}
	for rows.Next() {
		var (
			cur string
			sum float64
		)
		if err := rows.Scan(&cur, &sum); err != nil {
			rows.Close()
			return nil, fmt.Errorf("scan wishlist stats value: %w", err)
		}
		st.TotalValue[domain.Currency(strings.TrimSpace(cur))] = sum
	}
	rows.Close()
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("wishlist stats value: %w", err)
	}

	rows, err = q.Query(ctx, statsCategorySQL, userID)
	if err != nil {
		return nil, fmt.Errorf("wishlist stats category: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var (
			cat string
			n   int
		)
		if err := rows.Scan(&cat, &n); err != nil {
			return nil, fmt.Errorf("scan wishlist stats category: %w", err)
		}
		if cat == "" {
			cat = "uncategorized"
		}
		st.ByCategory[cat] = n
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("wishlist stats category: %w", err)
	}
	return st, nil
}

// ---------------------------------------------------------------------------
// Hearts
// ---------------------------------------------------------------------------

// LockItem row-locks a live item of any owner. Hearts and comments lock the
// item before touching its counters.
func (r *Repo) LockItem(ctx context.Context, id uuid.UUID) error {
	var got uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, lockItemSQL, id).Scan(&got); err != nil {
		return postgres.MapError(err, "wishlist item", id)
	}
	return nil
}

// ItemExists returns domain.ErrNotFound unless a live item with id exists.
func (r *Repo) ItemExists(ctx context.Context, id uuid.UUID) error {
	var got uuid.UUID
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, itemExistsSQL, id).Scan(&got); err != nil {
		return postgres.MapError(err, "wishlist item", id)
	}
	return nil
}

// AddHeart records userID's heart. It reports whether the heart is new and
// returns the resulting heart_count.
func (r *Repo) AddHeart(ctx context.Context, itemID, userID uuid.UUID) (int, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, insertHeartSQL, itemID, userID)
	if err != nil {
		return 0, false, postgres.MapError(err, "wishlist heart", itemID)
	}
	if ct.RowsAffected() == 0 {
		n, err := r.heartCount(ctx, itemID)
		return n, false, err
	}

	var n int
	if err := q.QueryRow(ctx, bumpHeartsSQL, itemID, 1).Scan(&n); err != nil {
		return 0, false, postgres.MapError(err, "wishlist item", itemID)
	}
	return n, true, nil
}

// RemoveHeart deletes userID's heart and reports whether one existed.
func (r *Repo) RemoveHeart(ctx context.Context, itemID, userID uuid.UUID) (int, bool, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, deleteHeartSQL, itemID, userID)
	if err != nil {
		return 0, false, postgres.MapError(err, "wishlist heart", itemID)
	}
	if ct.RowsAffected() == 0 {
		n, err := r.heartCount(ctx, itemID)
		return n, false, err
	}

	var n int
	if err := q.QueryRow(ctx, bumpHeartsSQL, itemID, -1).Scan(&n); err != nil {
		return 0, false, postgres.MapError(err, "wishlist item", itemID)
	}
	return n, true, nil
}

func (r *Repo) heartCount(ctx context.Context, itemID uuid.UUID) (int, error) {
	var n int
	if err := postgres.QuerierFromCtx(ctx, r.pool).QueryRow(ctx, heartCountSQL, itemID).Scan(&n); err != nil {
		return 0, postgres.MapError(err, "wishlist item", itemID)
	}
	return n, nil
}

// ---------------------------------------------------------------------------
// Comments
// ---------------------------------------------------------------------------

// ListComments returns live comments of an item, oldest first.
func (r *Repo) ListComments(ctx context.Context, itemID uuid.UUID, page domain.Page) ([]domain.WishlistComment, int, error) {
	page = page.Normalize()
	q := postgres.QuerierFromCtx(ctx, r.pool)

	var total int
	if err := q.QueryRow(ctx, countCommentsSQL, itemID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count comments: %w", err)
	}

	rows, err := q.Query(ctx, listCommentsSQL, itemID, page.Limit, page.Offset)
	if err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	defer rows.Close()

	comments := []domain.WishlistComment{}
	for rows.Next() {
		c, err := scanComment(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("scan comment: %w", err)
		}
		comments = append(comments, *c)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("list comments: %w", err)
	}
	return comments, total, nil
}

// CreateComment inserts a comment and increments comment_count.
func (r *Repo) CreateComment(ctx context.Context, itemID, userID uuid.UUID, content string) (*domain.WishlistComment, error) {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	c, err := scanComment(q.QueryRow(ctx, createCommentSQL, itemID, userID, content))
	if err != nil {
		return nil, postgres.MapError(err, "wishlist comment", itemID)
	}
	if _, err := q.Exec(ctx, bumpCommentsSQL, itemID, 1); err != nil {
		return nil, postgres.MapError(err, "wishlist item", itemID)
	}
	return c, nil
}

// DeleteComment soft-deletes a comment written by userID and decrements
// comment_count. Comments of other authors are reported as not found.
func (r *Repo) DeleteComment(ctx context.Context, itemID, commentID, userID uuid.UUID) error {
	q := postgres.QuerierFromCtx(ctx, r.pool)

	ct, err := q.Exec(ctx, softDeleteCommentSQL, commentID, itemID, userID)
	if err != nil {
		return postgres.MapError(err, "wishlist comment", commentID)
	}
	if ct.RowsAffected() == 0 {
		return fmt.Errorf("wishlist comment %s: %w", commentID, domain.ErrNotFound)
	}
	if _, err := q.Exec(ctx, bumpCommentsSQL, itemID, -1); err != nil {
		return postgres.MapError(err, "wishlist item", itemID)
	}
	return nil
}

// ---------------------------------------------------------------------------
// Row scanning helpers
// ---------------------------------------------------------------------------

func categoryValue(c *domain.WishlistCategory) any {
	if c == nil {
		return nil
	}
	return string(*c)
}

func scanItem(row pgx.Row) (*domain.WishlistItem, error) {
	var (
		it       domain.WishlistItem
		category *string
		currency string
	)
	if err := row.Scan(&it.ID, &it.UserID, &it.ProductName, &it.ProductURL, &it.ImageURL, &it.Description,
		&category, &it.Price, &currency, &it.Purchased, &it.HeartCount, &it.CommentCount,
		&it.CreatedAt, &it.UpdatedAt, &it.DeletedAt); err != nil {
		return nil, err
	}
	if category != nil {
		c := domain.WishlistCategory(*category)
		it.Category = &c
	}
	it.Currency = domain.Currency(strings.TrimSpace(currency))
	return &it, nil
}

func scanComment(row pgx.Row) (*domain.WishlistComment, error) {
	var c domain.WishlistComment
	if err := row.Scan(&c.ID, &c.ItemID, &c.UserID, &c.UserName, &c.Content, &c.CreatedAt, &c.DeletedAt); err != nil {
		return nil, err
	}
	return &c, nil
}
