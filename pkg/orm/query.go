// Package orm is a thin, chainable wrapper over the shared gorm connection
// used by the repositories. It adds the one thing plain gorm doesn't give
// us out of the box: fixed-size pagination metadata.
package orm

import (
	"math"

	"gorm.io/gorm"

	"github.com/shashiranjanraj/platter/pkg/database"
)

// PerPage is the fixed page size for every paginated listing.
const PerPage = 25

// Pagination describes one page of a result set.
type Pagination struct {
	Page       int   `json:"page"`
	PerPage    int   `json:"per_page"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type Query struct {
	db *gorm.DB
}

func DB() *Query {
	return &Query{db: database.DB}
}

// Wrap lets callers lift an existing *gorm.DB (e.g. a transaction) into a Query.
func Wrap(db *gorm.DB) *Query {
	return &Query{db: db}
}

func (q *Query) Model(v interface{}) *Query {
	return &Query{db: q.db.Model(v)}
}

func (q *Query) Where(query string, args ...interface{}) *Query {
	return &Query{db: q.db.Where(query, args...)}
}

func (q *Query) Order(expr string) *Query {
	return &Query{db: q.db.Order(expr)}
}

func (q *Query) Preload(relation string) *Query {
	return &Query{db: q.db.Preload(relation)}
}

func (q *Query) Get(dest interface{}) error {
	return q.db.Find(dest).Error
}

func (q *Query) First(dest interface{}) error {
	return q.db.First(dest).Error
}

func (q *Query) Count(n *int64) error {
	return q.db.Count(n).Error
}

func (q *Query) Create(v interface{}) error {
	return q.db.Create(v).Error
}

func (q *Query) Save(v interface{}) error {
	return q.db.Save(v).Error
}

func (q *Query) Delete(v interface{}) error {
	return q.db.Delete(v).Error
}

// Gorm exposes the underlying *gorm.DB for clauses the wrapper doesn't
// cover (upserts, joins, associations).
func (q *Query) Gorm() *gorm.DB {
	return q.db
}

// Paginate fetches one fixed-size page into dest and returns the page
// metadata. Pages are 1-based; anything below 1 is clamped.
func (q *Query) Paginate(dest interface{}, page int) (Pagination, error) {
	if page < 1 {
		page = 1
	}

	var total int64
	if err := q.db.Count(&total).Error; err != nil {
		return Pagination{}, err
	}

	err := q.db.
		Limit(PerPage).
		Offset((page - 1) * PerPage).
		Find(dest).Error
	if err != nil {
		return Pagination{}, err
	}

	return Pagination{
		Page:       page,
		PerPage:    PerPage,
		Total:      total,
		TotalPages: int(math.Ceil(float64(total) / float64(PerPage))),
	}, nil
}
