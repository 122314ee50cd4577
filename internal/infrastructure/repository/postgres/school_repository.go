package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/gridironclub/cfb-fantasy/internal/domain/school"
	qb "github.com/gridironclub/cfb-fantasy/internal/platform/querybuilder"
)

type schoolTableModel struct {
	ID          string     `db:"id"`
	Name        string     `db:"name"`
	Mascot      string     `db:"mascot"`
	Conference  string     `db:"conference"`
	ExternalRef int64      `db:"external_ref"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   time.Time  `db:"updated_at"`
	DeletedAt   *time.Time `db:"deleted_at"`
}

type schoolInsertModel struct {
	ID          string `db:"id"`
	Name        string `db:"name"`
	Mascot      string `db:"mascot"`
	Conference  string `db:"conference"`
	ExternalRef int64  `db:"external_ref"`
}

func (m schoolTableModel) toDomain() school.School {
	return school.School{
		ID:          m.ID,
		Name:        m.Name,
		Mascot:      m.Mascot,
		Conference:  m.Conference,
		ExternalRef: m.ExternalRef,
	}
}

var _ school.Repository = (*SchoolRepository)(nil)

type SchoolRepository struct {
	db *sqlx.DB
}

func NewSchoolRepository(db *sqlx.DB) *SchoolRepository {
	return &SchoolRepository{db: db}
}

func (r *SchoolRepository) GetByID(ctx context.Context, id string) (*school.School, error) {
	query, args, err := qb.Select("*").From("schools").
		Where(
			qb.Eq("id", id),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get school query: %w", err)
	}

	var row schoolTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get school: %w", err)
	}

	s := row.toDomain()
	return &s, nil
}

func (r *SchoolRepository) ListByIDs(ctx context.Context, ids []string) ([]school.School, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	values := make([]any, 0, len(ids))
	for _, id := range ids {
		values = append(values, id)
	}
	query, args, err := qb.Select("*").From("schools").
		Where(
			qb.In("id", values),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list schools by ids query: %w", err)
	}
	return r.selectSchools(ctx, query, args)
}

func (r *SchoolRepository) ListAll(ctx context.Context) ([]school.School, error) {
	query, args, err := qb.Select("*").From("schools").
		Where(qb.IsNull("deleted_at")).
		OrderBy("name").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list schools query: %w", err)
	}
	return r.selectSchools(ctx, query, args)
}

func (r *SchoolRepository) GetByExternalRef(ctx context.Context, ref int64) (*school.School, error) {
	query, args, err := qb.Select("*").From("schools").
		Where(
			qb.Eq("external_ref", ref),
			qb.IsNull("deleted_at"),
		).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build get school by ref query: %w", err)
	}

	var row schoolTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("get school by ref: %w", err)
	}

	s := row.toDomain()
	return &s, nil
}

func (r *SchoolRepository) UpsertSchools(ctx context.Context, schools []school.School) error {
	if len(schools) == 0 {
		return nil
	}

	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx upsert schools: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, s := range schools {
		insertModel := schoolInsertModel{
			ID:          s.ID,
			Name:        s.Name,
			Mascot:      s.Mascot,
			Conference:  s.Conference,
			ExternalRef: s.ExternalRef,
		}
		query, args, err := qb.InsertModel("schools", insertModel, `ON CONFLICT (external_ref) WHERE deleted_at IS NULL
DO UPDATE SET
    name = EXCLUDED.name,
    mascot = EXCLUDED.mascot,
    conference = EXCLUDED.conference,
    updated_at = NOW()`)
		if err != nil {
			return fmt.Errorf("build upsert school query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("upsert school %s: %w", s.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit upsert schools: %w", err)
	}
	return nil
}

func (r *SchoolRepository) selectSchools(ctx context.Context, query string, args []any) ([]school.School, error) {
	var rows []schoolTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select schools: %w", err)
	}
	out := make([]school.School, 0, len(rows))
	for _, row := range rows {
		out = append(out, row.toDomain())
	}
	return out, nil
}
