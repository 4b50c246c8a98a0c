package repository

import (
	"context"
	"fmt"
	"strings"

	"portfolio-backend/internal/database"
	"portfolio-backend/internal/database/postgres"
	"portfolio-backend/internal/domain/skill"
)

// SkillRepository is the data access surface for skills. Implementations
// return skill.ErrNotFound and skill.ErrDuplicateName unwrapped so callers
// can attach request details.
type SkillRepository interface {
	Find(ctx context.Context, q skill.Query) ([]skill.Skill, error)
	FindByID(ctx context.Context, id int64) (skill.Skill, error)
	ExistsByID(ctx context.Context, id int64) (bool, error)
	ExistsByName(ctx context.Context, name string) (bool, error)
	DistinctCategories(ctx context.Context) ([]string, error)
	CountByCategory(ctx context.Context) ([]skill.CategoryCount, error)

	Create(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Update(ctx context.Context, s skill.Skill) (skill.Skill, error)
	Delete(ctx context.Context, id int64) error
	DeleteAll(ctx context.Context) (int64, error)
}

// SkillStore scopes a unit of work to one transaction: Read runs fn in a
// read-only transaction, Write in a read-write one that commits only when fn
// returns nil.
type SkillStore interface {
	Read(ctx context.Context, fn func(r SkillRepository) error) error
	Write(ctx context.Context, fn func(r SkillRepository) error) error
	Ping(ctx context.Context) error
}

const skillColumns = `id, name, category, proficiency_level, years_experience, description, icon_url, color_hex, created_at, updated_at`

type PostgresSkillStore struct {
	db database.DB
}

func NewPostgresSkillStore(db database.DB) *PostgresSkillStore {
	return &PostgresSkillStore{db: db}
}

func (s *PostgresSkillStore) Read(ctx context.Context, fn func(r SkillRepository) error) error {
	return database.RunInTx(ctx, s.db, database.TxOptions{ReadOnly: true}, func(q database.Querier) error {
		return fn(NewPostgresSkillRepository(q))
	})
}

func (s *PostgresSkillStore) Write(ctx context.Context, fn func(r SkillRepository) error) error {
	return database.RunInTx(ctx, s.db, database.TxOptions{}, func(q database.Querier) error {
		return fn(NewPostgresSkillRepository(q))
	})
}

func (s *PostgresSkillStore) Ping(ctx context.Context) error {
	return s.db.Ping(ctx)
}

type PostgresSkillRepository struct {
	q database.Querier
}

func NewPostgresSkillRepository(q database.Querier) *PostgresSkillRepository {
	return &PostgresSkillRepository{q: q}
}

func (r *PostgresSkillRepository) Find(ctx context.Context, q skill.Query) ([]skill.Skill, error) {
	query, args := buildFindQuery(q)
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.Skill, 0)
	for rows.Next() {
		s, err := scanSkill(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) FindByID(ctx context.Context, id int64) (skill.Skill, error) {
	row := r.q.QueryRow(ctx, `SELECT `+skillColumns+` FROM skills WHERE id = $1`, id)
	s, err := scanSkill(row)
	if err != nil {
		if postgres.IsNoRows(err) {
			return skill.Skill{}, skill.ErrNotFound
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) ExistsByID(ctx context.Context, id int64) (bool, error) {
	var exists bool
	row := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE id = $1)`, id)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillRepository) ExistsByName(ctx context.Context, name string) (bool, error) {
	var exists bool
	row := r.q.QueryRow(ctx, `SELECT EXISTS(SELECT 1 FROM skills WHERE lower(name) = lower($1))`, name)
	if err := row.Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

func (r *PostgresSkillRepository) DistinctCategories(ctx context.Context) ([]string, error) {
	rows, err := r.q.Query(ctx, `SELECT DISTINCT category FROM skills ORDER BY category COLLATE "C" ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]string, 0)
	for rows.Next() {
		var c string
		if err := rows.Scan(&c); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) CountByCategory(ctx context.Context) ([]skill.CategoryCount, error) {
	rows, err := r.q.Query(ctx, `SELECT category, COUNT(*) FROM skills GROUP BY category ORDER BY category COLLATE "C" ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]skill.CategoryCount, 0)
	for rows.Next() {
		var cc skill.CategoryCount
		if err := rows.Scan(&cc.Category, &cc.Count); err != nil {
			return nil, err
		}
		out = append(out, cc)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *PostgresSkillRepository) Create(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	row := r.q.QueryRow(ctx,
		`INSERT INTO skills (name, category, proficiency_level, years_experience, description, icon_url, color_hex, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		 RETURNING id`,
		s.Name, s.Category, s.ProficiencyLevel, s.YearsExperience, s.Description, s.IconURL, s.ColorHex, s.CreatedAt, s.UpdatedAt,
	)
	if err := row.Scan(&s.ID); err != nil {
		if postgres.IsUniqueViolation(err) {
			return skill.Skill{}, skill.ErrDuplicateName
		}
		return skill.Skill{}, err
	}
	return s, nil
}

func (r *PostgresSkillRepository) Update(ctx context.Context, s skill.Skill) (skill.Skill, error) {
	row := r.q.QueryRow(ctx,
		`UPDATE skills
		 SET name = $1, category = $2, proficiency_level = $3, years_experience = $4,
		     description = $5, icon_url = $6, color_hex = $7, updated_at = $8
		 WHERE id = $9
		 RETURNING created_at`,
		s.Name, s.Category, s.ProficiencyLevel, s.YearsExperience, s.Description, s.IconURL, s.ColorHex, s.UpdatedAt, s.ID,
	)
	if err := row.Scan(&s.CreatedAt); err != nil {
		switch {
		case postgres.IsNoRows(err):
			return skill.Skill{}, skill.ErrNotFound
		case postgres.IsUniqueViolation(err):
			return skill.Skill{}, skill.ErrDuplicateName
		default:
			return skill.Skill{}, err
		}
	}
	return s, nil
}

func (r *PostgresSkillRepository) Delete(ctx context.Context, id int64) error {
	affected, err := r.q.Exec(ctx, `DELETE FROM skills WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if affected == 0 {
		return skill.ErrNotFound
	}
	return nil
}

func (r *PostgresSkillRepository) DeleteAll(ctx context.Context) (int64, error) {
	return r.q.Exec(ctx, `DELETE FROM skills`)
}

func scanSkill(row database.Row) (skill.Skill, error) {
	var s skill.Skill
	err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Category,
		&s.ProficiencyLevel,
		&s.YearsExperience,
		&s.Description,
		&s.IconURL,
		&s.ColorHex,
		&s.CreatedAt,
		&s.UpdatedAt,
	)
	if err != nil {
		return skill.Skill{}, err
	}
	return s, nil
}

var orderColumns = map[skill.Field]string{
	skill.FieldID:               "id",
	skill.FieldName:             `name COLLATE "C"`,
	skill.FieldCategory:         `category COLLATE "C"`,
	skill.FieldProficiencyLevel: "proficiency_level",
	skill.FieldYearsExperience:  "years_experience",
}

// buildFindQuery renders a skill.Query as SQL with the same semantics as
// skill.Apply: text compares bytewise (COLLATE "C") whatever the database
// collation, NULLs sort last in every direction and id is the final tie-break.
func buildFindQuery(q skill.Query) (string, []any) {
	var sb strings.Builder
	sb.WriteString(`SELECT ` + skillColumns + ` FROM skills`)

	args := make([]any, 0, 4)
	where := make([]string, 0, 3)
	next := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if q.Filter.Category != "" {
		where = append(where, "lower(category) = lower("+next(q.Filter.Category)+")")
	}
	if q.Filter.MinProficiency != nil {
		where = append(where, "proficiency_level >= "+next(*q.Filter.MinProficiency))
	}
	if q.Filter.NameContains != "" {
		where = append(where, `name ILIKE '%' || `+next(escapeLike(q.Filter.NameContains))+`::text || '%' ESCAPE '\'`)
	}
	if len(where) > 0 {
		sb.WriteString(" WHERE ")
		sb.WriteString(strings.Join(where, " AND "))
	}

	order := make([]string, 0, len(q.OrderBy)+1)
	for _, o := range q.OrderBy {
		col, ok := orderColumns[o.Field]
		if !ok {
			continue
		}
		dir := "ASC"
		if o.Desc {
			dir = "DESC"
		}
		order = append(order, col+" "+dir+" NULLS LAST")
	}
	order = append(order, "id ASC")
	sb.WriteString(" ORDER BY ")
	sb.WriteString(strings.Join(order, ", "))

	if q.Limit > 0 {
		sb.WriteString(" LIMIT " + next(q.Limit))
	}

	return sb.String(), args
}

func escapeLike(s string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return r.Replace(s)
}
