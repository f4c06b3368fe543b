package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	entsql "entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
)

const usersTable = "user_profiles"

var userColumns = []string{"id", "name", "email", "preferred_subjects", "created_at", "updated_at"}

type userRepo struct {
	s *Store
}

func (r *userRepo) Create(ctx context.Context, p *UserProfile) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	now := r.s.now()
	p.CreatedAt, p.UpdatedAt = now, now

	subjects, err := encodeStrings(p.PreferredSubjects)
	if err != nil {
		return err
	}

	q, args := r.s.builder().Insert(usersTable).
		Columns(userColumns...).
		Values(p.ID, p.Name, p.Email, subjects, p.CreatedAt, p.UpdatedAt).
		Query()
	if _, err := r.s.db.ExecContext(ctx, q, args...); err != nil {
		return fmt.Errorf("save user profile: %w", err)
	}
	return nil
}

func (r *userRepo) Update(ctx context.Context, p *UserProfile) error {
	subjects, err := encodeStrings(p.PreferredSubjects)
	if err != nil {
		return err
	}

	q, args := r.s.builder().Update(usersTable).
		Set("name", p.Name).
		Set("email", p.Email).
		Set("preferred_subjects", subjects).
		Set("updated_at", r.s.now()).
		Where(entsql.EQ("id", p.ID)).
		Query()
	res, err := r.s.db.ExecContext(ctx, q, args...)
	if err != nil {
		return fmt.Errorf("update user profile: %w", err)
	}
	if n, err := res.RowsAffected(); err != nil {
		return fmt.Errorf("update user profile: %w", err)
	} else if n == 0 {
		return fmt.Errorf("user %s: %w", p.ID, ErrNotFound)
	}

	stored, err := r.Get(ctx, p.ID)
	if err != nil {
		return err
	}
	*p = *stored
	return nil
}

func (r *userRepo) Get(ctx context.Context, id string) (*UserProfile, error) {
	b := r.s.builder()
	q, args := b.Select(userColumns...).
		From(b.Table(usersTable)).
		Where(entsql.EQ("id", id)).
		Query()

	p, err := scanUser(r.s.db.QueryRowContext(ctx, q, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("user %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *userRepo) List(ctx context.Context) ([]UserProfile, error) {
	b := r.s.builder()
	q, args := b.Select(userColumns...).
		From(b.Table(usersTable)).
		OrderBy(entsql.Asc("created_at"), entsql.Asc("id")).
		Query()

	rows, err := r.s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("query user profiles: %w", err)
	}
	defer rows.Close()

	profiles := []UserProfile{}
	for rows.Next() {
		p, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, *p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read user profiles: %w", err)
	}
	return profiles, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanUser(row rowScanner) (*UserProfile, error) {
	var (
		p        UserProfile
		subjects sql.NullString
	)
	if err := row.Scan(&p.ID, &p.Name, &p.Email, &subjects, &p.CreatedAt, &p.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan user profile: %w", err)
	}
	list, err := decodeStrings(subjects)
	if err != nil {
		return nil, err
	}
	p.PreferredSubjects = list
	if p.PreferredSubjects == nil {
		p.PreferredSubjects = []string{}
	}
	return &p, nil
}
