package catalog

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/mauv0809/fighter-franchise/internal/athlete"
	"github.com/mauv0809/fighter-franchise/internal/finance"
	"github.com/mauv0809/fighter-franchise/internal/money"
	"github.com/mauv0809/fighter-franchise/internal/venue"
)

// New creates a new Store.
func New(db *sql.DB) Store {
	return &store{db: db}
}

const athleteColumns = "id, name, gender, price, image, purchased"

func scanAthlete(row scanner) (athlete.Athlete, error) {
	var a athlete.Athlete
	var price string
	if err := row.Scan(&a.ID, &a.Name, &a.Gender, &price, &a.Image, &a.Purchased); err != nil {
		return athlete.Athlete{}, err
	}
	amount, err := money.Parse(price)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("athlete %d: %w", a.ID, err)
	}
	a.Price = amount
	return a, nil
}

func (s *store) ListAthletes(ctx context.Context) ([]athlete.Athlete, error) {
	return queryAll(ctx, s.db, scanAthlete, "SELECT "+athleteColumns+" FROM athletes ORDER BY id")
}

func (s *store) GetAthlete(ctx context.Context, id int) (athlete.Athlete, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+athleteColumns+" FROM athletes WHERE id = ?", id)
	return one(scanAthlete(row))
}

// SearchAthletes matches names case-insensitively on a substring.
func (s *store) SearchAthletes(ctx context.Context, query string) ([]athlete.Athlete, error) {
	return queryAll(ctx, s.db, scanAthlete,
		"SELECT "+athleteColumns+" FROM athletes WHERE name LIKE ? ESCAPE '\\' ORDER BY id", like(query))
}

func (s *store) CreateAthlete(ctx context.Context, a athlete.Athlete) (athlete.Athlete, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO athletes (name, gender, price, image, purchased) VALUES (?, ?, ?, ?, ?)",
		a.Name, a.Gender, a.Price.String(), a.Image, a.Purchased)
	if err != nil {
		return athlete.Athlete{}, fmt.Errorf("insert athlete: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return athlete.Athlete{}, err
	}
	log.Debug("Athlete created", "id", id)
	return s.GetAthlete(ctx, int(id))
}

// UpdateAthlete replaces the athlete. An empty image keeps the stored one.
func (s *store) UpdateAthlete(ctx context.Context, a athlete.Athlete) (athlete.Athlete, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE athletes SET
			name = ?,
			gender = ?,
			price = ?,
			image = CASE WHEN ? = '' THEN image ELSE ? END,
			purchased = ?
		WHERE id = ?`,
		a.Name, a.Gender, a.Price.String(), a.Image, a.Image, a.Purchased, a.ID)
	if err := affected(res, err); err != nil {
		return athlete.Athlete{}, err
	}
	return s.GetAthlete(ctx, a.ID)
}

func (s *store) DeleteAthlete(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM athletes WHERE id = ?", id)
	return affected(res, err)
}

const venueColumns = "id, name, capacity, image"

func scanVenue(row scanner) (venue.Venue, error) {
	var v venue.Venue
	err := row.Scan(&v.ID, &v.Name, &v.Capacity, &v.Image)
	return v, err
}

func (s *store) ListVenues(ctx context.Context) ([]venue.Venue, error) {
	return queryAll(ctx, s.db, scanVenue, "SELECT "+venueColumns+" FROM venues ORDER BY id")
}

func (s *store) GetVenue(ctx context.Context, id int) (venue.Venue, error) {
	row := s.db.QueryRowContext(ctx, "SELECT "+venueColumns+" FROM venues WHERE id = ?", id)
	return one(scanVenue(row))
}

func (s *store) SearchVenues(ctx context.Context, query string) ([]venue.Venue, error) {
	return queryAll(ctx, s.db, scanVenue,
		"SELECT "+venueColumns+" FROM venues WHERE name LIKE ? ESCAPE '\\' ORDER BY id", like(query))
}

func (s *store) CreateVenue(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO venues (name, capacity, image) VALUES (?, ?, ?)", v.Name, v.Capacity, v.Image)
	if err != nil {
		return venue.Venue{}, fmt.Errorf("insert venue: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return venue.Venue{}, err
	}
	return s.GetVenue(ctx, int(id))
}

// UpdateVenue replaces the venue. An empty image keeps the stored one.
func (s *store) UpdateVenue(ctx context.Context, v venue.Venue) (venue.Venue, error) {
	res, err := s.db.ExecContext(ctx, `
		UPDATE venues SET
			name = ?,
			capacity = ?,
			image = CASE WHEN ? = '' THEN image ELSE ? END
		WHERE id = ?`,
		v.Name, v.Capacity, v.Image, v.Image, v.ID)
	if err := affected(res, err); err != nil {
		return venue.Venue{}, err
	}
	return s.GetVenue(ctx, v.ID)
}

func (s *store) DeleteVenue(ctx context.Context, id int) error {
	res, err := s.db.ExecContext(ctx, "DELETE FROM venues WHERE id = ?", id)
	return affected(res, err)
}

func scanLedger(row scanner) (finance.Ledger, error) {
	var l finance.Ledger
	var left, spent, debt string
	if err := row.Scan(&l.ID, &left, &spent, &debt); err != nil {
		return finance.Ledger{}, err
	}
	var err error
	if l.MoneyLeft, err = money.Parse(left); err != nil {
		return finance.Ledger{}, err
	}
	if l.MoneySpent, err = money.Parse(spent); err != nil {
		return finance.Ledger{}, err
	}
	if l.Debt, err = money.Parse(debt); err != nil {
		return finance.Ledger{}, err
	}
	return l, nil
}

func (s *store) ListLedgers(ctx context.Context) ([]finance.Ledger, error) {
	return queryAll(ctx, s.db, scanLedger, "SELECT id, money_left, money_spent, debt FROM finance ORDER BY id")
}

func (s *store) getLedger(ctx context.Context, id int) (finance.Ledger, error) {
	row := s.db.QueryRowContext(ctx, "SELECT id, money_left, money_spent, debt FROM finance WHERE id = ?", id)
	return one(scanLedger(row))
}

func (s *store) CreateLedger(ctx context.Context, l finance.Ledger) (finance.Ledger, error) {
	res, err := s.db.ExecContext(ctx,
		"INSERT INTO finance (money_left, money_spent, debt) VALUES (?, ?, ?)",
		l.MoneyLeft.String(), l.MoneySpent.String(), l.Debt.String())
	if err != nil {
		return finance.Ledger{}, fmt.Errorf("insert ledger: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return finance.Ledger{}, err
	}
	return s.getLedger(ctx, int(id))
}

func (s *store) UpdateLedger(ctx context.Context, l finance.Ledger) (finance.Ledger, error) {
	res, err := s.db.ExecContext(ctx,
		"UPDATE finance SET money_left = ?, money_spent = ?, debt = ? WHERE id = ?",
		l.MoneyLeft.String(), l.MoneySpent.String(), l.Debt.String(), l.ID)
	if err := affected(res, err); err != nil {
		return finance.Ledger{}, err
	}
	return s.getLedger(ctx, l.ID)
}

func queryAll[T any](ctx context.Context, db *sql.DB, scan func(scanner) (T, error), query string, args ...any) ([]T, error) {
	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []T{}
	for rows.Next() {
		item, err := scan(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, item)
	}
	return out, rows.Err()
}

func one[T any](item T, err error) (T, error) {
	if errors.Is(err, sql.ErrNoRows) {
		return item, ErrNotFound
	}
	return item, err
}

func affected(res sql.Result, err error) error {
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}

// like escapes query for a substring LIKE match.
func like(query string) string {
	escaped := make([]rune, 0, len(query)+2)
	escaped = append(escaped, '%')
	for _, r := range query {
		if r == '%' || r == '_' || r == '\\' {
			escaped = append(escaped, '\\')
		}
		escaped = append(escaped, r)
	}
	return string(append(escaped, '%'))
}
