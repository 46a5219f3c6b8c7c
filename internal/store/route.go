package store

import (
	"context"

	"trainease/internal/database"
	"trainease/internal/model"

	"github.com/jackc/pgx/v5"
)

const routeColumns = `id, origin, destination, duration, departure_time, arrival_time, price`

func scanRoute(row pgx.Row) (*model.Route, error) {
	r := &model.Route{}
	if err := row.Scan(
		&r.ID,
		&r.Origin,
		&r.Destination,
		&r.Duration,
		&r.DepartureTime,
		&r.ArrivalTime,
		&r.Price,
	); err != nil {
		return nil, err
	}
	return r, nil
}

func ListRoutes(ctx context.Context, db database.DB) ([]model.Route, error) {
	rows, err := db.Query(ctx, `SELECT `+routeColumns+` FROM routes ORDER BY id`)
	if err != nil {
		return nil, wrap("ListRoutes", err)
	}
	defer rows.Close()

	routes := []model.Route{}
	for rows.Next() {
		r, err := scanRoute(rows)
		if err != nil {
			return nil, wrap("ListRoutes", err)
		}
		routes = append(routes, *r)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListRoutes", err)
	}
	return routes, nil
}

func GetRoute(ctx context.Context, db database.DB, id int) (*model.Route, error) {
	r, err := scanRoute(db.QueryRow(ctx, `SELECT `+routeColumns+` FROM routes WHERE id = $1`, id))
	if err != nil {
		return nil, wrap("GetRoute", err)
	}
	return r, nil
}

// CreateRoute inserts r. Empty time labels take the column defaults.
func CreateRoute(ctx context.Context, db database.DB, r *model.Route) (*model.Route, error) {
	if r.DepartureTime == "" {
		r.DepartureTime = model.DefaultDepartureLabel
	}
	if r.ArrivalTime == "" {
		r.ArrivalTime = model.DefaultArrivalLabel
	}
	row := db.QueryRow(ctx,
		`INSERT INTO routes (origin, destination, duration, departure_time, arrival_time, price)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING id`,
		r.Origin, r.Destination, r.Duration, r.DepartureTime, r.ArrivalTime, r.Price,
	)
	if err := row.Scan(&r.ID); err != nil {
		return nil, wrap("CreateRoute", err)
	}
	return r, nil
}

func UpdateRoute(ctx context.Context, db database.DB, id int, p model.RoutePatch) (*model.Route, error) {
	r, err := scanRoute(db.QueryRow(ctx,
		`UPDATE routes SET
		     origin         = COALESCE($1, origin),
		     destination    = COALESCE($2, destination),
		     duration       = COALESCE($3, duration),
		     departure_time = COALESCE($4, departure_time),
		     arrival_time   = COALESCE($5, arrival_time),
		     price          = COALESCE($6, price)
		 WHERE id = $7
		 RETURNING `+routeColumns,
		p.Origin, p.Destination, p.Duration, p.DepartureTime, p.ArrivalTime, p.Price, id,
	))
	if err != nil {
		return nil, wrap("UpdateRoute", err)
	}
	return r, nil
}

func DeleteRoute(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM routes WHERE id = $1`, id)
	return expectOne("DeleteRoute", tag, err)
}

func CountRoutes(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM routes`).Scan(&n); err != nil {
		return 0, wrap("CountRoutes", err)
	}
	return n, nil
}
