package store

import (
	"context"

	"trainease/internal/database"
	"trainease/internal/model"

	"github.com/jackc/pgx/v5"
)

const trainColumns = `id, name, capacity, type`

func scanTrain(row pgx.Row) (*model.Train, error) {
	t := &model.Train{}
	if err := row.Scan(&t.ID, &t.Name, &t.Capacity, &t.Type); err != nil {
		return nil, err
	}
	return t, nil
}

func ListTrains(ctx context.Context, db database.DB) ([]model.Train, error) {
	rows, err := db.Query(ctx, `SELECT `+trainColumns+` FROM trains ORDER BY id`)
	if err != nil {
		return nil, wrap("ListTrains", err)
	}
	defer rows.Close()

	trains := []model.Train{}
	for rows.Next() {
		t, err := scanTrain(rows)
		if err != nil {
			return nil, wrap("ListTrains", err)
		}
		trains = append(trains, *t)
	}
	if err := rows.Err(); err != nil {
		return nil, wrap("ListTrains", err)
	}
	return trains, nil
}

func GetTrain(ctx context.Context, db database.DB, id int) (*model.Train, error) {
	t, err := scanTrain(db.QueryRow(ctx, `SELECT `+trainColumns+` FROM trains WHERE id = $1`, id))
	if err != nil {
		return nil, wrap("GetTrain", err)
	}
	return t, nil
}

func CreateTrain(ctx context.Context, db database.DB, t *model.Train) (*model.Train, error) {
	row := db.QueryRow(ctx,
		`INSERT INTO trains (name, capacity, type) VALUES ($1, $2, $3) RETURNING id`,
		t.Name, t.Capacity, t.Type,
	)
	if err := row.Scan(&t.ID); err != nil {
		return nil, wrap("CreateTrain", err)
	}
	return t, nil
}

func UpdateTrain(ctx context.Context, db database.DB, id int, p model.TrainPatch) (*model.Train, error) {
	t, err := scanTrain(db.QueryRow(ctx,
		`UPDATE trains SET
		     name     = COALESCE($1, name),
		     capacity = COALESCE($2, capacity),
		     type     = COALESCE($3, type)
		 WHERE id = $4
		 RETURNING `+trainColumns,
		p.Name, p.Capacity, p.Type, id,
	))
	if err != nil {
		return nil, wrap("UpdateTrain", err)
	}
	return t, nil
}

func DeleteTrain(ctx context.Context, db database.DB, id int) error {
	tag, err := db.Exec(ctx, `DELETE FROM trains WHERE id = $1`, id)
	return expectOne("DeleteTrain", tag, err)
}

func CountTrains(ctx context.Context, db database.DB) (int, error) {
	var n int
	if err := db.QueryRow(ctx, `SELECT count(*) FROM trains`).Scan(&n); err != nil {
		return 0, wrap("CountTrains", err)
	}
	return n, nil
}
