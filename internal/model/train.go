package model

type Train struct {
	ID       int    `db:"id" json:"id"`
	Name     string `db:"name" json:"name"`
	Capacity int    `db:"capacity" json:"capacity"`
	Type     string `db:"type" json:"type"`
}
