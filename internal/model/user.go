package model

// AdminUserID is the seeded administrator. It can never be deleted or demoted.
const AdminUserID = 1

type User struct {
	ID           int    `db:"id" json:"id"`
	Username     string `db:"username" json:"username"`
	FullName     string `db:"full_name" json:"fullName"`
	PasswordHash string `db:"password" json:"-"`
	IsAdmin      bool   `db:"is_admin" json:"isAdmin"`
}
