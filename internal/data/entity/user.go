package entity

type User struct {
	Base
	Name         string `db:"name"`
	Email        string `db:"email"`
	PasswordHash string `db:"password"`
	NID          string `db:"nid"`
	Contact      string `db:"contact"`
}
