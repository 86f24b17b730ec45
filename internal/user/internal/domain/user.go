package domain

type User struct {
	Id       int64
	Nickname string
	Email    string
	Avatar   string
}
