package user

import "time"

type User struct {
	ID        string
	Name      string
	Surname   string
	Email     string
	Password  string
	CreatedAt time.Time
}

type CreateUserInput struct {
	Name     string
	Surname  string
	Email    string
	Password string
}
