package domain

import "time"

type User struct {
	ID           uint64
	Email        string
	PasswordHash string
	Nickname     string
	CreatedAt    time.Time
}
