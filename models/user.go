package models

import "time"

// Identity é o que o provedor de autenticação garante sobre quem fez a
// requisição. UID é estável; Username é apenas sugestivo.
type Identity struct {
	UID      string
	Username string
}

type User struct {
	ID         int64     `json:"id"`
	UID        string    `json:"-"`
	Username   string    `json:"username"`
	IsActive   bool      `json:"-"`
	DateJoined time.Time `json:"-"`
	LineIDs    []int64   `json:"-"`
}
