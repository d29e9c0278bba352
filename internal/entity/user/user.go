package user

import (
	"github.com/pkg/errors"
	"golang.org/x/crypto/bcrypt"
)

// Record is an account allowed to use the expenses API.
type Record struct {
	ID           string
	Email        string
	PasswordHash string
}

func New(id, email, password string) (Record, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Record{}, errors.Wrap(err, "hash password")
	}
	return Record{ID: id, Email: email, PasswordHash: string(hash)}, nil
}

func (r *Record) ValidPassword(password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(r.PasswordHash), []byte(password)) == nil
}
