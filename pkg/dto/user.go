package dto

import (
	"encoding/json"

	"github.com/google/uuid"

	"github.com/dmitrymomot/dtokit/pkg/validator"
)

// MinUserAge is the youngest age a User may have.
const MinUserAge = 18

type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username" validate:"min=3,max=20,pattern_word"`
	Email    string    `json:"email" validate:"email"`
	Age      int       `json:"age" validate:"gte=18"`
	IsActive bool      `json:"is_active"`
}

// NewUser returns an active user with a fresh random id.
func NewUser(username, email string, age int) (User, error) {
	return New(User{
		ID:       uuid.New(),
		Username: username,
		Email:    email,
		Age:      age,
		IsActive: true,
	})
}

func (u User) Validate() error {
	return validator.Struct(u)
}

// UnmarshalJSON treats a missing is_active as true.
func (u *User) UnmarshalJSON(data []byte) error {
	type plain User
	p := plain{IsActive: true}
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*u = User(p)
	return nil
}

func (User) requiredKeys() []string {
	return []string{"id", "username", "email", "age"}
}
