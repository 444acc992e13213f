package models

import "github.com/google/uuid"

// User is a row in the users table. Balance is the wagerable credit pool in
// whole chips; HasCharm marks the mitigating perk that softens the bot.
type User struct {
	ID       uuid.UUID `json:"id"`
	Email    string    `json:"email"`
	Password string    `json:"password,omitempty"`
	Username string    `json:"username"`

	Balance  int64 `json:"balance"`
	HasCharm bool  `json:"has_charm"`
}
