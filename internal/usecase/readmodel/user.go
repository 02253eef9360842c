package readmodel

import "github.com/google/uuid"

type UserRM struct {
	ID       uuid.UUID
	Username string
	Role     string
}
