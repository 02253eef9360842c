package response

import (
	"vtv-turnos/internal/usecase/readmodel"

	"github.com/google/uuid"
)

type UserResponse struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	Role     string    `json:"role"`
}

type BulkCreateSlotsResponse struct {
	Count int64 `json:"count"`
}

func FromUserRM(rm *readmodel.UserRM) *UserResponse {
	return &UserResponse{
		ID:       rm.ID,
		Username: rm.Username,
		Role:     rm.Role,
	}
}

func FromUserRMs(rms []readmodel.UserRM) []*UserResponse {
	users := make([]*UserResponse, len(rms))
	for i := range rms {
		users[i] = FromUserRM(&rms[i])
	}
	return users
}
