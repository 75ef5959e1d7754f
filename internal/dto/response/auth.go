package response

import (
	"time"

	"care-booking/internal/data/entity"
)

type AuthResponse struct {
	UserID    string    `json:"user_id"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
}

type UserResponse struct {
	ID            string    `json:"id"`
	Name          string    `json:"name"`
	Email         string    `json:"email"`
	NID           string    `json:"nid"`
	Contact       string    `json:"contact"`
	TotalBookings int64     `json:"total_bookings"`
	CreatedAt     time.Time `json:"created_at"`
}

// Helper converters
func UserToResponse(user *entity.User, totalBookings int64) UserResponse {
	return UserResponse{
		ID:            user.ID.String(),
		Name:          user.Name,
		Email:         user.Email,
		NID:           user.NID,
		Contact:       user.Contact,
		TotalBookings: totalBookings,
		CreatedAt:     user.CreatedAt,
	}
}

func AuthToResponse(user *entity.User, session *entity.Session) AuthResponse {
	resp := AuthResponse{
		UserID: user.ID.String(),
		Email:  user.Email,
		Name:   user.Name,
	}

	if session != nil {
		resp.Token = session.Token.String()
		resp.ExpiresAt = session.ExpiresAt
	}

	return resp
}
