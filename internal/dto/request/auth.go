package request

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	NID      string `json:"nid" validate:"required,min=10,max=17"`
	Contact  string `json:"contact" validate:"required,min=10,max=15"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

type UpdateProfileRequest struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Contact string `json:"contact" validate:"required,min=10,max=15"`
}
