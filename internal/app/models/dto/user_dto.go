package dto

// CreateUserRequest carries the fields needed to register a user
type CreateUserRequest struct {
	Username     string   `json:"username" binding:"required,min=3,max=50"`
	Password     string   `json:"password" binding:"required,min=6"`
	Name         string   `json:"name" binding:"required"`
	Email        string   `json:"email" binding:"required,email"`
	Title        string   `json:"title"`
	Department   string   `json:"department"`
	ProfileImage string   `json:"profileImage"`
	Skills       []string `json:"skills"`
}

// UpdateUserRequest carries a partial user update. Absent fields are
// left untouched.
type UpdateUserRequest struct {
	Username     *string  `json:"username" binding:"omitempty,min=3,max=50"`
	Password     *string  `json:"password" binding:"omitempty,min=6"`
	Name         *string  `json:"name"`
	Email        *string  `json:"email" binding:"omitempty,email"`
	Title        *string  `json:"title"`
	Department   *string  `json:"department"`
	ProfileImage *string  `json:"profileImage"`
	Skills       []string `json:"skills"`
}

// LoginRequest carries demo credentials
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}
