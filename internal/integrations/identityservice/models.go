package identityservice

// Role роль пользователя в IdentityService
type Role string

const (
	RoleTrainer  Role = "Trainer"
	RoleCustomer Role = "Customer"
	RoleAdmin    Role = "Admin"
)

// User модель пользователя из IdentityService
type User struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Role      Role   `json:"role"`
	IsActive  bool   `json:"is_active"`
}

// IsTrainer возвращает true, если пользователь - тренер
func (u *User) IsTrainer() bool {
	return u.Role == RoleTrainer
}

// IsCustomer возвращает true, если пользователь - клиент
func (u *User) IsCustomer() bool {
	return u.Role == RoleCustomer
}

// IsAdmin возвращает true, если пользователь - администратор
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// ErrorResponse модель ошибки от IdentityService
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
