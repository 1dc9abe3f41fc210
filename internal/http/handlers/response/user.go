package response

import (
	"accounts/internal/core/domain/user"
	"time"
)

type User struct {
	ID          int64      `json:"id"`
	Email       string     `json:"email"`
	Name        string     `json:"name"`
	PhoneNumber string     `json:"phone_number"`
	EmployeeID  string     `json:"employee_id"`
	IsAdmin     bool       `json:"is_admin"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLoginAt *time.Time `json:"last_login_at,omitempty"`
}

func (u *User) FromDomainUser(du user.User) {
	u.ID = int64(du.ID)
	u.Email = string(du.Email)
	u.Name = du.Name
	u.PhoneNumber = du.PhoneNumber
	u.EmployeeID = du.EmployeeID
	u.IsAdmin = du.IsAdmin
	u.CreatedAt = du.CreatedAt
	if du.LastLoginAt.IsPresent {
		lastLoginAt := du.LastLoginAt.Value
		u.LastLoginAt = &lastLoginAt
	}
}
