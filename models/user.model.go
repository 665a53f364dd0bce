package models

import "gorm.io/gorm"

// User roles
const (
	RoleAdmin    = "ADMIN"
	RoleWorker   = "WORKER"
	RoleCustomer = "CUSTOMER"
)

// User represents a platform account. IsSuperUser grants full admin
// capability regardless of Role.
type User struct {
	gorm.Model
	Name        string `json:"name"`
	Email       string `json:"email" gorm:"uniqueIndex;not null"`
	Password    string `json:"-"`
	Role        string `json:"role" gorm:"default:'CUSTOMER'"` // ADMIN, WORKER, CUSTOMER
	IsSuperUser bool   `json:"is_super_user" gorm:"default:false"`
}

// UserDepartment links a user to a department. Stored many-to-many but the
// admin surface assigns at most one department per user.
type UserDepartment struct {
	gorm.Model
	UserID       uint `json:"user_id" gorm:"index;not null"`
	DepartmentID uint `json:"department_id" gorm:"index;not null"`

	Department Department `json:"department" gorm:"foreignKey:DepartmentID"`
}
