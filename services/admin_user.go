package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lms/models"
	"lms/models/catalog"
)

// UserItem is a user with its department, password hash stripped.
type UserItem struct {
	ID          uint               `json:"id"`
	Name        string             `json:"name"`
	Email       string             `json:"email"`
	Role        string             `json:"role"`
	IsSuperUser bool               `json:"is_super_user"`
	Department  *models.Department `json:"department"`
}

// CreateUserInput is an admin user-creation request.
type CreateUserInput struct {
	Name         string
	Email        string
	Password     string
	Role         string
	IsSuperUser  bool
	DepartmentID uint // zero means no department
}

// UpdateUserInput is an admin user update. Empty strings keep the stored
// value; an absent password never clears the hash. DepartmentID nil keeps
// the current membership, zero clears it, anything else replaces it.
type UpdateUserInput struct {
	Name         string
	Email        string
	Password     string
	Role         string
	IsSuperUser  *bool
	DepartmentID *uint
}

// ListUsers returns all users with their department, newest first.
func (s *AdminService) ListUsers() ([]UserItem, error) {
	var users []models.User
	if err := s.db.Order("created_at desc").Find(&users).Error; err != nil {
		return nil, err
	}

	items := make([]UserItem, len(users))
	for i, u := range users {
		dept, err := s.userDepartment(u.ID)
		if err != nil {
			return nil, err
		}
		items[i] = toUserItem(&u, dept)
	}
	return items, nil
}

// GetUser returns one user with its department.
func (s *AdminService) GetUser(id uint) (*UserItem, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	dept, err := s.userDepartment(id)
	if err != nil {
		return nil, err
	}
	item := toUserItem(&user, dept)
	return &item, nil
}

// CreateUser creates an account with a hashed password and an optional
// department membership.
func (s *AdminService) CreateUser(in CreateUserInput) (*UserItem, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.saltRound)
	if err != nil {
		return nil, err
	}

	role := in.Role
	if role == "" {
		role = models.RoleWorker
	}

	user := models.User{
		Name:        in.Name,
		Email:       email,
		Password:    string(hashed),
		Role:        role,
		IsSuperUser: in.IsSuperUser,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if in.DepartmentID != 0 {
			return tx.Create(&models.UserDepartment{UserID: user.ID, DepartmentID: in.DepartmentID}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(user.ID)
}

// UpdateUser applies a partial update. Department membership is replaced
// wholesale when a department id is supplied.
func (s *AdminService) UpdateUser(id uint, in UpdateUserInput) (*UserItem, error) {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if in.Email != "" {
		email := strings.ToLower(strings.TrimSpace(in.Email))
		if err := s.db.Where("email = ? AND id <> ?", email, id).First(&models.User{}).Error; err == nil {
			return nil, ErrConflict
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		user.Email = email
	}
	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Role != "" {
		user.Role = in.Role
	}
	if in.IsSuperUser != nil {
		user.IsSuperUser = *in.IsSuperUser
	}
	if in.Password != "" {
		hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.saltRound)
		if err != nil {
			return nil, err
		}
		user.Password = string(hashed)
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&user).Error; err != nil {
			return err
		}
		if in.DepartmentID != nil {
			if err := tx.Where("user_id = ?", id).Delete(&models.UserDepartment{}).Error; err != nil {
				return err
			}
			if *in.DepartmentID != 0 {
				return tx.Create(&models.UserDepartment{UserID: id, DepartmentID: *in.DepartmentID}).Error
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return s.GetUser(id)
}

// DeleteUser removes a user together with its memberships, direct video
// grants and progress rows.
func (s *AdminService) DeleteUser(id uint) error {
	var user models.User
	if err := s.db.First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.UserDepartment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&catalog.VideoUserAccess{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", id).Delete(&catalog.VideoProgress{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

func (s *AdminService) userDepartment(userID uint) (*models.Department, error) {
	var membership models.UserDepartment
	err := s.db.Preload("Department").Where("user_id = ?", userID).First(&membership).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &membership.Department, nil
}

func toUserItem(u *models.User, dept *models.Department) UserItem {
	return UserItem{
		ID:          u.ID,
		Name:        u.Name,
		Email:       u.Email,
		Role:        u.Role,
		IsSuperUser: u.IsSuperUser,
		Department:  dept,
	}
}
