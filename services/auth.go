package services

import (
	"errors"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"lms/access"
	"lms/models"
)

// AuthService handles signup and credential checks.
type AuthService struct {
	db        *gorm.DB
	saltRound int
}

func NewAuthService(db *gorm.DB, saltRound int) *AuthService {
	return &AuthService{db: db, saltRound: saltRound}
}

// SignupInput is a self-service registration request. A valid department
// code enrolls the account as a WORKER of that department; no code means a
// CUSTOMER account.
type SignupInput struct {
	Name           string
	Email          string
	Password       string
	DepartmentCode string
}

// Signup registers a new account. Duplicate emails conflict; an unknown
// department code is a bad request.
func (s *AuthService) Signup(in SignupInput) (*models.User, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	if err := s.db.Where("email = ?", email).First(&models.User{}).Error; err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	role := models.RoleCustomer
	var department *models.Department
	if in.DepartmentCode != "" {
		var dept models.Department
		err := s.db.Where("code = ?", in.DepartmentCode).First(&dept).Error
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrBadRequest
		}
		if err != nil {
			return nil, err
		}
		role = models.RoleWorker
		department = &dept
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.saltRound)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Name:     in.Name,
		Email:    email,
		Password: string(hashed),
		Role:     role,
	}

	err = s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&user).Error; err != nil {
			return err
		}
		if department != nil {
			return tx.Create(&models.UserDepartment{UserID: user.ID, DepartmentID: department.ID}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Signin checks credentials and returns the user with a principal carrying
// its department codes. Unknown email and wrong password are
// indistinguishable to the caller.
func (s *AuthService) Signin(email, password string) (*models.User, *access.Principal, error) {
	var user models.User
	err := s.db.Where("email = ?", strings.ToLower(strings.TrimSpace(email))).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil, ErrUnauthorized
	}
	if err != nil {
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return nil, nil, ErrUnauthorized
	}

	codes, err := s.departmentCodes(user.ID)
	if err != nil {
		return nil, nil, err
	}

	principal := &access.Principal{
		UserID:      user.ID,
		Email:       user.Email,
		Role:        user.Role,
		IsSuperUser: user.IsSuperUser,
		Departments: codes,
	}
	return &user, principal, nil
}

func (s *AuthService) departmentCodes(userID uint) ([]string, error) {
	var memberships []models.UserDepartment
	if err := s.db.Preload("Department").Where("user_id = ?", userID).Find(&memberships).Error; err != nil {
		return nil, err
	}
	codes := make([]string, len(memberships))
	for i, m := range memberships {
		codes[i] = m.Department.Code
	}
	return codes, nil
}
