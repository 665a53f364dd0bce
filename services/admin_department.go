package services

import (
	"errors"

	"gorm.io/gorm"

	"lms/models"
	"lms/models/catalog"
)

// DepartmentItem is a department with its usage counts for the admin listing.
type DepartmentItem struct {
	models.Department
	UserCount        int64 `json:"user_count"`
	VideoAccessCount int64 `json:"video_access_count"`
}

// ListDepartments returns all departments with user and grant counts,
// ordered by name.
func (s *AdminService) ListDepartments() ([]DepartmentItem, error) {
	var departments []models.Department
	if err := s.db.Order("name asc").Find(&departments).Error; err != nil {
		return nil, err
	}

	items := make([]DepartmentItem, len(departments))
	for i, d := range departments {
		items[i] = DepartmentItem{Department: d}
		if err := s.db.Model(&models.UserDepartment{}).
			Where("department_id = ?", d.ID).
			Count(&items[i].UserCount).Error; err != nil {
			return nil, err
		}
		if err := s.db.Model(&catalog.VideoAccess{}).
			Where("department_id = ?", d.ID).
			Count(&items[i].VideoAccessCount).Error; err != nil {
			return nil, err
		}
	}
	return items, nil
}

// CreateDepartment creates a department. The code must be unique.
func (s *AdminService) CreateDepartment(name, code string) (*models.Department, error) {
	if err := s.db.Where("code = ?", code).First(&models.Department{}).Error; err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	department := models.Department{Name: name, Code: code}
	if err := s.db.Create(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// UpdateDepartment renames or recodes a department. The code must not
// collide with another department.
func (s *AdminService) UpdateDepartment(id uint, name, code string) (*models.Department, error) {
	var department models.Department
	if err := s.db.First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if err := s.db.Where("code = ? AND id <> ?", code, id).First(&models.Department{}).Error; err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	department.Name = name
	department.Code = code
	if err := s.db.Save(&department).Error; err != nil {
		return nil, err
	}
	return &department, nil
}

// DeleteDepartment removes a department and its content grants. Deletion is
// refused while any user still belongs to it.
func (s *AdminService) DeleteDepartment(id uint) error {
	var department models.Department
	if err := s.db.First(&department, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}

	var userCount int64
	if err := s.db.Model(&models.UserDepartment{}).
		Where("department_id = ?", id).
		Count(&userCount).Error; err != nil {
		return err
	}
	if userCount > 0 {
		return ErrConflict
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("department_id = ?", id).Delete(&catalog.VideoAccess{}).Error; err != nil {
			return err
		}
		if err := tx.Where("department_id = ?", id).Delete(&catalog.PlaylistAccess{}).Error; err != nil {
			return err
		}
		return tx.Delete(&department).Error
	})
}
