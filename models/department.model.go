package models

import "gorm.io/gorm"

// Department groups users for access control. The code configured as the
// public department code is reserved: content granted to it is visible to
// every principal, anonymous guests included.
type Department struct {
	gorm.Model
	Name string `json:"name"`
	Code string `json:"code" gorm:"uniqueIndex;not null"`
}
