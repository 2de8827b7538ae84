package models

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Service categories offered by the office. Closed set; anything else is
// rejected at the API boundary.
const (
	CategoryDocuments  = "documents"
	CategoryTravel     = "travel"
	CategoryLabor      = "labor"
	CategoryVisas      = "visas"
	CategoryGovernment = "government"
	CategoryProcessing = "processing"
)

var ServiceCategories = []string{
	CategoryDocuments,
	CategoryTravel,
	CategoryLabor,
	CategoryVisas,
	CategoryGovernment,
	CategoryProcessing,
}

func IsValidCategory(category string) bool {
	for _, c := range ServiceCategories {
		if c == category {
			return true
		}
	}
	return false
}

type Service struct {
	ID            uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	Title         string     `gorm:"not null" json:"title"`
	TitleAr       string     `gorm:"not null" json:"titleAr"`
	Description   string     `gorm:"type:text;not null" json:"description"`
	DescriptionAr string     `gorm:"type:text;not null" json:"descriptionAr"`
	Category      string     `gorm:"type:varchar(20);not null;index:idx_category_active" json:"category"`
	Price         float64    `gorm:"type:decimal(10,2);default:0" json:"price"`
	Duration      string     `gorm:"default:'غير محدد'" json:"duration"`
	Requirements  StringList `gorm:"type:jsonb;default:'[]'" json:"requirements"`
	Features      StringList `gorm:"type:jsonb;default:'[]'" json:"features"`
	ImageURL      string     `gorm:"default:'/images/default-service.jpg'" json:"imageUrl"`
	IsActive      bool       `gorm:"default:true;index:idx_category_active" json:"isActive"`
	DisplayOrder  int        `gorm:"default:0" json:"order"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// Initialize UUID before creating
func (s *Service) BeforeCreate(tx *gorm.DB) (err error) {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return
}

// StringList stores ordered string slices as a JSON column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	return json.Marshal(l)
}

func (l *StringList) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*l = nil
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	default:
		return errors.New("type assertion to []byte failed")
	}
}
