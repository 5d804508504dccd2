package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// StringList is a JSONB-backed list of strings (amenities, rules)
type StringList []string

// Value implements driver.Valuer
func (l StringList) Value() (driver.Value, error) {
	if len(l) == 0 {
		return nil, nil
	}
	return json.Marshal(l)
}

// Scan implements sql.Scanner
func (l *StringList) Scan(value interface{}) error {
	if value == nil {
		*l = nil
		return nil
	}
	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New(fmt.Sprint("Failed to unmarshal JSONB value:", value))
	}

	var result []string
	err := json.Unmarshal(bytes, &result)
	*l = StringList(result)
	return err
}

// Hostel represents a hostel/PG property owned by a user
type Hostel struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	OwnerID     uuid.UUID `gorm:"type:uuid;not null;index" json:"owner_id"`
	Name        string    `gorm:"type:varchar(100);not null" json:"name"`
	Description string    `gorm:"type:text" json:"description,omitempty"`

	// Address
	Street  string `gorm:"type:varchar(255);not null" json:"street"`
	City    string `gorm:"type:varchar(100);not null;index" json:"city"`
	State   string `gorm:"type:varchar(100);not null" json:"state"`
	Pincode string `gorm:"type:varchar(10);not null" json:"pincode"`
	Country string `gorm:"type:varchar(100);default:'India'" json:"country"`

	// Contact
	ContactPhone string `gorm:"type:varchar(20);not null" json:"contact_phone"`
	ContactEmail string `gorm:"type:varchar(255);not null" json:"contact_email"`

	Amenities StringList `gorm:"type:jsonb" json:"amenities,omitempty"`
	Rules     StringList `gorm:"type:jsonb" json:"rules,omitempty"`

	// Rating aggregate, recomputed explicitly from reviews
	RatingAverage float64 `gorm:"type:numeric(3,2);default:0" json:"rating_average"`
	RatingCount   int     `gorm:"default:0" json:"rating_count"`

	// Billing defaults
	RentDueDay      int             `gorm:"default:1" json:"rent_due_day"`
	LateFeePercent  int             `gorm:"default:5" json:"late_fee_percent"`
	SecurityDeposit decimal.Decimal `gorm:"type:decimal(10,2);default:0" json:"security_deposit"`

	IsActive  *bool     `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Owner User   `gorm:"foreignKey:OwnerID" json:"owner,omitempty"`
	Rooms []Room `gorm:"foreignKey:HostelID;constraint:OnDelete:CASCADE" json:"rooms,omitempty"`
}

func (Hostel) TableName() string {
	return "hostels"
}

// IsOwnedBy checks the ownership relation used by owner-scoped operations
func (h *Hostel) IsOwnedBy(userID uuid.UUID) bool {
	return h.OwnerID == userID
}

// ApplyRating overwrites the rating aggregate with freshly computed values
func (h *Hostel) ApplyRating(average float64, count int) {
	h.RatingAverage = average
	h.RatingCount = count
}
