package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProcedureOptionKind mirrors pricing selection kinds at the storage level
type ProcedureOptionKind string

const (
	OptionKindArea ProcedureOptionKind = "area"
	OptionKindSpec ProcedureOptionKind = "spec"
)

// Procedure represents a bookable treatment
type Procedure struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	Name          string          `gorm:"type:varchar(255);not null" json:"name"`
	Description   string          `gorm:"type:text" json:"description,omitempty"`
	Price         decimal.Decimal `gorm:"type:decimal(10,2);not null" json:"price"`
	TotalSessions int             `gorm:"not null;default:1" json:"total_sessions"`
	IsActive      *bool           `gorm:"not null;default:true;index" json:"is_active"`
	CreatedAt     time.Time       `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt     time.Time       `gorm:"autoUpdateTime" json:"updated_at"`

	// Relationships
	Options       []ProcedureOption `gorm:"foreignKey:ProcedureID" json:"options,omitempty"`
	DiscountRules []DiscountRule    `gorm:"foreignKey:ProcedureID" json:"discount_rules,omitempty"`
}

func (Procedure) TableName() string {
	return "procedures"
}

// ProcedureOption is a selectable priced item of a procedure: a body area
// or an add-on specification.
type ProcedureOption struct {
	ID          uuid.UUID           `gorm:"type:uuid;primaryKey;default:gen_random_uuid()" json:"id"`
	ProcedureID uuid.UUID           `gorm:"type:uuid;not null;index" json:"procedure_id"`
	Kind        ProcedureOptionKind `gorm:"type:varchar(10);not null" json:"kind"`
	Name        string              `gorm:"type:varchar(255);not null" json:"name"`
	UnitPrice   decimal.Decimal     `gorm:"type:decimal(10,2);not null" json:"unit_price"`
}

func (ProcedureOption) TableName() string {
	return "procedure_options"
}

// DiscountRule is one tier of a procedure's multi-area discount table.
// MaxGroups nil means the tier is open-ended. Tiers are always loaded
// ordered by min_groups so the last matching tier is the intended one.
type DiscountRule struct {
	ID                 int             `gorm:"primaryKey;autoIncrement" json:"id"`
	ProcedureID        uuid.UUID       `gorm:"type:uuid;not null;index" json:"procedure_id"`
	MinGroups          int             `gorm:"not null" json:"min_groups"`
	MaxGroups          *int            `json:"max_groups,omitempty"`
	DiscountPercentage decimal.Decimal `gorm:"type:decimal(5,2);not null" json:"discount_percentage"`
}

func (DiscountRule) TableName() string {
	return "discount_rules"
}
