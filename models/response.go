package models

import "time"

// Instrument identifies which of the two surveys produced a response.
type Instrument string

const (
	InstrumentNPS  Instrument = "nps"
	InstrumentCSAT Instrument = "csat"
)

func (i Instrument) Valid() bool {
	return i == InstrumentNPS || i == InstrumentCSAT
}

// Category is the classification derived from the score at creation
// time. It is frozen on the record and never recomputed.
type Category string

const (
	CategoryPromoter  Category = "promoter"
	CategoryNeutral   Category = "neutral" // shared by NPS 7-8 and CSAT rating 3
	CategoryDetractor Category = "detractor"

	CategoryVeryDissatisfied Category = "very_dissatisfied"
	CategoryDissatisfied     Category = "dissatisfied"
	CategorySatisfied        Category = "satisfied"
	CategoryVerySatisfied    Category = "very_satisfied"
)

type SurveyResponse struct {
	ID         uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Instrument Instrument `gorm:"column:instrument;size:10;not null;index" json:"instrument"`
	Score      int        `gorm:"column:score;not null" json:"score"`
	Category   Category   `gorm:"column:category;size:30;not null" json:"category"`

	// ContextTag is the branch id for NPS, the context label for CSAT.
	ContextTag      string `gorm:"column:context_tag;size:100;index" json:"context_tag"`
	ContextResolved bool   `gorm:"column:context_resolved;default:true" json:"context_resolved"`

	Comment string `gorm:"column:comment;size:500" json:"comment,omitempty"`

	// Contact (NPS only) - informational, email shape checked at intake.
	ContactName  string `gorm:"column:contact_name;size:100" json:"contact_name,omitempty"`
	ContactEmail string `gorm:"column:contact_email;size:100" json:"contact_email,omitempty"`
	ContactPhone string `gorm:"column:contact_phone;size:20" json:"contact_phone,omitempty"`
	ContactTaxID string `gorm:"column:contact_tax_id;size:20" json:"contact_tax_id,omitempty"`

	SubmittedAt time.Time `gorm:"column:submitted_at;not null;index" json:"submitted_at"`
}

func (SurveyResponse) TableName() string {
	return "survey_responses"
}
