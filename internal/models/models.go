package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Candidate is one accepted application, stored in the candidati table.
// Column names are the historical storage schema (terse English); the
// Italian presentation names live in the mapper, not here.
//
// ID is the storage primary key. It is NOT the applicationId shown to
// the candidate after submitting: that one is a display-only APP-
// string generated by the submission service and never persisted.
type Candidate struct {
	ID        string    `gorm:"type:uuid;primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Name          string `gorm:"column:name;not null" json:"name"`
	Surname       string `gorm:"column:surname;not null" json:"surname"`
	Email         string `gorm:"column:email;not null" json:"email"`
	Phone         string `gorm:"column:n_tel;not null" json:"n_tel"`
	BirthDate     string `gorm:"column:birth_date;not null" json:"birth_date"`
	Residency     string `gorm:"column:res;not null" json:"res"`
	Domicile      string `gorm:"column:dom;not null" json:"dom"`
	University    string `gorm:"column:ateneo;not null" json:"ateneo"`
	Faculty       string `gorm:"column:facolta;not null" json:"facolta"`
	Course        string `gorm:"column:corso;not null" json:"corso"`
	Curriculum    string `gorm:"column:curriculum;not null" json:"curriculum"`
	CourseYear    string `gorm:"column:anno_freq;not null" json:"anno_freq"`
	Area1         string `gorm:"column:area;not null" json:"area"`
	Area2         string `gorm:"column:area2;not null" json:"area2"`
	HowJesap      string `gorm:"column:how_jesap;not null" json:"how_jesap"`
	WhyJesap      string `gorm:"column:motivo_jesap;type:text;not null" json:"motivo_jesap"`
	WhyArea       string `gorm:"column:motivo_area;type:text;not null" json:"motivo_area"`
	KnowSomeone   string `gorm:"column:conoscente_jesap" json:"conoscente_jesap"`
	JEItalyMember string `gorm:"column:je_italy_member" json:"je_italy_member"`

	// Nullable: a submission without an attachment stores no reference.
	ResumeURL *string `gorm:"column:resume_url" json:"resume_url"`
}

func (Candidate) TableName() string {
	return "candidati"
}

// BeforeCreate assigns the UUID primary key when the caller left it empty.
func (c *Candidate) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
