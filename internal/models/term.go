package models

// DefaultAuthor is stored when a term is created without an author.
const DefaultAuthor = "Vityaooooo"

type Term struct {
	ID         int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Term       string `gorm:"size:255;index;not null" json:"term"`
	Definition string `gorm:"type:text;not null" json:"definition"`
	Priority   int32  `gorm:"not null;default:0" json:"priority"`
	// Relation optionally points at another term's ID. Zero is never stored.
	Relation *int64 `gorm:"index" json:"relation"`
	Author   string `gorm:"size:255;default:Vityaooooo" json:"author"`
}

func (Term) TableName() string {
	return "terms"
}
