package glossary

import (
	"bytes"
	"encoding/json"

	"glossary/internal/models"
)

// NewTerm carries the fields accepted when creating a term.
type NewTerm struct {
	Term       string  `json:"term" binding:"required"`
	Definition string  `json:"definition" binding:"required"`
	Priority   *int32  `json:"priority" binding:"required"`
	Relation   *int64  `json:"relation"`
	Author     *string `json:"author"`
}

func (n NewTerm) validate() error {
	if n.Term == "" {
		return &ValidationError{Field: "term", Reason: "field required"}
	}
	if n.Definition == "" {
		return &ValidationError{Field: "definition", Reason: "field required"}
	}
	if n.Priority == nil {
		return &ValidationError{Field: "priority", Reason: "field required"}
	}
	return nil
}

func (n NewTerm) model() models.Term {
	t := models.Term{
		Term:       n.Term,
		Definition: n.Definition,
		Priority:   *n.Priority,
		Relation:   relationID(n.Relation),
		Author:     models.DefaultAuthor,
	}
	if n.Author != nil && *n.Author != "" {
		t.Author = *n.Author
	}
	return t
}

// Patch is a partial update. Nil fields and an unset Relation keep the
// stored value. A relation of 0 clears it, and an empty author restores
// DefaultAuthor, the same as on create.
type Patch struct {
	Term       *string    `json:"term"`
	Definition *string    `json:"definition"`
	Priority   *int32     `json:"priority"`
	Relation   OptionalID `json:"relation"`
	Author     *string    `json:"author"`
}

// Apply returns t with every supplied field of p written over it.
func (p Patch) Apply(t models.Term) models.Term {
	if p.Term != nil {
		t.Term = *p.Term
	}
	if p.Definition != nil {
		t.Definition = *p.Definition
	}
	if p.Priority != nil {
		t.Priority = *p.Priority
	}
	if p.Relation.Set {
		t.Relation = relationID(p.Relation.Value)
	}
	if p.Author != nil {
		t.Author = *p.Author
		if t.Author == "" {
			t.Author = models.DefaultAuthor
		}
	}
	return t
}

// relationID maps an absent relation and relation 0 to nil.
func relationID(id *int64) *int64 {
	if id == nil || *id == 0 {
		return nil
	}
	return id
}

// OptionalID distinguishes an absent JSON key from an explicit null.
type OptionalID struct {
	Set   bool
	Value *int64
}

func SetID(id int64) OptionalID {
	return OptionalID{Set: true, Value: &id}
}

func ClearID() OptionalID {
	return OptionalID{Set: true}
}

func (o *OptionalID) UnmarshalJSON(data []byte) error {
	o.Set = true
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		o.Value = nil
		return nil
	}
	var id int64
	if err := json.Unmarshal(data, &id); err != nil {
		return err
	}
	o.Value = &id
	return nil
}

func (o OptionalID) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}
