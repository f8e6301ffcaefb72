package rpc

import (
	"glossary/internal/glossary"
	"glossary/internal/models"
	pb "glossary/internal/rpc/glossarypb"
)

func ToProto(t models.Term) *pb.TermResponse {
	return &pb.TermResponse{
		Id:         t.ID,
		Term:       t.Term,
		Definition: t.Definition,
		Priority:   t.Priority,
		Relation:   t.Relation,
		Author:     t.Author,
	}
}

func FromProto(t *pb.TermResponse) models.Term {
	return models.Term{
		ID:         t.GetId(),
		Term:       t.GetTerm(),
		Definition: t.GetDefinition(),
		Priority:   t.GetPriority(),
		Relation:   t.Relation,
		Author:     t.GetAuthor(),
	}
}

func PatchFromProto(req *pb.UpdateTermRequest) glossary.Patch {
	p := glossary.Patch{
		Term:       req.Term,
		Definition: req.Definition,
		Priority:   req.Priority,
		Author:     req.Author,
	}
	switch {
	case req.GetClearRelation():
		p.Relation = glossary.ClearID()
	case req.Relation != nil:
		p.Relation = glossary.SetID(req.GetRelation())
	}
	return p
}

// UpdateFromPatch is the inverse of PatchFromProto.
func UpdateFromPatch(id int64, p glossary.Patch) *pb.UpdateTermRequest {
	req := &pb.UpdateTermRequest{
		TermId:     id,
		Term:       p.Term,
		Definition: p.Definition,
		Priority:   p.Priority,
		Author:     p.Author,
	}
	if p.Relation.Set {
		if p.Relation.Value == nil {
			req.ClearRelation = true
		} else {
			req.Relation = p.Relation.Value
		}
	}
	return req
}
