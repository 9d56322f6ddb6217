package domain

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ProjectState string

const (
	ProjectStateDraft     ProjectState = "draft"
	ProjectStateProposal  ProjectState = "proposal"
	ProjectStateMVP       ProjectState = "mvp"
	ProjectStateDesign    ProjectState = "design"
	ProjectStateFullBuild ProjectState = "full_build"
	ProjectStateDelivered ProjectState = "delivered"
	ProjectStateArchived  ProjectState = "archived"
)

var projectStates = []ProjectState{
	ProjectStateDraft,
	ProjectStateProposal,
	ProjectStateMVP,
	ProjectStateDesign,
	ProjectStateFullBuild,
	ProjectStateDelivered,
	ProjectStateArchived,
}

func (s ProjectState) Valid() bool {
	for _, state := range projectStates {
		if s == state {
			return true
		}
	}
	return false
}

// Deliverable names the project field a deliverable file is attached to.
type Deliverable string

const (
	DeliverableMVP       Deliverable = "mvp"
	DeliverableDesign    Deliverable = "design"
	DeliverableFullBuild Deliverable = "full_build"
)

type Project struct {
	ID          primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	ClientID    primitive.ObjectID   `bson:"client_id,omitempty" json:"client_id"`
	Name        string               `bson:"name,omitempty" json:"name"`
	Platforms   []string             `bson:"platforms,omitempty" json:"platforms"`
	Template    primitive.ObjectID   `bson:"template,omitempty" json:"template"`
	Features    []primitive.ObjectID `bson:"features,omitempty" json:"features"`
	State       ProjectState         `bson:"state,omitempty" json:"state"`
	Proposal    string               `bson:"proposal,omitempty" json:"proposal"`
	Deliverable string               `bson:"deliverable,omitempty" json:"deliverable"`
	TotalPrice  *float64             `bson:"total_price,omitempty" json:"total_price"`
	MVP         *File                `bson:"mvp,omitempty" json:"mvp"`
	Design      *File                `bson:"design,omitempty" json:"design"`
	FullBuild   *File                `bson:"full_build,omitempty" json:"full_build"`
}

// ProjectView is a project with its template and features looked up.
type ProjectView struct {
	Project      `bson:",inline"`
	TemplateDocs []Template `bson:"template_docs"`
	FeatureDocs  []Feature  `bson:"feature_docs"`
}

func (v ProjectView) ResolvedTemplate() *Template {
	for i := range v.TemplateDocs {
		if v.TemplateDocs[i].ID == v.Template {
			return &v.TemplateDocs[i]
		}
	}
	return nil
}

func (v ProjectView) ResolvedFeatures() []Feature {
	return spliceFeatures(v.Features, v.FeatureDocs)
}

func (v ProjectView) ReferenceCount() int {
	count := len(v.Features)
	if !v.Template.IsZero() {
		count++
	}
	return count
}

func (v ProjectView) ResolvedCount() int {
	count := len(v.ResolvedFeatures())
	if v.ResolvedTemplate() != nil {
		count++
	}
	return count
}
