package domain

import "go.mongodb.org/mongo-driver/bson/primitive"

type Introduction struct {
	Purpose             string `bson:"purpose" json:"purpose"`
	DocumentConventions string `bson:"document_conventions" json:"document_conventions"`
	IntendedAudience    string `bson:"intended_audience" json:"intended_audience"`
	ProjectScope        string `bson:"project_scope" json:"project_scope"`
}

type OverallDescription struct {
	Perspective                     string `bson:"perspective" json:"perspective"`
	UserCharacteristics             string `bson:"user_characteristics" json:"user_characteristics"`
	OperatingEnvironment            string `bson:"operating_environment" json:"operating_environment"`
	DesignImplementationConstraints string `bson:"design_implementation_constraints" json:"design_implementation_constraints"`
	UserDocumentation               string `bson:"user_documentation" json:"user_documentation"`
	AssumptionsDependencies         string `bson:"assumptions_dependencies" json:"assumptions_dependencies"`
}

type NonFunctionalRequirements struct {
	PerformanceRequirements   string `bson:"performance_requirements" json:"performance_requirements"`
	SafetyRequirements        string `bson:"safety_requirements" json:"safety_requirements"`
	SecurityRequirements      string `bson:"security_requirements" json:"security_requirements"`
	SoftwareQualityAttributes string `bson:"software_quality_attributes" json:"software_quality_attributes"`
}

type Specification struct {
	Introduction              Introduction              `bson:"introduction" json:"introduction"`
	OverallDescription        OverallDescription        `bson:"overall_description" json:"overall_description"`
	NonFunctionalRequirements NonFunctionalRequirements `bson:"non_functional_requirements" json:"non_functional_requirements"`
	OtherRequirements         string                    `bson:"other_requirements" json:"other_requirements"`
	Glossary                  string                    `bson:"glossary" json:"glossary"`
	AnalysisModels            string                    `bson:"analysis_models" json:"analysis_models"`
	IssuesList                string                    `bson:"issues_list" json:"issues_list"`
}

type Template struct {
	ID            primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name          string               `bson:"name,omitempty" json:"name"`
	Description   string               `bson:"description,omitempty" json:"description"`
	Image         *File                `bson:"image,omitempty" json:"image"`
	Category      primitive.ObjectID   `bson:"category,omitempty" json:"category"`
	Features      []primitive.ObjectID `bson:"features,omitempty" json:"features"`
	Specification *Specification       `bson:"specification,omitempty" json:"specification"`
}

// TemplateView is a template with its category and features looked up.
type TemplateView struct {
	Template     `bson:",inline"`
	CategoryDocs []Category `bson:"category_docs"`
	FeatureDocs  []Feature  `bson:"feature_docs"`
}

func (v TemplateView) ResolvedCategory() *Category {
	for i := range v.CategoryDocs {
		if v.CategoryDocs[i].ID == v.Category {
			return &v.CategoryDocs[i]
		}
	}
	return nil
}

func (v TemplateView) ResolvedFeatures() []Feature {
	return spliceFeatures(v.Features, v.FeatureDocs)
}

func (v TemplateView) ReferenceCount() int {
	count := len(v.Features)
	if !v.Category.IsZero() {
		count++
	}
	return count
}

func (v TemplateView) ResolvedCount() int {
	count := len(v.ResolvedFeatures())
	if v.ResolvedCategory() != nil {
		count++
	}
	return count
}
