package dto

type CategoryRequest struct {
	ID          string `json:"-"`
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
}

type CategoryUpdateRequest struct {
	ID          string `json:"-"`
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

// Prices arrive as form text and are parsed by the service so that a missing
// value and a zero price stay distinguishable.
type FeatureRequest struct {
	ID          string `json:"-"`
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	FeatureType string `form:"feature_type" json:"feature_type" validate:"required"`
	Price       string `form:"price" json:"price" validate:"required,numeric"`
	Repo        string `form:"repo" json:"repo"`
}

type FeatureUpdateRequest struct {
	ID          string `json:"-"`
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
	FeatureType string `form:"feature_type" json:"feature_type"`
	Price       string `form:"price" json:"price" validate:"omitempty,numeric"`
	Repo        string `form:"repo" json:"repo"`
}

type TemplateRequest struct {
	ID          string `json:"-"`
	Name        string `form:"name" json:"name" validate:"required"`
	Description string `form:"description" json:"description" validate:"required"`
	Category    string `form:"category" json:"category" validate:"required,mongodb"`
}

type TemplateUpdateRequest struct {
	ID          string `json:"-"`
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
	Category    string `form:"category" json:"category" validate:"omitempty,mongodb"`
}

// FeatureSetRequest carries feature ids for template and project feature
// operations.
type FeatureSetRequest struct {
	ID         string   `json:"-"`
	FeaturesID []string `json:"features_id" validate:"dive,mongodb"`
}

type SpecificationRequest struct {
	ID                              string `json:"-"`
	Purpose                         string `form:"purpose" json:"purpose"`
	DocumentConventions             string `form:"document_conventions" json:"document_conventions"`
	IntendedAudience                string `form:"intended_audience" json:"intended_audience"`
	ProjectScope                    string `form:"project_scope" json:"project_scope"`
	Perspective                     string `form:"perspective" json:"perspective"`
	UserCharacteristics             string `form:"user_characteristics" json:"user_characteristics"`
	OperatingEnvironment            string `form:"operating_environment" json:"operating_environment"`
	DesignImplementationConstraints string `form:"design_implementation_constraints" json:"design_implementation_constraints"`
	UserDocumentation               string `form:"user_documentation" json:"user_documentation"`
	AssumptionsDependencies         string `form:"assumptions_dependencies" json:"assumptions_dependencies"`
	PerformanceRequirements         string `form:"performance_requirements" json:"performance_requirements"`
	SafetyRequirements              string `form:"safety_requirements" json:"safety_requirements"`
	SecurityRequirements            string `form:"security_requirements" json:"security_requirements"`
	SoftwareQualityAttributes       string `form:"software_quality_attributes" json:"software_quality_attributes"`
	OtherRequirements               string `form:"other_requirements" json:"other_requirements"`
	Glossary                        string `form:"glossary" json:"glossary"`
	AnalysisModels                  string `form:"analysis_models" json:"analysis_models"`
	IssuesList                      string `form:"issues_list" json:"issues_list"`
}

type ConnectionRequest struct {
	To       string `json:"to" validate:"required,mongodb"`
	Relation string `json:"relation"`
}

type PrototypeNodeRequest struct {
	FeatureID   string              `json:"feature_id" validate:"required,mongodb"`
	Connections []ConnectionRequest `json:"connections" validate:"dive"`
}

type PrototypeRequest struct {
	TemplateID string                 `json:"template_id" validate:"required,mongodb"`
	Prototype  []PrototypeNodeRequest `json:"prototype" validate:"dive"`
}

type ProjectRequest struct {
	ID          string   `json:"-"`
	ClientID    string   `json:"client_id" validate:"required,mongodb"`
	Name        string   `json:"name" validate:"required"`
	Platforms   []string `json:"platforms"`
	Template    string   `json:"template" validate:"required,mongodb"`
	Features    []string `json:"features" validate:"dive,mongodb"`
	State       string   `json:"state" validate:"omitempty,oneof=draft proposal mvp design full_build delivered archived"`
	Proposal    string   `json:"proposal"`
	Deliverable string   `json:"deliverable"`
	TotalPrice  float64  `json:"total_price" validate:"gte=0"`
}

type ProjectStateRequest struct {
	ID    string `json:"-"`
	State string `json:"state" form:"state" validate:"required"`
}

type ProjectProposalRequest struct {
	ID       string `json:"-"`
	Proposal string `json:"proposal" form:"proposal" validate:"required"`
}
