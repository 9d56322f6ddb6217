package dto

import (
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type FileResponse struct {
	Name string `json:"name"`
	Src  string `json:"src"`
}

type FileWithIDResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Src  string `json:"src"`
}

type CategoryResponse struct {
	ID          string       `json:"id"`
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Image       FileResponse `json:"image"`
}

type FeatureResponse struct {
	ID          string               `json:"id"`
	Name        string               `json:"name"`
	Description string               `json:"description"`
	FeatureType string               `json:"feature_type"`
	Image       FileResponse         `json:"image"`
	Wireframes  []FileWithIDResponse `json:"wireframes"`
	Price       float64              `json:"price"`
	Repo        string               `json:"repo"`
}

type TemplateResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Image         FileResponse         `json:"image"`
	Category      string               `json:"category"`
	Features      []string             `json:"features"`
	Specification domain.Specification `json:"specification"`
}

type TemplateViewResponse struct {
	ID            string               `json:"id"`
	Name          string               `json:"name"`
	Description   string               `json:"description"`
	Image         FileResponse         `json:"image"`
	Category      *CategoryResponse    `json:"category,omitempty"`
	Features      []FeatureResponse    `json:"features"`
	Specification domain.Specification `json:"specification"`
}

type ConnectionResponse struct {
	To       *FeatureResponse `json:"to,omitempty"`
	Relation string           `json:"relation"`
}

type PrototypeNodeResponse struct {
	Feature     *FeatureResponse     `json:"feature,omitempty"`
	Connections []ConnectionResponse `json:"connections"`
}

type PrototypeViewResponse struct {
	ID        string                  `json:"id"`
	Template  *TemplateResponse       `json:"template,omitempty"`
	Prototype []PrototypeNodeResponse `json:"prototype"`
}

type PrototypeDeletedResponse struct {
	ID         string `json:"id"`
	TemplateID string `json:"template_id"`
}

type ProjectViewResponse struct {
	ID          string            `json:"id"`
	ClientID    string            `json:"client_id"`
	Name        string            `json:"name"`
	Platforms   []string          `json:"platforms"`
	Template    *TemplateResponse `json:"template,omitempty"`
	Features    []FeatureResponse `json:"features"`
	State       string            `json:"state"`
	Proposal    string            `json:"proposal"`
	Deliverable string            `json:"deliverable"`
	TotalPrice  float64           `json:"total_price"`
	MVP         *FileResponse     `json:"mvp,omitempty"`
	Design      *FileResponse     `json:"design,omitempty"`
	FullBuild   *FileResponse     `json:"full_build,omitempty"`
}

func buildFile(file *domain.File) FileResponse {
	if file == nil {
		return FileResponse{}
	}
	return FileResponse{Name: file.Name, Src: file.Src}
}

func buildOptionalFile(file *domain.File) *FileResponse {
	if file == nil {
		return nil
	}
	resp := buildFile(file)
	return &resp
}

func hexIDs(ids []primitive.ObjectID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.Hex())
	}
	return out
}

func hexOrEmpty(id primitive.ObjectID) string {
	if id.IsZero() {
		return ""
	}
	return id.Hex()
}

func buildSpecification(spec *domain.Specification) domain.Specification {
	if spec == nil {
		return domain.Specification{}
	}
	return *spec
}

func BuildCategoryResponse(c domain.Category) CategoryResponse {
	return CategoryResponse{
		ID:          c.ID.Hex(),
		Name:        c.Name,
		Description: c.Description,
		Image:       buildFile(c.Image),
	}
}

func BuildCategoryResponses(categories []domain.Category) []CategoryResponse {
	resp := make([]CategoryResponse, 0, len(categories))
	for _, c := range categories {
		resp = append(resp, BuildCategoryResponse(c))
	}
	return resp
}

func BuildFeatureResponse(f domain.Feature) FeatureResponse {
	wireframes := make([]FileWithIDResponse, 0, len(f.Wireframes))
	for _, w := range f.Wireframes {
		wireframes = append(wireframes, FileWithIDResponse{ID: w.ID.Hex(), Name: w.Name, Src: w.Src})
	}

	var price float64
	if f.Price != nil {
		price = *f.Price
	}

	return FeatureResponse{
		ID:          f.ID.Hex(),
		Name:        f.Name,
		Description: f.Description,
		FeatureType: f.FeatureType,
		Image:       buildFile(f.Image),
		Wireframes:  wireframes,
		Price:       price,
		Repo:        f.Repo,
	}
}

func BuildFeatureResponses(features []domain.Feature) []FeatureResponse {
	resp := make([]FeatureResponse, 0, len(features))
	for _, f := range features {
		resp = append(resp, BuildFeatureResponse(f))
	}
	return resp
}

func BuildTemplateResponse(t domain.Template) TemplateResponse {
	return TemplateResponse{
		ID:            t.ID.Hex(),
		Name:          t.Name,
		Description:   t.Description,
		Image:         buildFile(t.Image),
		Category:      hexOrEmpty(t.Category),
		Features:      hexIDs(t.Features),
		Specification: buildSpecification(t.Specification),
	}
}

func BuildTemplateViewResponse(v domain.TemplateView) TemplateViewResponse {
	resp := TemplateViewResponse{
		ID:            v.ID.Hex(),
		Name:          v.Name,
		Description:   v.Description,
		Image:         buildFile(v.Image),
		Features:      BuildFeatureResponses(v.ResolvedFeatures()),
		Specification: buildSpecification(v.Specification),
	}

	if category := v.ResolvedCategory(); category != nil {
		c := BuildCategoryResponse(*category)
		resp.Category = &c
	}

	return resp
}

func BuildTemplateViewResponses(views []domain.TemplateView) []TemplateViewResponse {
	resp := make([]TemplateViewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, BuildTemplateViewResponse(v))
	}
	return resp
}

func BuildPrototypeViewResponse(v domain.PrototypeView) PrototypeViewResponse {
	resolve := func(id primitive.ObjectID) *FeatureResponse {
		feature := v.ResolvedFeature(id)
		if feature == nil {
			return nil
		}
		f := BuildFeatureResponse(*feature)
		return &f
	}

	nodes := make([]PrototypeNodeResponse, 0, len(v.Nodes))
	for _, node := range v.Nodes {
		connections := make([]ConnectionResponse, 0, len(node.Connections))
		for _, conn := range node.Connections {
			connections = append(connections, ConnectionResponse{To: resolve(conn.To), Relation: conn.Relation})
		}
		nodes = append(nodes, PrototypeNodeResponse{Feature: resolve(node.FeatureID), Connections: connections})
	}

	resp := PrototypeViewResponse{ID: v.ID.Hex(), Prototype: nodes}
	if tmpl := v.ResolvedTemplate(); tmpl != nil {
		t := BuildTemplateResponse(*tmpl)
		resp.Template = &t
	}

	return resp
}

func BuildPrototypeDeletedResponse(p domain.Prototype) PrototypeDeletedResponse {
	return PrototypeDeletedResponse{ID: p.ID.Hex(), TemplateID: hexOrEmpty(p.TemplateID)}
}

func BuildProjectViewResponse(v domain.ProjectView) ProjectViewResponse {
	platforms := v.Platforms
	if platforms == nil {
		platforms = []string{}
	}

	var totalPrice float64
	if v.TotalPrice != nil {
		totalPrice = *v.TotalPrice
	}

	resp := ProjectViewResponse{
		ID:          v.ID.Hex(),
		ClientID:    hexOrEmpty(v.ClientID),
		Name:        v.Name,
		Platforms:   platforms,
		Features:    BuildFeatureResponses(v.ResolvedFeatures()),
		State:       string(v.State),
		Proposal:    v.Proposal,
		Deliverable: v.Deliverable,
		TotalPrice:  totalPrice,
		MVP:         buildOptionalFile(v.MVP),
		Design:      buildOptionalFile(v.Design),
		FullBuild:   buildOptionalFile(v.FullBuild),
	}

	if tmpl := v.ResolvedTemplate(); tmpl != nil {
		t := BuildTemplateResponse(*tmpl)
		resp.Template = &t
	}

	return resp
}

func BuildProjectViewResponses(views []domain.ProjectView) []ProjectViewResponse {
	resp := make([]ProjectViewResponse, 0, len(views))
	for _, v := range views {
		resp = append(resp, BuildProjectViewResponse(v))
	}
	return resp
}

type ProjectResponse struct {
	ID          string        `json:"id"`
	ClientID    string        `json:"client_id"`
	Name        string        `json:"name"`
	Platforms   []string      `json:"platforms"`
	Template    string        `json:"template"`
	Features    []string      `json:"features"`
	State       string        `json:"state"`
	Proposal    string        `json:"proposal"`
	Deliverable string        `json:"deliverable"`
	TotalPrice  float64       `json:"total_price"`
	MVP         *FileResponse `json:"mvp,omitempty"`
	Design      *FileResponse `json:"design,omitempty"`
	FullBuild   *FileResponse `json:"full_build,omitempty"`
}

// BuildProjectResponse shapes a stored project without looking up its
// references.
func BuildProjectResponse(p domain.Project) ProjectResponse {
	view := BuildProjectViewResponse(domain.ProjectView{Project: p})
	return ProjectResponse{
		ID:          view.ID,
		ClientID:    view.ClientID,
		Name:        view.Name,
		Platforms:   view.Platforms,
		Template:    hexOrEmpty(p.Template),
		Features:    hexIDs(p.Features),
		State:       view.State,
		Proposal:    view.Proposal,
		Deliverable: view.Deliverable,
		TotalPrice:  view.TotalPrice,
		MVP:         view.MVP,
		Design:      view.Design,
		FullBuild:   view.FullBuild,
	}
}
