package service

import (
	"context"

	"github.com/MedAmineFouzai/BuilderServiceRest/internal/domain"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/dto"
	"github.com/MedAmineFouzai/BuilderServiceRest/internal/repository"
)

type PrototypeServiceImpl struct {
	repo   repository.PrototypeRepository
	events events
	policy referencePolicy
}

func CreatePrototypeService(repo repository.PrototypeRepository, publisher EventPublisher, strictReferences bool) PrototypeService {
	return &PrototypeServiceImpl{
		repo:   repo,
		events: events{publisher: publisher},
		policy: referencePolicy{strict: strictReferences},
	}
}

func buildNodes(req []dto.PrototypeNodeRequest) ([]domain.PrototypeNode, error) {
	nodes := make([]domain.PrototypeNode, 0, len(req))
	for _, n := range req {
		featureID, err := parseObjectID(n.FeatureID)
		if err != nil {
			return nil, err
		}

		connections := make([]domain.Connection, 0, len(n.Connections))
		for _, c := range n.Connections {
			to, err := parseObjectID(c.To)
			if err != nil {
				return nil, err
			}
			connections = append(connections, domain.Connection{To: to, Relation: c.Relation})
		}

		nodes = append(nodes, domain.PrototypeNode{FeatureID: featureID, Connections: connections})
	}
	return nodes, nil
}

func buildPrototypeView(view *domain.PrototypeView, err error) (dto.PrototypeViewResponse, error) {
	view, err = notFoundIfNil(view, err)
	if err != nil {
		return dto.PrototypeViewResponse{}, err
	}

	return dto.BuildPrototypeViewResponse(*view), nil
}

func (s *PrototypeServiceImpl) AddPrototype(ctx context.Context, req dto.PrototypeRequest) (data dto.PrototypeViewResponse, err error) {
	templateID, err := parseObjectID(req.TemplateID)
	if err != nil {
		return
	}

	nodes, err := buildNodes(req.Prototype)
	if err != nil {
		return
	}

	id, err := s.repo.Insert(ctx, domain.Prototype{TemplateID: templateID, Nodes: nodes})
	if err != nil {
		return
	}

	data, err = buildPrototypeView(s.repo.AggregateByID(ctx, id.Hex()))
	if err != nil {
		return
	}

	s.events.emit(ctx, "prototype_created", data.ID, data)

	return data, nil
}

func (s *PrototypeServiceImpl) GetPrototypeByTemplateID(ctx context.Context, templateID string) (data dto.PrototypeViewResponse, err error) {
	view, err := notFoundIfNil(s.repo.AggregateByTemplateID(ctx, templateID))
	if err != nil {
		return
	}

	if err = s.policy.check(view); err != nil {
		return
	}

	return dto.BuildPrototypeViewResponse(*view), nil
}

func (s *PrototypeServiceImpl) UpdatePrototypeByTemplateID(ctx context.Context, req dto.PrototypeRequest) (data dto.PrototypeViewResponse, err error) {
	if _, err = parseObjectID(req.TemplateID); err != nil {
		return
	}

	nodes, err := buildNodes(req.Prototype)
	if err != nil {
		return
	}

	if _, err = notFoundIfNil(s.repo.UpdateByTemplateID(ctx, req.TemplateID, nodes)); err != nil {
		return
	}

	data, err = buildPrototypeView(s.repo.AggregateByTemplateID(ctx, req.TemplateID))
	if err != nil {
		return
	}

	s.events.emit(ctx, "prototype_updated", data.ID, data)

	return data, nil
}

func (s *PrototypeServiceImpl) DeletePrototype(ctx context.Context, id string) (data dto.PrototypeDeletedResponse, err error) {
	prototype, err := notFoundIfNil(s.repo.DeleteByID(ctx, id))
	if err != nil {
		return
	}

	data = dto.BuildPrototypeDeletedResponse(*prototype)
	s.events.emit(ctx, "prototype_deleted", data.ID, data)

	return data, nil
}
