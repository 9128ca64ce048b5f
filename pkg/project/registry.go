package project

import (
	"fmt"

	"github.com/agentfs/update-version/pkg/runner"
)

type Registry struct {
	handlers map[Type]Handler
}

func NewRegistry(run runner.Runner) *Registry {
	r := &Registry{
		handlers: make(map[Type]Handler),
	}

	// Register default handlers
	r.Register(TypeCargo, NewCargoHandler(run))
	r.Register(TypeNode, NewNodeHandler(run))

	return r
}

func (r *Registry) Register(projectType Type, handler Handler) {
	r.handlers[projectType] = handler
}

func (r *Registry) Get(projectType Type) (Handler, error) {
	handler, ok := r.handlers[projectType]
	if !ok {
		return nil, fmt.Errorf("no handler for project type: %s", projectType)
	}
	return handler, nil
}
