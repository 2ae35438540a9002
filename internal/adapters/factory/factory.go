package factory

import (
	"fmt"

	"github.com/nulzo/factory-method/internal/core/ports"
	"github.com/nulzo/factory-method/internal/registry"
)

// CreatorFactory turns configured creator names into creators.
type CreatorFactory struct{}

func NewCreatorFactory() *CreatorFactory {
	return &CreatorFactory{}
}

// CreateCreator builds the creator registered under name. Registry errors
// already carry the name and are returned as is.
func (f *CreatorFactory) CreateCreator(name string) (ports.Creator, error) {
	factoryFunc, err := registry.Get(name)
	if err != nil {
		return nil, err
	}

	return factoryFunc(), nil
}

// CreateCreators builds one creator per name, in order. It fails on the
// first bad entry and reports its position in the launch list, so nothing
// is built unless every name resolves.
func (f *CreatorFactory) CreateCreators(names []string) ([]ports.Creator, error) {
	creators := make([]ports.Creator, 0, len(names))
	for i, name := range names {
		c, err := f.CreateCreator(name)
		if err != nil {
			return nil, fmt.Errorf("launch[%d]: %w", i, err)
		}
		creators = append(creators, c)
	}
	return creators, nil
}
