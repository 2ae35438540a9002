package creators

import (
	"github.com/nulzo/factory-method/internal/core/ports"
	"github.com/nulzo/factory-method/internal/core/services"
	"github.com/nulzo/factory-method/internal/registry"
)

func init() {
	registry.Register("ConcreteCreator1", NewConcreteCreator1)
}

// ConcreteProduct1 is the product built by ConcreteCreator1.
type ConcreteProduct1 struct{}

func (ConcreteProduct1) Operation() string {
	return "{Result of ConcreteProduct1}"
}

// ConcreteCreator1 builds ConcreteProduct1.
type ConcreteCreator1 struct{}

// NewConcreteCreator1 returns a ConcreteCreator1 behind the Creator interface.
func NewConcreteCreator1() ports.Creator {
	return ConcreteCreator1{}
}

// FactoryMethod still returns the abstract product type, so the shared
// business logic never sees ConcreteProduct1.
func (ConcreteCreator1) FactoryMethod() ports.Product {
	return ConcreteProduct1{}
}

func (c ConcreteCreator1) SomeOperation() string {
	return services.SomeOperation(c)
}
