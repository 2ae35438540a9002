package creators

import (
	"github.com/nulzo/factory-method/internal/core/ports"
	"github.com/nulzo/factory-method/internal/core/services"
	"github.com/nulzo/factory-method/internal/registry"
)

func init() {
	registry.Register("ConcreteCreator2", NewConcreteCreator2)
}

// ConcreteProduct2 is the product built by ConcreteCreator2.
type ConcreteProduct2 struct{}

func (ConcreteProduct2) Operation() string {
	return "{Result of ConcreteProduct2}"
}

// ConcreteCreator2 builds ConcreteProduct2.
type ConcreteCreator2 struct{}

// NewConcreteCreator2 returns a ConcreteCreator2 behind the Creator interface.
func NewConcreteCreator2() ports.Creator {
	return ConcreteCreator2{}
}

// FactoryMethod returns ConcreteProduct2 typed as the abstract product.
func (ConcreteCreator2) FactoryMethod() ports.Product {
	return ConcreteProduct2{}
}

func (c ConcreteCreator2) SomeOperation() string {
	return services.SomeOperation(c)
}
