package services

import "github.com/nulzo/factory-method/internal/core/ports"

// SomeOperationPrefix is prepended to the product's result by SomeOperation.
const SomeOperationPrefix = "Creator: The same creator's code has just worked with "

// SomeOperation is the creator business logic. Concrete creators delegate
// their SomeOperation to it and differ only in the product their factory
// method returns.
func SomeOperation(creator ports.FactoryMethod) string {
	product := creator.FactoryMethod()
	return SomeOperationPrefix + product.Operation()
}
