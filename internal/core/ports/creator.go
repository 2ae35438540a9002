package ports

// Product is the object family a Creator's factory method builds.
type Product interface {
	Operation() string
}

// Creator defines the contract that all concrete creators must implement.
// Callers depend on this interface only and never on a concrete creator.
type Creator interface {
	// FactoryMethod returns a freshly constructed Product.
	FactoryMethod() Product

	// SomeOperation runs the business logic shared by every creator
	// against the product returned by FactoryMethod.
	SomeOperation() string
}

// FactoryMethod is the half of Creator the shared business logic needs.
type FactoryMethod interface {
	FactoryMethod() Product
}
