package storekeep

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// product is the catalog's internal record. The name never changes after
// creation and the quantity never goes negative.
type product struct {
	name        string
	description string
	price       Money
	quantity    Quantity
}

// ProductView is a read-only snapshot of a product record.
type ProductView struct {
	Name        string
	Description string
	Price       Money
	Quantity    Quantity
}

// ProductUpdate describes a partial update of a product. Nil fields are left
// unchanged.
type ProductUpdate struct {
	Description *string
	Price       *Money
	Quantity    *Quantity
}

// Catalog is the authoritative mapping of product name to product record.
//
// A Catalog is owned by a single Store and is not safe for concurrent use.
type Catalog struct {
	products map[string]*product // index products by name
}

// NewCatalog creates an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{products: make(map[string]*product)}
}

// checkPrice validates a unit price for catalog or ledger use.
func checkPrice(price Money) error {
	if price.IsNegative() {
		return fmt.Errorf("%w: price %s is negative", ErrInvalidArgument, price)
	}
	return nil
}

// checkStock validates a stock quantity (zero is allowed).
func checkStock(quantity Quantity) error {
	if !quantity.IsInteger() {
		return fmt.Errorf("%w: quantity %s is not a whole number", ErrInvalidArgument, quantity)
	}
	if quantity.IsNegative() {
		return fmt.Errorf("%w: quantity %s is negative", ErrInvalidArgument, quantity)
	}
	return nil
}

// Add inserts a new product. It fails with ErrDuplicateName if the name is
// already present, and with ErrInvalidArgument on an empty name, a negative
// price, or a negative or fractional quantity. On any error the catalog is
// left unchanged.
func (c *Catalog) Add(name, description string, price Money, quantity Quantity) error {
	if name == "" {
		return fmt.Errorf("%w: product name is empty", ErrInvalidArgument)
	}
	if err := checkPrice(price); err != nil {
		return err
	}
	if err := checkStock(quantity); err != nil {
		return err
	}
	if _, ok := c.products[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	c.products[name] = &product{name: name, description: description, price: price, quantity: quantity}
	return nil
}

// Edit applies a partial update to an existing product. It fails with
// ErrNotFound if the name is absent. Set fields are validated first and
// applied all-or-nothing; nil fields are left unchanged.
func (c *Catalog) Edit(name string, u ProductUpdate) error {
	p, ok := c.products[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	if u.Price != nil {
		if err := checkPrice(*u.Price); err != nil {
			return err
		}
	}
	if u.Quantity != nil {
		if err := checkStock(*u.Quantity); err != nil {
			return err
		}
	}
	if u.Description != nil {
		p.description = *u.Description
	}
	if u.Price != nil {
		p.price = *u.Price
	}
	if u.Quantity != nil {
		p.quantity = *u.Quantity
	}
	return nil
}

// Delete removes a product. It fails with ErrNotFound if the name is absent.
func (c *Catalog) Delete(name string) error {
	if _, ok := c.products[name]; !ok {
		return fmt.Errorf("%w: %q", ErrNotFound, name)
	}
	delete(c.products, name)
	return nil
}

// Get returns a read-only view of the named product.
func (c *Catalog) Get(name string) (ProductView, bool) {
	p, ok := c.products[name]
	if !ok {
		return ProductView{}, false
	}
	return p.view(), true
}

// Len returns the number of products in the catalog.
func (c *Catalog) Len() int { return len(c.products) }

// Products iterates over product views in sorted name order.
func (c *Catalog) Products() iter.Seq[ProductView] {
	return func(yield func(ProductView) bool) {
		names := slices.Collect(maps.Keys(c.products))
		slices.Sort(names)
		for _, name := range names {
			if !yield(c.products[name].view()) {
				return
			}
		}
	}
}

func (p *product) view() ProductView {
	return ProductView{Name: p.name, Description: p.description, Price: p.price, Quantity: p.quantity}
}
