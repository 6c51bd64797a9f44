package storekeep

import "testing"

// USD is a helper for tests to create dollar money from const
func USD(v float64) Money { return M(v, "USD") }

// qty is a helper for tests to create quantities from const
func qty(v int) Quantity { return Q(v) }

// newTestCatalog creates a catalog pre-filled with the given products.
func newTestCatalog(t *testing.T, views ...ProductView) *Catalog {
	t.Helper()
	c := NewCatalog()
	for _, v := range views {
		if err := c.Add(v.Name, v.Description, v.Price, v.Quantity); err != nil {
			t.Fatalf("Add(%q) failed: %v", v.Name, err)
		}
	}
	return c
}
