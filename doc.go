// Package storekeep provides the core types and operations for a single-user
// store inventory and transaction ledger. It is designed to be local-first
// and auditable: every sale and purchase is recorded in an immutable,
// chronological history.
//
// The core functionalities include:
//   - Catalog Management: A uniquely-keyed mapping of product names to
//     product records (description, price, stock quantity), with add, edit
//     and delete operations gated by uniqueness and existence rules.
//   - Ledger Management: Append-only sequences of sale and purchase
//     transactions. Recording a sale checks and decrements stock as a single
//     step; recording a purchase increments stock, auto-provisioning unknown
//     products.
//   - Exact Arithmetic: Prices, totals and quantities use decimal arithmetic
//     so that every recorded total is exactly unit price times quantity.
//
// This package serves as the foundational logic for the `skp` command-line
// tool; it holds all state in process memory and performs no I/O of its own.
package storekeep
