// Package models defines the core domain models for billman.
//
// # Models
//
//   - Customer: a billable customer with contact details
//   - Item: a billable line item belonging to exactly one customer
//   - FilterSpec: optional constraints narrowing the item view
//   - User: the authenticated account presented by the session boundary
//
// # Design Principles
//
// 1. **Plain values**: models carry no behavior beyond small helpers;
// derivations (totals, filtering, dashboard stats) live in the
// calculator package.
//
// 2. **ID strings instead of pointers**: an Item references its
// Customer by ID only, so the stores stay free of circular references
// and each store exclusively owns its records.
//
// 3. **Patches are explicit**: updates merge a patch struct whose nil
// fields mean "leave unchanged", keeping partial edits unambiguous.
package models
