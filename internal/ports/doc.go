// Package ports defines the contracts between the application layer and
// its adapters. The application depends on these interfaces; persistence,
// loading and cursor encoding are supplied by adapters at startup.
//
// Port conventions:
//   - Context is the first parameter of every blocking method
//   - Methods return domain types and domain errors, never driver types
//   - Interfaces stay small; each adapter implements only what it serves
package ports
