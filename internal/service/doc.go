// Package service contains the application use cases for scientists, planets
// and missions. It orchestrates domain constructors and the store interfaces
// (defined in internal/store) to fulfill each request.
//
// Every mutating operation runs as a single unit of work through
// store.RunInTransaction: stores are bound to the transaction with WithTx and
// nothing touches the pool until the transaction has finished.
//
// Error handling:
//   - Domain validation errors and store sentinels (not found, invalid
//     entity) are returned unchanged so callers can match them with errors.Is.
//   - Anything else is wrapped in a *ServiceError naming the operation.
//
// The service layer depends on domain entities and store interfaces, never on
// a specific SQL implementation.
package service
