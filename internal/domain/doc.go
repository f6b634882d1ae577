// Package domain defines the core business types for the Blood Cloud site
// backend.
//
// Types in this package are pure value objects with no behavior, no storage
// dependencies, and no HTTP concerns. They are the shared language between
// handlers, services, and stores.
//
// Rules for this package:
//   - No imports from other internal/ packages
//   - No http.Request, no context.Context in struct fields
//   - JSON tags are allowed (they're metadata, not behavior)
//   - Validation methods are allowed (they're pure functions on the type)
//   - Constants and enums belong here
package domain
