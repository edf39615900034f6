// Package dto contains validated entities: in-memory records whose
// constructors only ever return values that satisfy every field and
// cross-field rule.
//
// # Construction
//
// There are three ways to obtain an entity, all of which validate:
//
//	addr, err := dto.New(dto.Address{Street: "1 Main St", ...}) // literal
//	addr, err := dto.Parse[dto.Address](data)                    // canonical JSON
//	addr, err := dto.FromMap[dto.Address](map[string]any{...})   // raw mapping
//
// Parse and FromMap apply field defaults (for example Address.Country is "US"
// when absent), report missing required keys and malformed values as
// structural errors, and then run Validate. Validation failures are always
// validator.ValidationErrors carrying the JSON path of each failing field.
//
// Field rules run first. Whole-entity rules (DateRange ordering, TimeSlot
// span, SearchFilter price bounds, SignUp password confirmation) run only when
// every field rule passed and report the first violated rule.
//
// # Output
//
// Marshal produces the canonical JSON encoding and Dump a plain
// map[string]any. Secret fields render as secret.Redacted and
// SignUp.ConfirmPassword is never written. Derived values (Order.Total,
// PaginatedResponse.TotalPages, ...) are methods, recomputed on every call
// and never serialized.
//
// # Changes
//
// Entities are values. Update applies a change to a copy and returns it
// only if the copy is still valid.
package dto
