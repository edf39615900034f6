// Package validator is the schema engine behind the dtokit entities.
//
// Validation happens in two layers that always run in the same order:
//
//  1. Field rules are declared with `validate` struct tags and evaluated by
//     Struct, a thin wrapper around go-playground/validator. Failures are
//     converted into ValidationErrors whose Field is the JSON path of the
//     offending value relative to the validated root, e.g.
//     `items[0].product.categories[1].name`.
//  2. Whole-entity rules are built as Rule values (a Check closure plus
//     translation-friendly error metadata) and evaluated with Apply, which
//     collects every failure, or ApplyFirst, which stops at the first one.
//
// Entities run layer 2 only when layer 1 passed, so a cross-field rule never
// sees a value that broke its own field rule.
//
// # Usage
//
//	func (r DateRange) Validate() error {
//	    if err := validator.Struct(r); err != nil {
//	        return err
//	    }
//	    return validator.ApplyFirst(
//	        validator.NotAfter("start_date", r.StartDate.Time, r.EndDate.Time),
//	    )
//	}
//
// # Custom tags
//
// Besides the go-playground built-ins the engine registers `multipleof=<step>`
// for float quantization and a family of `pattern_<name>` tags backed by the
// regular expressions in Patterns.
//
// # Error Handling
//
// ValidationErrors implements error. Use ExtractValidationErrors or
// errors.As to inspect individual field failures; Nest re-roots the errors
// of a nested value under a parent path.
package validator
