package schema

// Schema is a map of parameter names to their expected types.
// Example: {"folder": String(), "maxResults": Int()}
type Schema map[string]Type

// ValidatePresent type-checks only the fields that exist in data.
// Fields absent from data are skipped; fields absent from the schema
// are reported as unknown. Required-field presence is a graph-level
// concern and is checked by the validation engine, not here.
// Returns an error with all validation failures found.
func ValidatePresent(schema Schema, data map[string]any) error {
	var errs []error

	for fieldName, value := range data {
		fieldType, exists := schema[fieldName]
		if !exists {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: "not defined in schema",
				Value:  value,
			})
			continue
		}

		if err := fieldType.Validate(value); err != nil {
			errs = append(errs, &ValidationError{
				Key:    fieldName,
				Reason: err.Error(),
				Value:  value,
			})
		}
	}

	if len(errs) > 0 {
		return &AggregateError{Errors: errs}
	}

	return nil
}
