package schema

import (
	"encoding/json"
	"fmt"
)

// MarshalJSON renders the schema as field name to type name, the same
// notation ParseTypeMap accepts, so descriptor schemas survive a trip
// through the registry API.
func (s Schema) MarshalJSON() ([]byte, error) {
	if s == nil {
		return []byte("null"), nil
	}

	names := make(map[string]string, len(s))
	for field, typ := range s {
		if typ == nil {
			return nil, fmt.Errorf("field %s: type is nil", field)
		}
		names[field] = typ.Name()
	}
	return json.Marshal(names)
}

// UnmarshalJSON parses the field-to-type-name form back into typed
// schema entries.
func (s *Schema) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*s = nil
		return nil
	}

	var names map[string]string
	if err := json.Unmarshal(data, &names); err != nil {
		return err
	}

	parsed, err := ParseTypeMap(names)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
