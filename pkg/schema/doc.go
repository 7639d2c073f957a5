// Package schema provides a type-safe validation system for module parameters.
//
// It defines a small type system (string, int, float, bool, enum, template)
// used by the module type registry to describe parameter shapes, and by the
// validation engine to type-check generated parameters.
//
// Basic usage:
//
//	params := schema.Schema{
//	    "folder":     schema.String(),
//	    "maxResults": schema.Int(),
//	    "statement":  schema.Enum("insert", "update", "delete"),
//	}
//
//	data := map[string]any{
//	    "folder":     "INBOX",
//	    "maxResults": 10,
//	    "statement":  "insert",
//	}
//
//	if err := schema.ValidatePresent(params, data); err != nil {
//	    // Handle validation errors
//	}
//
// Schemas can be created programmatically or parsed from type strings,
// which is how registry catalogue files declare them:
//
//	typeMap := map[string]string{
//	    "folder":     "string",
//	    "maxResults": "int",
//	    "statement":  "enum(insert|update|delete)",
//	}
//
//	params, err := schema.ParseTypeMap(typeMap)
//
// The "template" type marks string parameters that may carry
// "{{id.capability}}" binding expressions. The type system only checks
// that the value is a string; resolving bindings is graph-level work.
package schema
