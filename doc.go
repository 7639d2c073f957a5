// Package flowforge compiles natural-language automation
// descriptions into typed, validated blueprint documents for a
// visual automation platform.
//
// The pipeline is deterministic and side-effect free: keyword rules
// extract intents from the description, the builder wires a module
// graph with value bindings between steps, the analysis engine
// attaches severity-tagged diagnostics, and the emitter serializes
// the result as a blueprint JSON document.
//
// Basic usage:
//
//	gen := flowforge.New()
//	result, err := gen.Generate("Watch Gmail and reply with AI")
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := result.Blueprint.Marshal()
//
// Diagnostics never abort generation. A description that produces a
// structurally broken graph still yields a blueprint, with the
// problems listed in Result.Diagnostics.
package flowforge
