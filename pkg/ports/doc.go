/*
Package ports defines the driven ports (interfaces) for the generator.

These interfaces decouple the generation pipeline from external
implementations, allowing the serve and MCP adapters to work with
different artifact backends.

# Key Interfaces

  - ArtifactStore: persists generation results (scenario plus diagnostics) by key.

RunArtifactStoreContract is an exported test suite adapters use to
prove compliance.
*/
package ports
