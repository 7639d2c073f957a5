// Package emit serializes scenarios into import-ready blueprint
// documents and parses them back. Provenance metadata (timestamp,
// generator) is injected here, keeping the graph build itself pure.
package emit
