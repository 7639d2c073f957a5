// Package templates ships curated scenario starting points. Builtin()
// covers the stock catalogue; a Library loads additional templates
// from markdown documents with YAML frontmatter.
package templates
