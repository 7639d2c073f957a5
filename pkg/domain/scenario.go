package domain

// Category classifies a module kind by its role in the flow.
type Category string

const (
	CategoryTrigger      Category = "trigger"
	CategoryProcessing   Category = "processing"
	CategoryRouter       Category = "router"
	CategoryAction       Category = "action"
	CategoryErrorHandler Category = "error-handler"
)

// Node is one module instance inside a scenario.
// Nodes are created exactly once by the graph builder and never mutated
// afterwards; identifiers are 1-based and strictly increasing in
// creation order.
type Node struct {
	ID         int            `json:"id"`
	Kind       string         `json:"module"`
	Category   Category       `json:"category"`
	Parameters map[string]any `json:"parameters"`

	// Connection is the name of the external account placeholder this
	// node depends on, or empty if the kind needs no external service.
	Connection string `json:"connection,omitempty"`
}

// Connection is a named external credential placeholder shared by all
// nodes that need the same external service.
type Connection struct {
	Name string `json:"name"`
	Type string `json:"type"`

	// Modules lists the identifiers of the nodes depending on this
	// connection, in creation order.
	Modules []int `json:"modules"`
}

// Scenario is the complete output of one generation request: an
// ordered module chain plus the connections it requires.
type Scenario struct {
	Name        string       `json:"name"`
	Description string       `json:"description"`
	Nodes       []Node       `json:"nodes"`
	Connections []Connection `json:"connections"`
}

// Node returns the node with the given identifier, or nil.
func (s *Scenario) Node(id int) *Node {
	for i := range s.Nodes {
		if s.Nodes[i].ID == id {
			return &s.Nodes[i]
		}
	}
	return nil
}

// ConnectionByName returns the named connection, or nil.
func (s *Scenario) ConnectionByName(name string) *Connection {
	for i := range s.Connections {
		if s.Connections[i].Name == name {
			return &s.Connections[i]
		}
	}
	return nil
}

// Triggers returns the nodes tagged with the trigger category.
func (s *Scenario) Triggers() []Node {
	var out []Node
	for _, n := range s.Nodes {
		if n.Category == CategoryTrigger {
			out = append(out, n)
		}
	}
	return out
}
