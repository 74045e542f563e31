package domain

// Node is a single graph vertex
type Node struct {
	ID string `json:"id"`
}

// Link is an edge between two nodes, referenced by ID
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
}

// Graph is a node-link graph serialization: separate node and edge lists,
// the shape consumed by the frontend's graph renderer.
type Graph struct {
	Directed   bool           `json:"directed"`
	Multigraph bool           `json:"multigraph"`
	Meta       map[string]any `json:"graph"`
	Nodes      []Node         `json:"nodes"`
	Links      []Link         `json:"links"`
}

// NewGraph returns an empty undirected graph
func NewGraph() *Graph {
	return &Graph{
		Meta:  map[string]any{},
		Nodes: []Node{},
		Links: []Link{},
	}
}

// AddNode appends a node if its ID is not already present
func (g *Graph) AddNode(id string) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return
		}
	}
	g.Nodes = append(g.Nodes, Node{ID: id})
}

// AddLink appends an edge, adding missing endpoints first
func (g *Graph) AddLink(source, target string) {
	g.AddNode(source)
	g.AddNode(target)
	g.Links = append(g.Links, Link{Source: source, Target: target})
}
