package model

import "time"

// NameCount is a ranked report entry.
type NameCount struct {
	Name  string
	Count int
}

// DateCount is one point of the orders over time series.
type DateCount struct {
	Date  time.Time
	Count int
}

// Edge connects two clients who ordered at least one common product.
// A is always lexicographically smaller than B.
type Edge struct {
	A        string
	B        string
	Products []string
}

// Graph is the undirected client co-occurrence graph.
type Graph struct {
	Nodes []string
	Edges []Edge
}

// HasEdge reports whether a and b are connected.
func (g Graph) HasEdge(a, b string) bool {
	if a > b {
		a, b = b, a
	}
	for _, e := range g.Edges {
		if e.A == a && e.B == b {
			return true
		}
	}
	return false
}

// Neighbors returns clients connected to name in edge order.
func (g Graph) Neighbors(name string) []string {
	var result []string
	for _, e := range g.Edges {
		switch name {
		case e.A:
			result = append(result, e.B)
		case e.B:
			result = append(result, e.A)
		}
	}
	return result
}

// ReportSummary bundles all reports computed over one order snapshot.
type ReportSummary struct {
	TopClients     []NameCount
	TopProducts    []NameCount
	OrdersOverTime []DateCount
	ClientGraph    Graph
}
