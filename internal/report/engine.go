// Package report derives aggregate views from a snapshot of order records.
// Functions here are pure: they never mutate their input and never touch storage.
package report

import (
	"sort"
	"time"

	"github.com/polkiloo/ordertrack/internal/codec"
	"github.com/polkiloo/ordertrack/internal/domain/model"
)

// DefaultLimit is the length of ranked reports.
const DefaultLimit = 5

// counter tallies names while remembering first appearance for tie-breaks.
type counter struct {
	counts map[string]int
	order  []string
}

func newCounter() *counter {
	return &counter{counts: make(map[string]int)}
}

func (c *counter) add(name string) {
	if _, ok := c.counts[name]; !ok {
		c.order = append(c.order, name)
	}
	c.counts[name]++
}

func (c *counter) top(limit int) []model.NameCount {
	ranked := make([]model.NameCount, 0, len(c.order))
	for _, name := range c.order {
		ranked = append(ranked, model.NameCount{Name: name, Count: c.counts[name]})
	}
	sort.SliceStable(ranked, func(i, j int) bool { return ranked[i].Count > ranked[j].Count })
	if limit >= 0 && len(ranked) > limit {
		ranked = ranked[:limit]
	}
	return ranked
}

// TopClients ranks clients by number of orders. Equal counts keep the order
// in which clients first appear in records. A negative limit returns all.
func TopClients(records []model.OrderRecord, limit int) []model.NameCount {
	c := newCounter()
	for _, r := range records {
		c.add(r.ClientName)
	}
	return c.top(limit)
}

// TopProducts ranks product names by how often they were ordered.
func TopProducts(records []model.OrderRecord, limit int) []model.NameCount {
	c := newCounter()
	for _, r := range records {
		for _, name := range codec.Names(r.Products) {
			c.add(name)
		}
	}
	return c.top(limit)
}

// OrdersOverTime counts orders per calendar date in chronological order.
// Records whose date does not parse are ignored.
func OrdersOverTime(records []model.OrderRecord) []model.DateCount {
	counts := make(map[time.Time]int)
	for _, r := range records {
		at, err := time.Parse(model.DateLayout, r.OrderDate)
		if err != nil {
			continue
		}
		day := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, time.UTC)
		counts[day]++
	}

	series := make([]model.DateCount, 0, len(counts))
	for day, n := range counts {
		series = append(series, model.DateCount{Date: day, Count: n})
	}
	sort.Slice(series, func(i, j int) bool { return series[i].Date.Before(series[j].Date) })
	return series
}

type pair struct{ a, b string }

// ClientGraph connects every two distinct clients that ordered a common product.
func ClientGraph(records []model.OrderRecord) model.Graph {
	buyers := make(map[string]map[string]struct{})
	var products []string
	for _, r := range records {
		for _, name := range codec.Names(r.Products) {
			set, ok := buyers[name]
			if !ok {
				set = make(map[string]struct{})
				buyers[name] = set
				products = append(products, name)
			}
			set[r.ClientName] = struct{}{}
		}
	}

	shared := make(map[pair][]string)
	for _, product := range products {
		clients := sortedKeys(buyers[product])
		for i := 0; i < len(clients); i++ {
			for j := i + 1; j < len(clients); j++ {
				key := pair{clients[i], clients[j]}
				shared[key] = append(shared[key], product)
			}
		}
	}

	nodes := make(map[string]struct{})
	edges := make([]model.Edge, 0, len(shared))
	for key, items := range shared {
		sort.Strings(items)
		edges = append(edges, model.Edge{A: key.a, B: key.b, Products: items})
		nodes[key.a] = struct{}{}
		nodes[key.b] = struct{}{}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].A != edges[j].A {
			return edges[i].A < edges[j].A
		}
		return edges[i].B < edges[j].B
	})

	return model.Graph{Nodes: sortedKeys(nodes), Edges: edges}
}

// Build computes every report over the same records.
func Build(records []model.OrderRecord, limit int) model.ReportSummary {
	return model.ReportSummary{
		TopClients:     TopClients(records, limit),
		TopProducts:    TopProducts(records, limit),
		OrdersOverTime: OrdersOverTime(records),
		ClientGraph:    ClientGraph(records),
	}
}

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
