package dto

type NameCountResponse struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// DateCountResponse carries a calendar date as YYYY-MM-DD.
type DateCountResponse struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

type EdgeResponse struct {
	A        string   `json:"a"`
	B        string   `json:"b"`
	Products []string `json:"products"`
}

type GraphResponse struct {
	Nodes []string       `json:"nodes"`
	Edges []EdgeResponse `json:"edges"`
}

// SummaryResponse bundles all reports.
type SummaryResponse struct {
	TopClients     []NameCountResponse `json:"top_clients"`
	TopProducts    []NameCountResponse `json:"top_products"`
	OrdersOverTime []DateCountResponse `json:"orders_over_time"`
	ClientGraph    GraphResponse       `json:"client_graph"`
}
