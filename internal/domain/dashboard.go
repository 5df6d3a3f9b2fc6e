package domain

// Dashboard reúne os quatro artefatos consumidos pela camada de renderização
type Dashboard struct {
	Selection  string            `json:"selection"`
	Summary    SummaryPayload    `json:"summary"`
	Series     SeriesPayload     `json:"series"`
	Comparison ComparisonPayload `json:"comparison"`
	Table      TablePayload      `json:"table"`
}

type SummaryPayload struct {
	Title   string          `json:"title"`
	Metrics []SummaryMetric `json:"metrics"`
}

// SummaryMetric é um cartão de métrica com valor numérico e formatado
type SummaryMetric struct {
	Key       string  `json:"key"`
	Label     string  `json:"label"`
	Value     float64 `json:"value"`
	Formatted string  `json:"formatted"`
}

type SeriesPayload struct {
	Title  string               `json:"title"`
	Points []SeriesPointPayload `json:"points"`
}

type SeriesPointPayload struct {
	Date     string  `json:"date"` // YYYY-MM-DD
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// ComparisonMode indica se o comparativo é entre anos ou entre meses de um ano
type ComparisonMode string

const (
	ComparisonYearly  ComparisonMode = "yearly"
	ComparisonMonthly ComparisonMode = "monthly"
)

type ComparisonPayload struct {
	Title      string               `json:"title"`
	Mode       ComparisonMode       `json:"mode"`
	Categories []ComparisonCategory `json:"categories"`
}

type ComparisonCategory struct {
	Label    string  `json:"label"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// TableColumn descreve uma coluna ordenável da tabela
type TableColumn struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"` // "text" ou "numeric"
}

type TablePayload struct {
	Columns []TableColumn     `json:"columns"`
	Rows    []TableRowPayload `json:"rows"`
}

type TableRowPayload struct {
	Period      string      `json:"period"`
	Revenue     string      `json:"revenue"`
	Expenses    string      `json:"expenses"`
	Profit      string      `json:"profit"`
	Margin      float64     `json:"margin"`
	MarginClass MarginClass `json:"margin_class"`
}

// Overview é o resumo geral de todo o histórico, exibido na página inicial
type Overview struct {
	TotalRevenue          float64 `json:"total_revenue"`
	TotalRevenueFormatted string  `json:"total_revenue_formatted"`
	TotalProfit           float64 `json:"total_profit"`
	TotalProfitFormatted  string  `json:"total_profit_formatted"`
	Months                int     `json:"months"`
	MarginPercent         float64 `json:"margin_percent"`
	MarginFormatted       string  `json:"margin_formatted"`
}
