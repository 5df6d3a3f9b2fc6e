package domain

// SelectionOption é uma opção do seletor de ano
type SelectionOption struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// AvailableYears representa as opções de filtro disponíveis para o dashboard
type AvailableYears struct {
	Options []SelectionOption `json:"options"` // "Todos os Anos" seguido de cada ano
	Years   []int             `json:"years"`   // Lista de anos únicos em ordem crescente
	Default string            `json:"default"`
}
