package core

import "strings"

// Category is the closed classification bucket for an expense.
type Category string

const (
	Food      Category = "food"
	Transport Category = "transport"
	Housing   Category = "housing"
	Health    Category = "health"
	Leisure   Category = "leisure"
	Other     Category = "other"
)

// categoryKeywords drives rule-based classification. Both orders matter:
// categories are scanned in declaration order and each keyword list in list
// order, and the first substring hit wins. Other has no keywords and is the
// fallback.
var categoryKeywords = []struct {
	Category Category
	Keywords []string
}{
	{Food, []string{
		"mercado", "supermercado", "ifood", "restaurante", "lanche",
		"padaria", "almoço", "almoco", "janta", "pizza", "comida", "feira",
	}},
	{Transport, []string{
		"uber", "gasolina", "posto", "ônibus", "onibus", "metrô", "metro",
		"táxi", "taxi", "corrida", "passagem", "estacionamento",
	}},
	{Housing, []string{
		"aluguel", "condomínio", "condominio", "luz", "água", "agua",
		"internet", "gás", "iptu",
	}},
	{Health, []string{
		"farmácia", "farmacia", "remédio", "remedio", "médico", "medico",
		"consulta", "dentista", "exame", "academia",
	}},
	{Leisure, []string{
		"cinema", "show", "bar", "netflix", "spotify", "viagem", "jogo",
		"festa", "passeio",
	}},
}

// Categories returns every category in declaration order, Other last.
// Reports iterate this slice so their line order is deterministic.
func Categories() []Category {
	cats := make([]Category, 0, len(categoryKeywords)+1)
	for _, cfg := range categoryKeywords {
		cats = append(cats, cfg.Category)
	}
	return append(cats, Other)
}

// Categorize maps free text to a category by case-insensitive substring
// search over the keyword lists. Returns Other when nothing matches.
func Categorize(text string) Category {
	lower := strings.ToLower(text)
	for _, cfg := range categoryKeywords {
		for _, kw := range cfg.Keywords {
			if strings.Contains(lower, kw) {
				return cfg.Category
			}
		}
	}
	return Other
}

// Label returns the user-facing display name.
func (c Category) Label() string {
	switch c {
	case Food:
		return "Alimentação"
	case Transport:
		return "Transporte"
	case Housing:
		return "Moradia"
	case Health:
		return "Saúde"
	case Leisure:
		return "Lazer"
	case Other:
		return "Outros"
	default:
		return string(c)
	}
}

// IsValid returns true for members of the closed category set.
func (c Category) IsValid() bool {
	switch c {
	case Food, Transport, Housing, Health, Leisure, Other:
		return true
	default:
		return false
	}
}

// CategoryTotal is an amount aggregated by category over a report window.
type CategoryTotal struct {
	Category Category
	Amount   Money
}
