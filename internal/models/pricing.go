package models

// LocalizedText текст на конкретном языке
type LocalizedText struct {
	Text     string `json:"text"`
	Language string `json:"language"`
}

// RateTier ступень тарифной сетки.
// Start - с какого значения (км или минут) действует ступень,
// Rate - цена за Interval единиц.
type RateTier struct {
	Start    float64 `json:"start"`
	Rate     float64 `json:"rate"`
	Interval int     `json:"interval"`
}

// Plan отдельный тарифный план
type Plan struct {
	PlanID        string          `json:"plan_id"`
	Currency      string          `json:"currency"`
	Name          []LocalizedText `json:"name"`
	Description   []LocalizedText `json:"description"`
	PerKmPricing  []RateTier      `json:"per_km_pricing"`
	PerMinPricing []RateTier      `json:"per_min_pricing"`
	Price         float64         `json:"price"`
	IsTaxable     bool            `json:"is_taxable"`
}

// DisplayName возвращает название плана на языке lang,
// если перевода нет - первое доступное название
func (p Plan) DisplayName(lang string) string {
	for _, n := range p.Name {
		if n.Language == lang {
			return n.Text
		}
	}
	if len(p.Name) > 0 {
		return p.Name[0].Text
	}
	return p.PlanID
}

// DataPlan содержимое системного тарифа
type DataPlan struct {
	Plans []Plan `json:"plans"`
}

// SystemPricingPlan системный набор тарифов. Идентифицируется по Version.
type SystemPricingPlan struct {
	LastUpdated string   `json:"last_updated"`
	Version     string   `json:"version"`
	Data        DataPlan `json:"data"`
	TTL         int      `json:"ttl"` // TTL время жизни в секундах
}

// FirstPlanID возвращает идентификатор первого плана или пустую строку
func (s SystemPricingPlan) FirstPlanID() string {
	if len(s.Data.Plans) == 0 {
		return ""
	}
	return s.Data.Plans[0].PlanID
}
