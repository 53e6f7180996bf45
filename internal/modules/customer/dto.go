package customer

import (
	"encoding/json"

	"fieldcrm/internal/domain"
)

type CreateCustomerRequest struct {
	Name      string   `json:"name" binding:"required"`
	Region    string   `json:"region" binding:"required"`
	Phone     string   `json:"phone"`
	Address   string   `json:"address"`
	PriceTier string   `json:"price_tier"`
	VisitDays []string `json:"visit_days"`
	Alerts    []string `json:"alerts"`
}

type UpdateCustomerRequest struct {
	Name      *string   `json:"name"`
	Region    *string   `json:"region"`
	Phone     *string   `json:"phone"`
	Address   *string   `json:"address"`
	PriceTier *string   `json:"price_tier"`
	VisitDays *[]string `json:"visit_days"`
	Alerts    *[]string `json:"alerts"`
}

func validVisitDays(days []string) bool {
	for _, d := range days {
		if !domain.IsValidWeekday(d) {
			return false
		}
	}
	return true
}

func validAlerts(alerts []string) bool {
	for _, a := range alerts {
		if !domain.IsValidAlert(a) {
			return false
		}
	}
	return true
}

func validPriceTier(tier string) bool {
	return tier == string(domain.PriceTierStandard) || tier == string(domain.PriceTierDiscounted)
}

// marshalList pre-serializes a list column for a map-based partial update,
// which bypasses gorm's field serializers.
func marshalList(v []string) string {
	b, _ := json.Marshal(v)
	return string(b)
}
