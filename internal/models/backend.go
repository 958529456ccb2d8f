package models

// Transport represents a carrier registered in the logistics backend
type Transport struct {
	Code              string `json:"code"`
	Name              string `json:"name"`
	TaxIdentification string `json:"tax_identification"`
	IsActive          bool   `json:"is_active"`
}

// Liquidation is a settlement batch for a transport
type Liquidation struct {
	IDTransport        int64               `json:"id_transport"`
	LiquidationBatchID int64               `json:"liquidation_batch_id"`
	TransportName      string              `json:"transport_name"`
	Subtotal           float64             `json:"subtotal"`
	Currency           string              `json:"currency"`
	Total              float64             `json:"total"`
	Status             string              `json:"status"`
	LiquidationDate    string              `json:"liquidation_date"`
	Details            []LiquidationDetail `json:"details"`
}

// LiquidationDetail is one per-route line within a liquidation
type LiquidationDetail struct {
	RouteName          string  `json:"route_name"`
	AppliedAmount      float64 `json:"applied_amount"`
	CalculationDetails string  `json:"calculation_details"`
}
