package models

// AlertsResponse is the shape returned by GET /alerts/active/area/{state}
type AlertsResponse struct {
	Features []AlertFeature `json:"features"`
}

// AlertFeature wraps a single active alert
type AlertFeature struct {
	Properties AlertProperties `json:"properties"`
}

// AlertProperties holds the subset of alert fields the tools read
type AlertProperties struct {
	Event       string `json:"event"`
	AreaDesc    string `json:"areaDesc"`
	Severity    string `json:"severity"`
	Description string `json:"description"`
	Instruction string `json:"instruction"`
}

// PointsResponse is the locator document returned by GET /points/{lat},{lon}.
// Its only purpose is to carry the URL of the forecast resource.
type PointsResponse struct {
	Properties PointsProperties `json:"properties"`
}

type PointsProperties struct {
	Forecast string `json:"forecast"`
}

// ForecastResponse is the shape returned by the forecast URL
type ForecastResponse struct {
	Properties ForecastProperties `json:"properties"`
}

type ForecastProperties struct {
	Periods []ForecastPeriod `json:"periods"`
}

// ForecastPeriod is one forecast window (e.g. "Tonight", "Friday")
type ForecastPeriod struct {
	Name             string `json:"name"`
	Temperature      int    `json:"temperature"`
	TemperatureUnit  string `json:"temperatureUnit"`
	WindSpeed        string `json:"windSpeed"`
	WindDirection    string `json:"windDirection"`
	DetailedForecast string `json:"detailedForecast"`
}
