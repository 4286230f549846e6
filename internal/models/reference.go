package models

// Shelter - справочная запись об убежище, только для чтения
type Shelter struct {
	ID       int        `json:"id"`
	Name     string     `json:"name"`
	Coords   [2]float64 `json:"coords"`
	Capacity int        `json:"capacity"`
	Current  int        `json:"current"`
	Supplies []string   `json:"supplies"`
}

// Resource - справочная запись о запасах ресурса
type Resource struct {
	Name        string `json:"name"`
	Total       int    `json:"total"`
	Distributed int    `json:"distributed"`
	Location    string `json:"location"`
}

// Volunteer - дескриптор канала волонтера для чата
type Volunteer struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Status string `json:"status"`
}

// Weather - рандомизированный снимок погоды для панели дашборда
type Weather struct {
	Temperature int      `json:"temperature"`
	Humidity    int      `json:"humidity"`
	WindSpeed   int      `json:"windSpeed"`
	Condition   string   `json:"condition"`
	Alerts      []string `json:"alerts"`
}
