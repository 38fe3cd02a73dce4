package api

// BikeResponse представляет велосипед в ответах GET /bikes и GET /bikes/{id}.
// Поля в camelCase, тип велосипеда передается строкой.
type BikeResponse struct {
	LastMaintenanceDate *string `json:"lastMaintenanceDate,omitempty"`
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	BikeType            string  `json:"bikeType"`
	CreationDate        string  `json:"creationDate"`
	BatteryLevel        int     `json:"batteryLevel"`
	Meters              int     `json:"meters"`
	InMaintenance       bool    `json:"inMaintenance"`
	IsActive            bool    `json:"isActive"`
	IsDeleted           bool    `json:"isDeleted"`
	IsRented            bool    `json:"isRented"`
}

// StatusInfo информация о версии сервера
type StatusInfo struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Update  string `json:"update"`
	Name    string `json:"name"`
}

// StatusResponse ответ GET /status
type StatusResponse struct {
	Status StatusInfo `json:"status"`
}

// ErrorResponse представляет ответ с ошибкой
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
