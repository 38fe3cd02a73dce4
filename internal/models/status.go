package models

// ServerStatus информация о версии удаленного сервера
type ServerStatus struct {
	Version string `json:"version"`
	Build   string `json:"build"`
	Update  string `json:"update"`
	Name    string `json:"name"`
}

// ErrorStatus возвращает статус-заглушку, который подставляется при недоступности сервера
func ErrorStatus() ServerStatus {
	return ServerStatus{
		Version: "0.0",
		Build:   "0",
		Update:  "",
		Name:    "error",
	}
}

// IsError сообщает, является ли статус заглушкой ошибки
func (s ServerStatus) IsError() bool {
	return s == ErrorStatus()
}
