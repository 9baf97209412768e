package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// Request types. Field names mirror the persisted collection shape
// (camelCase), which is the system's external interface. Date, time and cep
// are deliberately free-form strings.
type createNotifyRequest struct {
	EventID     string `json:"eventId"     validate:"required"`
	Date        string `json:"date"        validate:"required"`
	Time        string `json:"time"        validate:"required"`
	CEP         string `json:"cep"         validate:"required"`
	Description string `json:"description"`
}

type updateStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=confirmed cancelled"`
}
