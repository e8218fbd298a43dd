package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

// appointmentRequest is one scheduling-form submission. Confirm
// acknowledges the short-appointment soft guard when the server asked for
// confirmation on a previous attempt.
type appointmentRequest struct {
	ClientName  string  `json:"clientName"  validate:"required"`
	ClientEmail string  `json:"clientEmail" validate:"omitempty,email"`
	ClientPhone string  `json:"clientPhone"`
	Date        string  `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	StartTime   string  `json:"startTime"   validate:"required,datetime=15:04"`
	EndTime     string  `json:"endTime"     validate:"required,datetime=15:04"`
	NailTechID  *int64  `json:"nailTechId"`
	ServiceIDs  []int64 `json:"serviceIds"  validate:"required,min=1"`
	Confirm     bool    `json:"confirm"`
}

type completionRequest struct {
	Completed bool `json:"completed"`
}

// --- Response types ---

// Response-only types owned by the transport layer, kept separate from
// ports/domain types so the JSON contract is not coupled to internal
// service changes.

type appointmentResponse struct {
	ID          int64   `json:"id"`
	ClientName  string  `json:"clientName"`
	ClientEmail string  `json:"clientEmail,omitempty"`
	ClientPhone string  `json:"clientPhone,omitempty"`
	Date        string  `json:"date"`
	StartTime   string  `json:"startTime"`
	EndTime     string  `json:"endTime"`
	NailTechID  *int64  `json:"nailTechId"`
	ServiceIDs  []int64 `json:"serviceIds,omitempty"`
	Completed   bool    `json:"completed"`
}

type technicianOptionResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

type serviceOptionResponse struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}

type serviceGroupResponse struct {
	Category string                  `json:"category"`
	Services []serviceOptionResponse `json:"services"`
}

type scheduleOptionsResponse struct {
	Technicians []technicianOptionResponse `json:"technicians"`
	Groups      []serviceGroupResponse     `json:"groups"`
}
