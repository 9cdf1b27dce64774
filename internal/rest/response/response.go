package response

// Envelope is the body shape every endpoint answers with. Status is
// "success" for 2xx, "fail" for client faults and "error" for server faults.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

func Success(data any) Envelope {
	return Envelope{Status: "success", Data: data}
}

func SuccessMessage(message string) Envelope {
	return Envelope{Status: "success", Message: message}
}

func Fail(message string) Envelope {
	return Envelope{Status: "fail", Message: message}
}

func Error(message string) Envelope {
	return Envelope{Status: "error", Message: message}
}
