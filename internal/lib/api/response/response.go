package response

// ErrResponse is the generic error envelope: {"error": "..."}.
type ErrResponse struct {
	Err string `json:"error"`
}

// FieldErrResponse carries field-level validation failures:
// {"error": {"email": "Please enter a valid email address"}}.
type FieldErrResponse struct {
	Fields map[string]string `json:"error"`
}

func Error(msg string) ErrResponse {
	return ErrResponse{Err: msg}
}

func ValidationError(fields map[string]string) FieldErrResponse {
	return FieldErrResponse{Fields: fields}
}
