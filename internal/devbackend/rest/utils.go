package rest

import (
	"aimlink-client/internal/contracts"
	"encoding/json"
	"net/http"
)

// WriteJSONError отправляет ошибку в формате {"detail": "..."}.
func WriteJSONError(w http.ResponseWriter, statusCode int, detail string) {
	RespondWithJSON(w, statusCode, map[string]string{"detail": detail})
}

type validationItem struct {
	Msg string `json:"msg"`
}

// writeValidationError - 422 со списком ошибок, как у FastAPI.
func writeValidationError(w http.ResponseWriter, err error) {
	RespondWithJSON(w, http.StatusUnprocessableEntity, map[string][]validationItem{
		"detail": {{Msg: err.Error()}},
	})
}

// RespondWithJSON отправляет JSON-ответ
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	w.Write(response)
}

// validateBody прогоняет нормализованное тело через ту же схему, что и клиент.
func validateBody(schemaKey string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return err
	}
	return contracts.Validate(schemaKey, data)
}
