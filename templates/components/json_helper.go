package components

import (
	"encoding/json"

	"legal_ai_site/logger"
)

// JSON marshals an object to a JSON string, returning "{}" on error
func JSON(v interface{}) string {
	b, err := json.Marshal(v)
	if err != nil {
		logger.WithError(err).Error("failed to marshal JSON for template")
		return "{}"
	}
	return string(b)
}
