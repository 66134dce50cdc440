package misc

import (
	"encoding/json"
	"net/http"

	"github.com/2beens/fitcompanion/pkg"
)

// writeJSONStatus answers with a non-200 status and a JSON body.
func writeJSONStatus(w http.ResponseWriter, statusCode int, v any) error {
	w.Header().Set("Content-Type", pkg.ContentType.JSON)
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(v)
}
