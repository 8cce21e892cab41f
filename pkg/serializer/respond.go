package serializer

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
)

// RespondJSON writes the provided data as a JSON response with the given
// status code. Encoding failures are reported to stderr since the header has
// already been written by then.
func RespondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if data == nil {
		return
	}
	if err := json.NewEncoder(w).Encode(data); err != nil {
		fmt.Fprintf(os.Stderr, "failed to encode JSON response: %v\n", err)
	}
}
