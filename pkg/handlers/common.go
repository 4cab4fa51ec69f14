package handlers

import (
	"encoding/json"
	"io/ioutil"
	"net/http"

	"go.uber.org/zap"
)

// Every endpoint answers HTTP 200 with a JSON envelope: {"success":true,
// <key>:<payload>} or {"success":false,"error":<msg>}. Failures are data,
// not status codes.

func WriteSuccess(w http.ResponseWriter, key string, payload interface{}) {
	resp := map[string]interface{}{"success": true}
	if key != "" {
		resp[key] = payload
	}
	writeJSON(w, resp)
}

func WriteError(w http.ResponseWriter, msg string) {
	writeJSON(w, map[string]interface{}{"success": false, "error": msg})
}

func writeJSON(w http.ResponseWriter, resp map[string]interface{}) {
	body, err := json.Marshal(resp)
	if err != nil {
		body = []byte(`{"success":false,"error":"Internal server error"}`)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Write(body)
}

// internalError reports an unexpected fault with its underlying message in
// the envelope.
func internalError(w http.ResponseWriter, logger *zap.SugaredLogger, err error) {
	logger.Error(err.Error())
	WriteError(w, err.Error())
}

func decodeBody(r *http.Request, dst interface{}) error {
	body, err := ioutil.ReadAll(r.Body)
	if err != nil {
		return err
	}

	return json.Unmarshal(body, dst)
}
