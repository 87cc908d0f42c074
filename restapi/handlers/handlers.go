package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamebridge-labs/gamebridge/bridge"
	"github.com/gamebridge-labs/gamebridge/logging"
	"github.com/gamebridge-labs/gamebridge/service"
)

// Routes builds the read-only bridge API.
func Routes() *mux.Router {
	router := mux.NewRouter()
	router.Path("/v1/resource/{id}").Methods(http.MethodGet).HandlerFunc(HandleGetResourceType)
	router.Path("/v1/parcel/{key}").Methods(http.MethodGet).HandlerFunc(HandleGetParcel)
	router.Path("/v1/status").Methods(http.MethodGet).HandlerFunc(HandleGetStatus)
	return router
}

type response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, payload *response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		logging.Logger.Errorf("failed to write response, err=%s", err.Error())
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	code := int64(status)
	message := err.Error()
	if bridgeErr, ok := err.(bridge.Err); ok {
		code = bridgeErr.Code
		message = bridgeErr.Message
		status = service.HTTPStatus(bridgeErr)
	}
	writeJSON(w, status, &response{Code: code, Message: message})
}
