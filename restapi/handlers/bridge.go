package handlers

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/gamebridge-labs/gamebridge/service"
	"github.com/gamebridge-labs/gamebridge/util"
)

type resourceTypePayload struct {
	ResourceID    string `json:"resource_id"`
	Created       bool   `json:"created"`
	Active        bool   `json:"active"`
	AmountPerUnit string `json:"amount_per_unit,omitempty"`
}

func HandleGetResourceType(w http.ResponseWriter, r *http.Request) {
	resourceID, err := util.ParseResourceID(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	rt, err := service.QuerySvc.GetResourceType(resourceID)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	payload := resourceTypePayload{
		ResourceID: resourceID.Hex(),
		Created:    rt.Created,
		Active:     rt.Active,
	}
	if rt.Created {
		payload.AmountPerUnit = rt.AmountPerUnit.String()
	}
	writeJSON(w, http.StatusOK, &response{Code: 0, Message: "ok", Data: payload})
}

type parcelPayload struct {
	ParcelKey  string `json:"parcel_key"`
	Created    bool   `json:"created"`
	ResourceID string `json:"resource_id,omitempty"`
	Units      string `json:"units,omitempty"`
}

func HandleGetParcel(w http.ResponseWriter, r *http.Request) {
	parcelKey, err := util.ParseParcelKeyHex(mux.Vars(r)["key"])
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	parcel, err := service.QuerySvc.GetParcel(parcelKey)
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	payload := parcelPayload{
		ParcelKey: parcelKey.Hex(),
		Created:   parcel.Created,
	}
	if parcel.Created {
		payload.ResourceID = parcel.ResourceID.Hex()
		payload.Units = parcel.Units.String()
	}
	writeJSON(w, http.StatusOK, &response{Code: 0, Message: "ok", Data: payload})
}

type statusPayload struct {
	Terminated    bool   `json:"terminated"`
	LedgerAddress string `json:"ledger_address"`
	BridgeAddress string `json:"bridge_address"`
}

func HandleGetStatus(w http.ResponseWriter, r *http.Request) {
	status, err := service.QuerySvc.GetBridgeStatus()
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, &response{Code: 0, Message: "ok", Data: statusPayload{
		Terminated:    status.Terminated,
		LedgerAddress: status.LedgerAddress.Hex(),
		BridgeAddress: status.BridgeAddress.Hex(),
	}})
}
