package handler

import (
	"encoding/json"
	"net/http"

	"github.com/pchalerm/dnarisk/pkg/model"
)

// MarkerTableResponse lists the loaded reference table.
type MarkerTableResponse struct {
	Status  string               `json:"status"`
	Markers []model.MarkerRecord `json:"markers"`
}

// MarkerTableAPI handles GET /api/v1/markers.
func (appctx *AppContext) MarkerTableAPI(w http.ResponseWriter, r *http.Request) {

	response := MarkerTableResponse{
		Status:  "ok",
		Markers: appctx.Markers,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}
