package api

import (
	"net/http"

	_ "github.com/itsatony/w4b_v3/server/telemetry/docs"
	"github.com/swaggo/swag"
	nuts "github.com/vaudience/go-nuts"
)

// serveSwaggerDoc serves the OpenAPI document registered by the docs package
func serveSwaggerDoc(w http.ResponseWriter, r *http.Request) {
	doc, err := swag.ReadDoc()
	if err != nil {
		nuts.L.Errorf("[API] Failed to read swagger doc: %v", err)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(doc))
}
