package transportcatalogue

import (
	"encoding/json"
	"net/http"
)

type healthResponse struct {
	Status string `json:"status"`
	Stops  int    `json:"stops"`
	Buses  int    `json:"buses"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	resp := healthResponse{
		Status: "ok",
		Stops:  s.engine.Cat.Stops().Len(),
		Buses:  s.engine.Cat.Buses().Len(),
	}
	_ = json.NewEncoder(w).Encode(resp)
}
