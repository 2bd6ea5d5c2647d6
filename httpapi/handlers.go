package httpapi

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/katalvlaran/navedge/awareness"
	"github.com/katalvlaran/navedge/geom"
	"github.com/katalvlaran/navedge/schema"
)

// rebuildRequest is the body of POST /v1/rebuild.
type rebuildRequest struct {
	Origin geom.Vec3 `json:"origin"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleSchema(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/schema+json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(schema.Raw())
}

func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		writeError(w, http.StatusRequestEntityTooLarge, err)
		return
	}
	doc, err := s.validator.Decode(body)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	segs := doc.Segments
	if doc.Radius > 0 {
		segs, err = awareness.StaticSource{Segments: doc.Segments}.FindEdges(r.Context(), doc.Origin, doc.Radius)
		if err != nil {
			writeError(w, http.StatusServiceUnavailable, err)
			return
		}
	}
	snap := s.analyzer.Analyze(awareness.Input{
		Origin:   doc.Origin,
		Radius:   doc.Radius,
		Segments: segs,
		Locator:  doc.Locator(),
	})
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleRebuild(w http.ResponseWriter, r *http.Request) {
	var req rebuildRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	snap, err := s.analyzer.Rebuild(r.Context(), req.Origin)
	switch {
	case errors.Is(err, awareness.ErrNilSource):
		writeError(w, http.StatusNotImplemented, err)
	case errors.Is(err, awareness.ErrNoBoundaryData):
		writeError(w, http.StatusUnprocessableEntity, err)
	case err != nil:
		log.Printf("httpapi: rebuild at %v: %v", req.Origin, err)
		writeError(w, http.StatusBadGateway, err)
	default:
		writeJSON(w, http.StatusOK, snap)
	}
}

func (s *Server) handleLatest(w http.ResponseWriter, r *http.Request) {
	snap := s.analyzer.Latest()
	if snap == nil {
		writeError(w, http.StatusNotFound, errors.New("no snapshot published yet"))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func (s *Server) handleSnapshot(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	snap := s.analyzer.Latest()
	if snap == nil || snap.ID.String() != id {
		writeError(w, http.StatusNotFound, errors.New("snapshot "+id+" is not the latest"))
		return
	}
	writeJSON(w, http.StatusOK, snap)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("httpapi: encode response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
