package server

import (
	"encoding/json"
	"net/http"

	apperr "github.com/graphtier/graphtier/pkg/errors"
	"github.com/graphtier/graphtier/pkg/graph"
	"github.com/graphtier/graphtier/pkg/layout"
)

// layoutRequest is the body for the hierarchical and grid layout endpoints.
// Options fields left at zero fall back to the server's configured defaults.
type layoutRequest struct {
	Nodes   []graph.Node   `json:"nodes"`
	Edges   []graph.Edge   `json:"edges"`
	Options layout.Options `json:"options"`
}

// tieredRequest is the body for the tiered column endpoint.
type tieredRequest struct {
	Nodes   []graph.Node         `json:"nodes"`
	Edges   []graph.Edge         `json:"edges"`
	Options layout.TieredOptions `json:"options"`
}

// errorResponse is the JSON error envelope.
type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleLayout(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}

	result := s.engine.ComputeLayout(req.Nodes, req.Edges, s.mergeOptions(req.Options))
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGridLayout(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeLayoutRequest(w, r)
	if !ok {
		return
	}

	writeJSON(w, http.StatusOK, s.engine.ComputeGridLayout(req.Nodes))
}

func (s *Server) handleTieredLayout(w http.ResponseWriter, r *http.Request) {
	var req tieredRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "malformed request body"))
		return
	}
	if err := validateNodes(req.Nodes); err != nil {
		writeError(w, err)
		return
	}

	cells := layout.TieredColumns(req.Nodes, req.Edges, req.Options)
	writeJSON(w, http.StatusOK, cells)
}

func (s *Server) handleClearCache(w http.ResponseWriter, r *http.Request) {
	s.engine.ClearCache()
	w.WriteHeader(http.StatusNoContent)
}

// decodeLayoutRequest parses and validates a layout request body. On failure
// it writes the error response and returns ok=false.
func (s *Server) decodeLayoutRequest(w http.ResponseWriter, r *http.Request) (layoutRequest, bool) {
	var req layoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, apperr.Wrap(apperr.ErrCodeInvalidFormat, err, "malformed request body"))
		return layoutRequest{}, false
	}
	if err := validateNodes(req.Nodes); err != nil {
		writeError(w, err)
		return layoutRequest{}, false
	}
	if req.Options.Direction != "" && !req.Options.Direction.Valid() {
		writeError(w, apperr.New(apperr.ErrCodeInvalidDirection, "invalid direction %q", req.Options.Direction))
		return layoutRequest{}, false
	}
	return req, true
}

// validateNodes rejects graphs the engine would silently mangle: empty or
// duplicate node IDs.
func validateNodes(nodes []graph.Node) error {
	seen := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if n.ID == "" {
			return apperr.New(apperr.ErrCodeInvalidGraph, "node with empty ID")
		}
		if seen[n.ID] {
			return apperr.New(apperr.ErrCodeInvalidGraph, "duplicate node ID %q", n.ID)
		}
		seen[n.ID] = true
	}
	return nil
}

// mergeOptions overlays request options on the server defaults. Zero-valued
// request fields keep the configured values.
func (s *Server) mergeOptions(req layout.Options) layout.Options {
	opts := s.cfg.Layout
	if req.Direction != "" {
		opts.Direction = req.Direction
	}
	if req.NodeSeparation > 0 {
		opts.NodeSeparation = req.NodeSeparation
	}
	if req.RankSeparation > 0 {
		opts.RankSeparation = req.RankSeparation
	}
	if req.EdgeSeparation > 0 {
		opts.EdgeSeparation = req.EdgeSeparation
	}
	if req.NodeWidth > 0 {
		opts.NodeWidth = req.NodeWidth
	}
	if req.NodeHeight > 0 {
		opts.NodeHeight = req.NodeHeight
	}
	return opts
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError maps structured error codes to HTTP statuses and writes the
// JSON error envelope.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	switch apperr.GetCode(err) {
	case apperr.ErrCodeInvalidInput, apperr.ErrCodeInvalidGraph, apperr.ErrCodeInvalidOptions,
		apperr.ErrCodeInvalidDirection, apperr.ErrCodeInvalidFormat:
		status = http.StatusBadRequest
	case apperr.ErrCodeNotFound, apperr.ErrCodeFileNotFound:
		status = http.StatusNotFound
	case apperr.ErrCodeUnsupported:
		status = http.StatusUnprocessableEntity
	}

	writeJSON(w, status, errorResponse{
		Code:    string(apperr.GetCode(err)),
		Message: apperr.UserMessage(err),
	})
}
