package api

import (
	"encoding/json"
	"image/png"
	"net/http"
	"strconv"
	"time"

	"github.com/ccurtis0/fast-marching-method/fieldio"
	"github.com/ccurtis0/fast-marching-method/fmm"
	"github.com/ccurtis0/fast-marching-method/grid"
	"github.com/ccurtis0/fast-marching-method/render"
	"github.com/go-chi/chi/v5"
)

type handlers struct {
	store *Store
}

type seedRequest struct {
	Index    []int     `json:"index"`
	Distance float64   `json:"distance"`
	Normal   []float64 `json:"normal"`
}

type fieldRequest struct {
	Size  []int         `json:"size"`
	Dx    []float64     `json:"dx"`
	Speed float64       `json:"speed"`
	Seeds []seedRequest `json:"seeds"`
}

func (req fieldRequest) toArgs() (grid.Size, []float64, float64, []grid.Idx, []float64, [][]float64) {
	seedIndices := make([]grid.Idx, len(req.Seeds))
	seedDistances := make([]float64, len(req.Seeds))
	seedNormals := make([][]float64, len(req.Seeds))
	for i, s := range req.Seeds {
		seedIndices[i] = grid.Idx(s.Index)
		seedDistances[i] = s.Distance
		seedNormals[i] = s.Normal
	}
	return grid.Size(req.Size), req.Dx, req.Speed, seedIndices, seedDistances, seedNormals
}

type fieldResponse struct {
	ID     string `json:"id"`
	Length int    `json:"length"`
}

// handleUnsignedDistance computes an unsigned distance field and caches it.
func (h *handlers) handleUnsignedDistance(w http.ResponseWriter, r *http.Request) {
	h.compute(w, r, false)
}

// handleSignedDistance computes a signed distance field and caches it.
func (h *handlers) handleSignedDistance(w http.ResponseWriter, r *http.Request) {
	h.compute(w, r, true)
}

func (h *handlers) compute(w http.ResponseWriter, r *http.Request, signed bool) {
	var req fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	size, dx, speed, seedIndices, seedDistances, seedNormals := req.toArgs()

	id, err := newID()
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	hub := h.store.beginCompute(id)

	kind := "unsigned"
	var values []float64
	start := time.Now()
	if signed {
		kind = "signed"
		values, err = fmm.SignedDistance(size, dx, speed, seedIndices, seedDistances, seedNormals, fmm.WithOnFreeze(hub.broadcast))
	} else {
		values, err = fmm.UnsignedDistance(size, dx, speed, seedIndices, seedDistances, seedNormals, fmm.WithOnFreeze(hub.broadcast))
	}
	hub.closeAll()
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	recordFieldComputed(kind, time.Since(start))

	snap := fieldio.NewSnapshot(id, fieldio.Field{Size: size, Dx: dx, Values: values, Signed: signed})
	h.store.finishCompute(id, snap)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(fieldResponse{ID: id, Length: len(values)})
}

// handleGetField returns the raw JSON array of a cached field's values.
func (h *handlers) handleGetField(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, ok := h.store.get(id)
	if !ok {
		http.Error(w, "field not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(snap.Field.Values)
}

// handleGetFieldPNG renders a cached 2-D field to PNG.
func (h *handlers) handleGetFieldPNG(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	snap, ok := h.store.get(id)
	if !ok {
		http.Error(w, "field not found", http.StatusNotFound)
		return
	}
	if len(snap.Field.Size) != 2 {
		http.Error(w, "field is not 2-D", http.StatusBadRequest)
		return
	}

	cellPixels := 8
	if q := r.URL.Query().Get("cellPixels"); q != "" {
		n, err := strconv.Atoi(q)
		if err != nil || n < 1 {
			http.Error(w, "invalid cellPixels", http.StatusBadRequest)
			return
		}
		cellPixels = n
	}

	palette := render.UnsignedPalette(maxAbs(snap.Field.Values))
	if snap.Field.Signed {
		palette = render.SignedPalette(maxAbs(snap.Field.Values))
	}

	img, err := render.RenderField(snap.Field.Size, snap.Field.Values, cellPixels, palette)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "image/png")
	png.Encode(w, img)
}

func maxAbs(values []float64) float64 {
	best := 1.0
	for _, v := range values {
		a := v
		if a < 0 {
			a = -a
		}
		if a > best && a < 1e300 {
			best = a
		}
	}
	return best
}
