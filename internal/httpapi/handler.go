// Package httpapi serves the channel lookup over HTTP.
package httpapi

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"bell-lookup/internal/catalog"
	"bell-lookup/internal/channel"
	"bell-lookup/internal/infra/logx"
	"bell-lookup/internal/supabase"
)

// Store is the read side of the catalog.
type Store interface {
	Snapshot() (catalog.Snapshot, error)
	Get(id int) (channel.Channel, bool, error)
}

// Handler serves lookups from a Store.
type Handler struct {
	store   Store
	metrics *supabase.Metrics
}

// NewHandler returns a handler; metrics may be nil when the source is not REST.
func NewHandler(store Store, metrics *supabase.Metrics) *Handler {
	return &Handler{store: store, metrics: metrics}
}

type channelsResponse struct {
	Loading    bool              `json:"loading"`
	Count      int               `json:"count"`
	Summary    string            `json:"summary"`
	Categories []string          `json:"categories"`
	Channels   []channel.Channel `json:"channels"`
}

func (h *Handler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Channels filters the current list by q, bundle and category.
func (h *Handler) Channels(c *gin.Context) {
	bundle, err := channel.ParseBundle(c.Query("bundle"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, err.Error())
		return
	}
	cr := channel.Criteria{
		Query:    c.Query("q"),
		Bundle:   bundle,
		Category: c.DefaultQuery("category", channel.All),
	}
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	matches := channel.Filter(snap.Channels, cr)
	c.JSON(http.StatusOK, channelsResponse{
		Loading:    snap.Loading,
		Count:      len(matches),
		Summary:    channel.Summary(len(matches), snap.Loading),
		Categories: channel.Categories(snap.Channels),
		Channels:   matches,
	})
}

func (h *Handler) Channel(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		RespondError(c, http.StatusBadRequest, "invalid id")
		return
	}
	ch, found, err := h.store.Get(id)
	if err != nil {
		logx.Errorf("catalog get %d: %v", id, err)
		RespondError(c, http.StatusInternalServerError, "catalog error")
		return
	}
	if !found {
		RespondError(c, http.StatusNotFound, "channel not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"channel": ch, "card": channel.BuildCard(ch)})
}

func (h *Handler) Categories(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{"categories": channel.Categories(snap.Channels)})
}

type bundleOption struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

func (h *Handler) Bundles(c *gin.Context) {
	out := make([]bundleOption, 0, len(channel.Bundles))
	for _, b := range channel.Bundles {
		out = append(out, bundleOption{Value: string(b), Label: b.Label()})
	}
	c.JSON(http.StatusOK, gin.H{"bundles": out})
}

func (h *Handler) Metrics(c *gin.Context) {
	snap, ok := h.snapshot(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"channels":  len(snap.Channels),
		"loading":   snap.Loading,
		"loadedAt":  snap.LoadedAt,
		"transport": h.metrics.Snapshot(),
	})
}

func (h *Handler) snapshot(c *gin.Context) (catalog.Snapshot, bool) {
	snap, err := h.store.Snapshot()
	if err != nil {
		logx.Errorf("catalog snapshot: %v", err)
		RespondError(c, http.StatusInternalServerError, "catalog error")
		return catalog.Snapshot{}, false
	}
	return snap, true
}
