package server

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/thenoetrevino/gallery/internal/imaging"
	"github.com/thenoetrevino/gallery/internal/models"
	"github.com/thenoetrevino/gallery/internal/pipeline"
	itemservice "github.com/thenoetrevino/gallery/internal/services/item"
	"github.com/thenoetrevino/gallery/internal/wizard"
)

// ItemController handles the HTTP requests for items. It depends on the
// item service for list operations and on the fetcher for new images.
type ItemController struct {
	items   itemservice.Service
	fetcher wizard.Fetcher
	metrics *Metrics
}

// NewItemController creates a new ItemController
func NewItemController(items itemservice.Service, fetcher wizard.Fetcher, metrics *Metrics) *ItemController {
	return &ItemController{items: items, fetcher: fetcher, metrics: metrics}
}

// CreateItemRequest is the body of POST /items. Exactly one of Width or URL
// is required. Chip indices default to the first chip.
type CreateItemRequest struct {
	Width      string `json:"width"`
	Height     string `json:"height"`
	URL        string `json:"url"`
	ColorIndex *int   `json:"color_index"`
	LabelIndex *int   `json:"label_index"`
	Label      string `json:"label"`
}

// UpdateItemRequest is the body of PUT /items/:id. Omitted fields are kept.
type UpdateItemRequest struct {
	Label    *string `json:"label"`
	Color    *string `json:"color"`
	ImageURL *string `json:"image_url"`
}

// MoveItemRequest is the body of POST /items/move
type MoveItemRequest struct {
	From  *int   `json:"from" binding:"required"`
	To    *int   `json:"to" binding:"required"`
	Query string `json:"query"`
	Sort  bool   `json:"sort"`
}

// List is the handler for GET /items?q=&sort=label
func (c *ItemController) List(ctx *gin.Context) {
	items, err := c.items.List(ctx.Request.Context(), listRequest(ctx))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

// Get is the handler for GET /items/:id
func (c *ItemController) Get(ctx *gin.Context) {
	it, err := c.items.Get(ctx.Request.Context(), ctx.Param("id"))
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, it)
}

// Create is the handler for POST /items. It fetches the image, computes its
// chips and adds an item built from the chosen ones.
func (c *ItemController) Create(ctx *gin.Context) {
	var req CreateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}
	placeholder := req.Width != "" || req.Height != ""
	if placeholder == (req.URL != "") {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "exactly one of width/height or url is required"})
		return
	}

	var d *wizard.Dialog
	if req.URL != "" {
		d = wizard.NewFromURL(c.fetcher, req.URL)
	} else {
		d = wizard.NewAdd(c.fetcher)
		if err := d.SubmitDimensions(req.Width, req.Height); err != nil {
			respondError(ctx, err)
			return
		}
	}

	picked, err := c.runDialog(ctx.Request.Context(), d, indexOrDefault(req.ColorIndex), indexOrDefault(req.LabelIndex), req.Label)
	if err != nil {
		respondError(ctx, err)
		return
	}

	created, err := c.items.Add(ctx.Request.Context(), itemservice.CreateItemRequest{
		ImageURL: picked.ImageURL,
		Color:    picked.Color,
		Label:    picked.Label,
	})
	if err != nil {
		respondError(ctx, err)
		return
	}
	c.metrics.IncItemsAdded()
	ctx.JSON(http.StatusCreated, created)
}

func (c *ItemController) runDialog(ctx context.Context, d *wizard.Dialog, colorIndex, labelIndex int, custom string) (*models.Item, error) {
	done := c.metrics.fetchStarted()
	defer done()

	// The request context cancels the fetch when the client goes away
	if err := d.Run(ctx); err != nil {
		c.metrics.IncFetchFailures()
		return nil, err
	}
	return d.Choose(colorIndex, labelIndex, custom)
}

// Update is the handler for PUT /items/:id
func (c *ItemController) Update(ctx *gin.Context) {
	var req UpdateItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	update := itemservice.UpdateItemRequest{
		ID:       ctx.Param("id"),
		Label:    req.Label,
		ImageURL: req.ImageURL,
	}
	if req.Color != nil {
		col, err := models.ParseColor(*req.Color)
		if err != nil {
			respondError(ctx, err)
			return
		}
		update.Color = &col
	}

	updated, err := c.items.Update(ctx.Request.Context(), update)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, updated)
}

// Delete is the handler for DELETE /items/:id
func (c *ItemController) Delete(ctx *gin.Context) {
	if err := c.items.Delete(ctx.Request.Context(), ctx.Param("id")); err != nil {
		respondError(ctx, err)
		return
	}
	c.metrics.IncItemsDeleted()
	ctx.Status(http.StatusNoContent)
}

// Move is the handler for POST /items/move
func (c *ItemController) Move(ctx *gin.Context) {
	var req MoveItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body: " + err.Error()})
		return
	}

	view := itemservice.ListRequest{Query: req.Query, Sort: req.Sort}
	if err := c.items.Move(ctx.Request.Context(), itemservice.MoveRequest{
		ListRequest: view,
		From:        *req.From,
		To:          *req.To,
	}); err != nil {
		respondError(ctx, err)
		return
	}

	items, err := c.items.List(ctx.Request.Context(), view)
	if err != nil {
		respondError(ctx, err)
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"items": items})
}

// Card is the handler for GET /items/:id/card.png
func (c *ItemController) Card(ctx *gin.Context) {
	id := ctx.Param("id")
	if _, err := c.items.Get(ctx.Request.Context(), id); err != nil {
		respondError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "image/png")
	if err := c.items.Share(ctx.Request.Context(), id, ctx.Writer); err != nil {
		if !ctx.Writer.Written() {
			ctx.Header("Content-Type", "application/json; charset=utf-8")
			respondError(ctx, err)
			return
		}
		_ = ctx.Error(err)
	}
}

func listRequest(ctx *gin.Context) itemservice.ListRequest {
	return itemservice.ListRequest{
		Query: ctx.Query("q"),
		Sort:  ctx.Query("sort") == "label",
	}
}

func indexOrDefault(i *int) int {
	if i == nil {
		return -1
	}
	return *i
}

// respondError writes err with the status its kind maps to
func respondError(ctx *gin.Context, err error) {
	ctx.JSON(statusFor(err), gin.H{"error": err.Error()})
}

func statusFor(err error) int {
	var fieldErr *models.FieldError
	var fetchErr *pipeline.FetchError
	switch {
	case errors.Is(err, models.ErrItemNotFound):
		return http.StatusNotFound
	case errors.As(err, &fieldErr),
		errors.Is(err, models.ErrEmptyLabel),
		errors.Is(err, models.ErrInvalidColor),
		errors.Is(err, models.ErrInvalidPosition),
		errors.Is(err, itemservice.ErrLabelTooLong),
		errors.Is(err, itemservice.ErrInvalidImageURL),
		errors.Is(err, itemservice.ErrInvalidItemID),
		errors.Is(err, wizard.ErrIncompleteSelection),
		errors.Is(err, wizard.ErrInvalidChip):
		return http.StatusUnprocessableEntity
	case errors.As(err, &fetchErr):
		if errors.Is(err, imaging.ErrMalformedURL) {
			return http.StatusBadRequest
		}
		return http.StatusBadGateway
	case errors.Is(err, context.Canceled):
		return 499
	default:
		return http.StatusInternalServerError
	}
}
