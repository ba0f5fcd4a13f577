package handler

import (
	"log"
	"time"

	"github.com/mailru/easyjson"
	"github.com/valyala/fasthttp"

	"payment-router/model"
	"payment-router/repository"
)

type Handler struct {
	queue      *repository.Queue
	repository *repository.Repository
}

func NewHandler(queue *repository.Queue, r *repository.Repository) *Handler {
	return &Handler{queue: queue, repository: r}
}

// PostPayments enqueues the submission and acknowledges immediately.
// Processing outcome is never reported here; it is absorbed
// asynchronously by the dispatch workers.
func (h *Handler) PostPayments(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	var req model.PaymentRequest
	if err := easyjson.Unmarshal(ctx.PostBody(), &req); err != nil {
		ctx.Error("Bad Request", fasthttp.StatusBadRequest)
		return
	}
	if req.CorrelationID == "" || req.Amount <= 0 {
		ctx.Error("Bad Request", fasthttp.StatusBadRequest)
		return
	}

	routable := model.NewRoutableRequest(req, time.Now())
	if err := h.queue.Enqueue(ctx, routable); err != nil {
		log.Printf("error enqueuing payment %s: %v", req.CorrelationID, err)
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusAccepted)
}

func (h *Handler) GetSummary(ctx *fasthttp.RequestCtx) {
	if !ctx.IsGet() {
		ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
		return
	}

	from, ok := parseBound(ctx, ctx.QueryArgs().Peek("from"))
	if !ok {
		return
	}
	to, ok := parseBound(ctx, ctx.QueryArgs().Peek("to"))
	if !ok {
		return
	}

	summary, err := h.repository.GetSummary(ctx, from, to)
	if err != nil {
		log.Printf("error building summary: %v", err)
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.Response.Header.Set("Content-Type", "application/json")
	if _, err := easyjson.MarshalToWriter(summary, ctx); err != nil {
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
	}
}

func (h *Handler) PurgePayments(ctx *fasthttp.RequestCtx) {
	if !ctx.IsPost() {
		ctx.Error("Method Not Allowed", fasthttp.StatusMethodNotAllowed)
		return
	}
	if err := h.repository.Purge(ctx); err != nil {
		log.Printf("error purging payments: %v", err)
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}
	if err := h.queue.Purge(ctx); err != nil {
		log.Printf("error purging queue: %v", err)
		ctx.Error("Internal Server Error", fasthttp.StatusInternalServerError)
		return
	}
	ctx.SetStatusCode(fasthttp.StatusAccepted)
}

// parseBound accepts an absent bound as unfiltered and rejects a
// malformed one with a client error.
func parseBound(ctx *fasthttp.RequestCtx, raw []byte) (time.Time, bool) {
	if len(raw) == 0 {
		return time.Time{}, true
	}
	t, err := time.Parse(time.RFC3339, string(raw))
	if err != nil {
		ctx.Error("Bad Request", fasthttp.StatusBadRequest)
		return time.Time{}, false
	}
	return t, true
}
