package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/memid/pkg/clientip"
	"github.com/dmitrymomot/memid/pkg/logger"
	"github.com/dmitrymomot/memid/pkg/ratelimiter"
	"github.com/dmitrymomot/memid/pkg/wordlist"
)

type idsResponse struct {
	IDs []string `json:"ids"`
}

type listSummary struct {
	Name string `json:"name"`
	Size int    `json:"size"`
}

type listsResponse struct {
	Lists []listSummary `json:"lists"`
}

type wordsResponse struct {
	Name  string   `json:"name"`
	Words []string `json:"words"`
}

// generateIDs serves GET /v1/ids?count=N. The whole request fails if any
// identifier cannot be produced; no partial list is returned.
func (a *API) generateIDs(w http.ResponseWriter, r *http.Request) {
	count, err := a.parseCount(r.URL.Query().Get("count"))
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if !a.allow(w, r, count) {
		return
	}

	ids := make([]string, 0, count)
	for range count {
		id, err := a.gen.GenerateAsync(r.Context(), a.validate).Await()
		if err != nil {
			a.fail(w, r, err)
			return
		}
		ids = append(ids, id)
	}

	a.log.DebugContext(r.Context(), "identifiers issued", logger.Count(len(ids)))
	respondJSON(w, http.StatusOK, idsResponse{IDs: ids})
}

func (a *API) listCatalog(w http.ResponseWriter, r *http.Request) {
	resp := listsResponse{Lists: make([]listSummary, 0, len(wordlist.All()))}
	for _, l := range wordlist.All() {
		words, err := a.provider.Words(l)
		if err != nil {
			// a custom provider may carry only some lists
			if errors.Is(err, wordlist.ErrResourceNotFound) {
				continue
			}
			a.fail(w, r, err)
			return
		}
		resp.Lists = append(resp.Lists, listSummary{Name: l.String(), Size: len(words)})
	}
	respondJSON(w, http.StatusOK, resp)
}

func (a *API) listWords(w http.ResponseWriter, r *http.Request) {
	l, err := wordlist.Parse(chi.URLParam(r, "name"))
	if err != nil {
		respondError(w, http.StatusNotFound, err.Error())
		return
	}
	words, err := a.provider.Words(l)
	if err != nil {
		if errors.Is(err, wordlist.ErrResourceNotFound) {
			respondError(w, http.StatusNotFound, err.Error())
			return
		}
		a.fail(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, wordsResponse{Name: l.String(), Words: words})
}

// allow charges count tokens to the client. A failing limiter store lets the
// request through so generation keeps working without it.
func (a *API) allow(w http.ResponseWriter, r *http.Request, count int) bool {
	if a.limiter == nil {
		return true
	}
	ctx := r.Context()
	res, err := a.limiter.AllowN(ctx, clientip.FromContext(ctx), count)
	if err != nil {
		a.log.WarnContext(ctx, "rate limiter unavailable", logger.Error(err))
		return true
	}
	ratelimiter.SetHeaders(w.Header(), res)
	if !res.Allowed() {
		a.log.InfoContext(ctx, "rate limited",
			slog.String("client_ip", clientip.FromContext(ctx)),
			logger.Count(count),
		)
		respondError(w, http.StatusTooManyRequests, "too many requests")
		return false
	}
	return true
}

func (a *API) parseCount(raw string) (int, error) {
	if raw == "" {
		return 1, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 || n > a.maxCount {
		return 0, errors.Join(ErrInvalidCount, errors.New("count must be between 1 and "+strconv.Itoa(a.maxCount)))
	}
	return n, nil
}

// alwaysReady keeps /readyz a readiness probe even with no dependencies.
func alwaysReady(context.Context) error { return nil }
