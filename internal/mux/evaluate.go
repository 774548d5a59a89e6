package mux

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"handreader/pkg/deck"
	"handreader/pkg/handanalyzer"
	"handreader/pkg/playerhand"
)

// ErrEmptyBatch is returned when a batch request has no hands
var ErrEmptyBatch = errors.New("batch has no hands")

type evaluateRequest struct {
	Hole      deck.Hand `json:"hole"`
	Community deck.Hand `json:"community"`
}

type evaluateResponse struct {
	ID            uuid.UUID                   `json:"id"`
	Street        playerhand.Street           `json:"street"`
	Hand          handanalyzer.Hand           `json:"hand"`
	Cards         deck.Hand                   `json:"cards"`
	Strength      int                         `json:"strength"`
	PossibleHands []handanalyzer.PossibleHand `json:"possibleHands"`
}

type batchRequest struct {
	Hands []evaluateRequest `json:"hands"`
}

type batchResponse struct {
	ID      uuid.UUID           `json:"id"`
	Results []*evaluateResponse `json:"results"`
}

// evaluate builds the player's hand and reads it
// Every error returned is caused by the request
func evaluate(req evaluateRequest) (*evaluateResponse, error) {
	ph, err := playerhand.New(req.Hole, req.Community)
	if err != nil {
		return nil, err
	}

	best := ph.BestHand()
	resp := &evaluateResponse{
		ID:            uuid.New(),
		Street:        ph.Street(),
		Hand:          best.Hand,
		Cards:         best.Cards,
		Strength:      best.Strength(),
		PossibleHands: ph.PossibleHands(),
	}

	logrus.WithFields(logrus.Fields{
		"id":     resp.ID,
		"street": resp.Street,
		"hand":   resp.Hand,
	}).Debug("evaluated hand")

	return resp, nil
}

// evaluateBatch evaluates every hand in parallel
// The results are in the same order as the request.
func (m *Mux) evaluateBatch(ctx context.Context, req batchRequest) (*batchResponse, error) {
	if len(req.Hands) == 0 {
		return nil, ErrEmptyBatch
	}

	if len(req.Hands) > m.config.maxBatchSize {
		return nil, fmt.Errorf("batch cannot have more than %d hands", m.config.maxBatchSize)
	}

	results := make([]*evaluateResponse, len(req.Hands))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, hand := range req.Hands {
		i, hand := i, hand
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			resp, err := evaluate(hand)
			if err != nil {
				return fmt.Errorf("hand %d: %w", i, err)
			}

			results[i] = resp
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &batchResponse{
		ID:      uuid.New(),
		Results: results,
	}, nil
}

func (m *Mux) postEvaluate() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evaluateRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		resp, err := evaluate(req)
		if err != nil {
			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

func (m *Mux) postEvaluateBatch() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req batchRequest
		if !decodeRequest(w, r, &req) {
			return
		}

		resp, err := m.evaluateBatch(r.Context(), req)
		if err != nil {
			if errors.Is(err, context.Canceled) {
				writeJSONError(w, http.StatusServiceUnavailable, err)
				return
			}

			writeJSONError(w, http.StatusBadRequest, err)
			return
		}

		logrus.WithField("id", resp.ID).WithField("hands", len(resp.Results)).Debug("evaluated batch")
		writeJSON(w, http.StatusOK, resp)
	}
}
