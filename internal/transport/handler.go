// Package transport exposes the adapter's HTTP JSON handlers.
package transport

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.uber.org/zap"

	"github.com/fanforge/govledger-adapter/internal/faults"
	"github.com/fanforge/govledger-adapter/internal/model"
	"github.com/fanforge/govledger-adapter/pkg/safe"
)

// Handler serves the recording API.
type Handler struct {
	logger   *zap.Logger
	recorder RecorderService
	health   HealthReporter
	metrics  HandlerMetrics
}

// NewHandler wires the REST surface to the recorder facade.
func NewHandler(recorder RecorderService, health HealthReporter, metrics HandlerMetrics, logger *zap.Logger) (*Handler, error) {
	if recorder == nil {
		return nil, errors.New("recorder is required")
	}
	if health == nil {
		return nil, errors.New("health reporter is required")
	}
	if metrics == nil {
		return nil, errors.New("handler metrics is required")
	}

	return &Handler{
		logger:   logger,
		recorder: recorder,
		health:   health,
		metrics:  metrics,
	}, nil
}

// Router builds the route table.
func (h *Handler) Router() *mux.Router {
	r := mux.NewRouter()
	r.Use(h.instrument)
	r.HandleFunc("/v1/organizations", h.createOrganization).Methods(http.MethodPost)
	r.HandleFunc("/v1/share-types", h.createShareType).Methods(http.MethodPost)
	r.HandleFunc("/v1/share-issuances", h.recordShareIssuance).Methods(http.MethodPost)
	r.HandleFunc("/v1/share-issuances/batch", h.recordShareIssuanceBatch).Methods(http.MethodPost)
	r.HandleFunc("/v1/proposals", h.createProposal).Methods(http.MethodPost)
	r.HandleFunc("/v1/proposals/{id}/status", h.updateProposalStatus).Methods(http.MethodPost)
	r.HandleFunc("/v1/proposals/{id}/finalize", h.finalizeProposal).Methods(http.MethodPost)
	r.HandleFunc("/v1/proposals/{id}/results", h.commitProposalResults).Methods(http.MethodPost)
	r.HandleFunc("/v1/votes", h.recordVote).Methods(http.MethodPost)
	r.HandleFunc("/v1/transactions/{signature}", h.transactionStatus).Methods(http.MethodGet)
	r.HandleFunc("/health", h.checkHealth).Methods(http.MethodGet)
	return r
}

func (h *Handler) instrument(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		started := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r)

		route := r.URL.Path
		if cur := mux.CurrentRoute(r); cur != nil {
			if tpl, err := cur.GetPathTemplate(); err == nil {
				route = tpl
			}
		}
		h.metrics.ObserveRequest(route, r.Method, rec.status, started)
	})
}

type organizationRequest struct {
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
}

type shareTypeRequest struct {
	ShareTypeID    string `json:"share_type_id"`
	OrganizationID string `json:"organization_id"`
	Name           string `json:"name"`
	Symbol         string `json:"symbol"`
	TotalShares    int64  `json:"total_shares"`
}

type shareIssuanceRequest struct {
	IssuanceID     string `json:"issuance_id"`
	ShareTypeID    string `json:"share_type_id"`
	OrganizationID string `json:"organization_id"`
	MemberRef      string `json:"member_ref"`
	Quantity       int64  `json:"quantity"`
}

type batchIssuanceRequest struct {
	Issuances []shareIssuanceRequest `json:"issuances"`
}

type proposalRequest struct {
	ProposalID          string `json:"proposal_id"`
	OrganizationID      string `json:"organization_id"`
	Title               string `json:"title"`
	ContentHash         string `json:"content_hash"`
	StartAt             *int64 `json:"start_at"`
	EndAt               *int64 `json:"end_at"`
	EligibleVotingPower int64  `json:"eligible_voting_power"`
	QuorumBps           *int64 `json:"quorum_bps"`
}

type proposalStatusRequest struct {
	OrganizationID string `json:"organization_id"`
	CurrentStatus  string `json:"current_status"`
	NewStatus      string `json:"new_status"`
}

type finalizeProposalRequest struct {
	OrganizationID string `json:"organization_id"`
	CurrentStatus  string `json:"current_status"`
}

type proposalResultsRequest struct {
	OrganizationID  string `json:"organization_id"`
	CurrentStatus   string `json:"current_status"`
	ResultsHash     string `json:"results_hash"`
	WinningOptionID string `json:"winning_option_id"`
	TotalVotesCast  int64  `json:"total_votes_cast"`
	QuorumMet       bool   `json:"quorum_met"`
}

type voteRequest struct {
	VoteID         string `json:"vote_id"`
	ProposalID     string `json:"proposal_id"`
	OrganizationID string `json:"organization_id"`
	OptionID       string `json:"option_id"`
	VoterRef       string `json:"voter_ref"`
	VotingPower    int64  `json:"voting_power"`
	BallotHash     string `json:"ballot_hash"`
}

type recordResponse struct {
	Signature string `json:"signature"`
	Address   string `json:"address"`
}

type batchItemResponse struct {
	Index     int    `json:"index"`
	Signature string `json:"signature,omitempty"`
	Address   string `json:"address,omitempty"`
	Error     string `json:"error,omitempty"`
}

type batchResponse struct {
	Results []batchItemResponse `json:"results"`
}

type txStatusResponse struct {
	Signature     string  `json:"signature"`
	State         string  `json:"state"`
	Slot          uint64  `json:"slot,omitempty"`
	Confirmations *uint64 `json:"confirmations,omitempty"`
	Error         string  `json:"error,omitempty"`
}

type healthResponse struct {
	Healthy   bool      `json:"healthy"`
	Cluster   string    `json:"cluster"`
	Endpoint  string    `json:"endpoint"`
	Slot      uint64    `json:"slot,omitempty"`
	Version   string    `json:"version,omitempty"`
	KeyLoaded bool      `json:"key_loaded"`
	CheckedAt time.Time `json:"checked_at"`
	LastError string    `json:"last_error,omitempty"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (h *Handler) createOrganization(w http.ResponseWriter, r *http.Request) {
	var req organizationRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.recorder.CreateOrganization(r.Context(), model.OrganizationCreated{
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recordResponse{Signature: result.Signature, Address: result.Address})
}

func (h *Handler) createShareType(w http.ResponseWriter, r *http.Request) {
	var req shareTypeRequest
	if !h.decode(w, r, &req) {
		return
	}

	totalShares, err := safe.Uint64(req.TotalShares)
	if err != nil {
		h.writeError(w, r, faults.NewValidation("total_shares", "%v", err))
		return
	}

	result, err := h.recorder.CreateShareType(r.Context(), model.ShareTypeCreated{
		ShareTypeID:    req.ShareTypeID,
		OrganizationID: req.OrganizationID,
		Name:           req.Name,
		Symbol:         req.Symbol,
		TotalShares:    totalShares,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recordResponse{Signature: result.Signature, Address: result.Address})
}

func (req shareIssuanceRequest) toEvent() (model.ShareIssuanceRecorded, error) {
	quantity, err := safe.Uint64(req.Quantity)
	if err != nil {
		return model.ShareIssuanceRecorded{}, faults.NewValidation("quantity", "%v", err)
	}
	return model.ShareIssuanceRecorded{
		IssuanceID:     req.IssuanceID,
		ShareTypeID:    req.ShareTypeID,
		OrganizationID: req.OrganizationID,
		MemberRef:      req.MemberRef,
		Quantity:       quantity,
	}, nil
}

func (h *Handler) recordShareIssuance(w http.ResponseWriter, r *http.Request) {
	var req shareIssuanceRequest
	if !h.decode(w, r, &req) {
		return
	}

	event, err := req.toEvent()
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	result, err := h.recorder.RecordShareIssuance(r.Context(), event)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recordResponse{Signature: result.Signature, Address: result.Address})
}

func (h *Handler) recordShareIssuanceBatch(w http.ResponseWriter, r *http.Request) {
	var req batchIssuanceRequest
	if !h.decode(w, r, &req) {
		return
	}
	if len(req.Issuances) == 0 {
		h.writeError(w, r, faults.NewValidation("issuances", "must not be empty"))
		return
	}

	events := make([]model.ShareIssuanceRecorded, len(req.Issuances))
	for i, item := range req.Issuances {
		event, err := item.toEvent()
		if err != nil {
			var valErr *faults.ValidationError
			if errors.As(err, &valErr) {
				err = faults.NewValidation(fmt.Sprintf("issuances[%d].%s", i, valErr.Field), "%s", valErr.Reason)
			}
			h.writeError(w, r, err)
			return
		}
		events[i] = event
	}

	results := h.recorder.RecordShareIssuanceBatch(r.Context(), events)
	out := batchResponse{Results: make([]batchItemResponse, len(results))}
	for i, res := range results {
		item := batchItemResponse{Index: res.Index}
		switch {
		case res.Err != nil:
			item.Error = res.Err.Error()
		case res.Result != nil:
			item.Signature = res.Result.Signature
			item.Address = res.Result.Address
		}
		out.Results[i] = item
	}
	h.writeJSON(w, http.StatusOK, out)
}

func (h *Handler) createProposal(w http.ResponseWriter, r *http.Request) {
	var req proposalRequest
	if !h.decode(w, r, &req) {
		return
	}

	event := model.ProposalCreated{
		ProposalID:     req.ProposalID,
		OrganizationID: req.OrganizationID,
		Title:          req.Title,
		ContentHash:    req.ContentHash,
		StartAt:        req.StartAt,
		EndAt:          req.EndAt,
	}

	power, err := safe.Uint64(req.EligibleVotingPower)
	if err != nil {
		h.writeError(w, r, faults.NewValidation("eligible_voting_power", "%v", err))
		return
	}
	event.EligibleVotingPower = power

	if req.QuorumBps != nil {
		quorum, err := safe.Uint16(*req.QuorumBps)
		if err != nil {
			h.writeError(w, r, faults.NewValidation("quorum_bps", "%v", err))
			return
		}
		event.QuorumBps = &quorum
	}

	result, err := h.recorder.CreateProposal(r.Context(), event)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recordResponse{Signature: result.Signature, Address: result.Address})
}

func (h *Handler) updateProposalStatus(w http.ResponseWriter, r *http.Request) {
	var req proposalStatusRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.recorder.UpdateProposalStatus(r.Context(), model.ProposalStatus(req.CurrentStatus),
		model.ProposalStatusChanged{
			ProposalID:     mux.Vars(r)["id"],
			OrganizationID: req.OrganizationID,
			NewStatus:      model.ProposalStatus(req.NewStatus),
		})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recordResponse{Signature: result.Signature, Address: result.Address})
}

func (h *Handler) finalizeProposal(w http.ResponseWriter, r *http.Request) {
	var req finalizeProposalRequest
	if !h.decode(w, r, &req) {
		return
	}

	result, err := h.recorder.FinalizeProposal(r.Context(), model.ProposalStatus(req.CurrentStatus),
		model.ProposalFinalized{
			ProposalID:     mux.Vars(r)["id"],
			OrganizationID: req.OrganizationID,
		})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recordResponse{Signature: result.Signature, Address: result.Address})
}

func (h *Handler) commitProposalResults(w http.ResponseWriter, r *http.Request) {
	var req proposalResultsRequest
	if !h.decode(w, r, &req) {
		return
	}

	votesCast, err := safe.Uint64(req.TotalVotesCast)
	if err != nil {
		h.writeError(w, r, faults.NewValidation("total_votes_cast", "%v", err))
		return
	}

	result, err := h.recorder.CommitProposalResults(r.Context(), model.ProposalStatus(req.CurrentStatus),
		model.ResultsCommitted{
			ProposalID:      mux.Vars(r)["id"],
			OrganizationID:  req.OrganizationID,
			ResultsHash:     req.ResultsHash,
			WinningOptionID: req.WinningOptionID,
			TotalVotesCast:  votesCast,
			QuorumMet:       req.QuorumMet,
		})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recordResponse{Signature: result.Signature, Address: result.Address})
}

func (h *Handler) recordVote(w http.ResponseWriter, r *http.Request) {
	var req voteRequest
	if !h.decode(w, r, &req) {
		return
	}

	power, err := safe.Uint64(req.VotingPower)
	if err != nil {
		h.writeError(w, r, faults.NewValidation("voting_power", "%v", err))
		return
	}

	result, err := h.recorder.RecordVote(r.Context(), model.VoteCast{
		VoteID:         req.VoteID,
		ProposalID:     req.ProposalID,
		OrganizationID: req.OrganizationID,
		OptionID:       req.OptionID,
		VoterRef:       req.VoterRef,
		VotingPower:    power,
		BallotHash:     req.BallotHash,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, recordResponse{Signature: result.Signature, Address: result.Address})
}

func (h *Handler) transactionStatus(w http.ResponseWriter, r *http.Request) {
	status, err := h.recorder.TransactionStatus(r.Context(), mux.Vars(r)["signature"])
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	h.writeJSON(w, http.StatusOK, txStatusResponse{
		Signature:     status.Signature,
		State:         string(status.State),
		Slot:          status.Slot,
		Confirmations: status.Confirmations,
		Error:         status.Err,
	})
}

func (h *Handler) checkHealth(w http.ResponseWriter, r *http.Request) {
	status := h.health.Status()
	code := http.StatusOK
	if !status.Healthy {
		code = http.StatusServiceUnavailable
	}
	h.writeJSON(w, code, healthResponse{
		Healthy:   status.Healthy,
		Cluster:   string(status.Cluster),
		Endpoint:  status.Endpoint,
		Slot:      status.Slot,
		Version:   status.Version,
		KeyLoaded: status.KeyLoaded,
		CheckedAt: status.CheckedAt,
		LastError: status.LastError,
	})
}

func (h *Handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.writeError(w, r, faults.NewValidation("body", "malformed request body: %v", err))
		return false
	}
	return true
}

func (h *Handler) writeJSON(w http.ResponseWriter, code int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("encode response", zap.Error(err))
	}
}

func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	var valErr *faults.ValidationError
	var opErr *faults.OperationError

	code := http.StatusInternalServerError
	switch {
	case errors.As(err, &valErr):
		code = http.StatusBadRequest
	case errors.As(err, &opErr):
		code = http.StatusBadGateway
	}
	if code == http.StatusInternalServerError {
		h.logger.Error("request failed", zap.String("path", r.URL.Path), zap.Error(err))
	}
	h.writeJSON(w, code, errorResponse{Error: err.Error()})
}

// statusRecorder captures the status code written by a handler.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(code int) {
	r.status = code
	r.ResponseWriter.WriteHeader(code)
}
