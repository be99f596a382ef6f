package api

import (
	"fmt"
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staker/internal/registry"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

// maxDevMint bounds a single dev mint request
const maxDevMint = 100

// DevHandlers drive the in-memory registries directly. They stand in for the
// wallet interactions a real chain deployment would have.
type DevHandlers struct {
	memory  *registry.Memory
	custody common.Address
}

func NewDevHandlers(memory *registry.Memory, custody common.Address) *DevHandlers {
	return &DevHandlers{memory: memory, custody: custody}
}

type MintRequest struct {
	Amount uint64 `json:"amount"`
}

type MintResponse struct {
	Source string         `json:"source"`
	Owner  common.Address `json:"owner"`
	IDs    []uint64       `json:"ids"`
}

type ApprovalRequest struct {
	Registry string `json:"registry"`
	Approved bool   `json:"approved"`
}

type ApprovalResponse struct {
	Registry string         `json:"registry"`
	Owner    common.Address `json:"owner"`
	Operator common.Address `json:"operator"`
	Approved bool           `json:"approved"`
}

func (h *DevHandlers) Mount(r chi.Router) {
	r.Post("/collections/{source}/mint", WrapHandlerFunc(h.handleMint))
	r.Post("/approvals", WrapHandlerFunc(h.handleApproval))
}

func (h *DevHandlers) handleMint(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFromRequest(r)
	if err != nil {
		return err
	}
	var req MintRequest
	if err := ParseJSON(r.Body, &req); err != nil {
		return err
	}
	if req.Amount == 0 || req.Amount > maxDevMint {
		return badRequest(fmt.Sprintf("amount must be between 1 and %d", maxDevMint))
	}

	source := chi.URLParam(r, "source")
	collection, ok := h.memory.Collection(source)
	if !ok {
		return types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, fmt.Sprintf("collection %q not found", source))
	}

	ids, err := collection.Mint(r.Context(), caller, req.Amount)
	if err != nil {
		return err
	}

	log.Ctx(r.Context()).Info().
		Str("source", source).
		Str("owner", caller.Hex()).
		Uint64("amount", req.Amount).
		Msg("dev mint")
	return WriteJSON(w, MintResponse{Source: source, Owner: caller, IDs: ids})
}

func (h *DevHandlers) handleApproval(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFromRequest(r)
	if err != nil {
		return err
	}
	var req ApprovalRequest
	if err := ParseJSON(r.Body, &req); err != nil {
		return err
	}

	approver, ok := h.memory.Approver(req.Registry)
	if !ok {
		return types.NewErrorWithMsg(http.StatusNotFound, types.NotFound, fmt.Sprintf("registry %q not found", req.Registry))
	}

	if err := approver.SetApprovalForAll(r.Context(), caller, h.custody, req.Approved); err != nil {
		return badRequest(err.Error())
	}

	return WriteJSON(w, ApprovalResponse{
		Registry: req.Registry,
		Owner:    caller,
		Operator: h.custody,
		Approved: req.Approved,
	})
}
