package api

import (
	"net/http"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"

	"github.com/babylonlabs-io/nft-staker/internal/services"
	"github.com/babylonlabs-io/nft-staker/internal/types"
)

type Handlers struct {
	service *services.Service
}

func NewHandlers(service *services.Service) *Handlers {
	return &Handlers{service: service}
}

type AssetsRequest struct {
	Assets []types.AssetRef `json:"assets"`
}

type StakeResponse struct {
	Records []types.StakeRecord `json:"records"`
}

type StakedTokensResponse struct {
	Staker common.Address   `json:"staker"`
	Assets []types.AssetRef `json:"assets"`
}

type PlaceholderIdsResponse struct {
	Staker       common.Address `json:"staker"`
	Placeholders []uint64       `json:"placeholders"`
}

type StakeRecordsResponse struct {
	Staker  common.Address             `json:"staker"`
	Records []services.StakeRecordView `json:"records"`
}

type ClaimedResponse struct {
	ID      uint64 `json:"id"`
	Claimed bool   `json:"claimed"`
}

type HealthResponse struct {
	Status  string         `json:"status"`
	Custody common.Address `json:"custody"`
}

func (h *Handlers) Mount(r chi.Router) {
	r.Post("/stake", WrapHandlerFunc(h.handleStake))
	r.Post("/unstake", WrapHandlerFunc(h.handleUnstake))

	r.Get("/stakers", WrapHandlerFunc(h.handleGetStakers))
	r.Route("/stakers/{address}", func(r chi.Router) {
		r.Get("/staked", WrapHandlerFunc(h.handleGetStaked))
		r.Get("/placeholders", WrapHandlerFunc(h.handleGetPlaceholders))
		r.Get("/records", WrapHandlerFunc(h.handleGetRecords))
		r.Get("/history", WrapHandlerFunc(h.handleGetHistory))
	})

	r.Get("/claimed/{id}", WrapHandlerFunc(h.handleGetClaimed))
	r.Get("/assets/{source}/{id}", WrapHandlerFunc(h.handleGetAsset))
	r.Get("/placeholders/{id}", WrapHandlerFunc(h.handleGetPlaceholder))
	r.Get("/rewards/{id}", WrapHandlerFunc(h.handleGetReward))
}

func (h *Handlers) handleStake(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFromRequest(r)
	if err != nil {
		return err
	}
	var req AssetsRequest
	if err := ParseJSON(r.Body, &req); err != nil {
		return err
	}

	records, svcErr := h.service.Stake(r.Context(), caller, req.Assets)
	if svcErr != nil {
		return svcErr
	}
	return WriteJSON(w, StakeResponse{Records: records})
}

func (h *Handlers) handleUnstake(w http.ResponseWriter, r *http.Request) error {
	caller, err := callerFromRequest(r)
	if err != nil {
		return err
	}
	var req AssetsRequest
	if err := ParseJSON(r.Body, &req); err != nil {
		return err
	}

	result, svcErr := h.service.Unstake(r.Context(), caller, req.Assets)
	if svcErr != nil {
		return svcErr
	}
	return WriteJSON(w, result)
}

func (h *Handlers) handleGetStakers(w http.ResponseWriter, r *http.Request) error {
	return WriteJSON(w, h.service.GetStakerAddresses(r.Context()))
}

func (h *Handlers) handleGetStaked(w http.ResponseWriter, r *http.Request) error {
	staker, err := addressParam(r, "address")
	if err != nil {
		return err
	}
	return WriteJSON(w, StakedTokensResponse{
		Staker: staker,
		Assets: h.service.GetStakedTokens(r.Context(), staker),
	})
}

func (h *Handlers) handleGetPlaceholders(w http.ResponseWriter, r *http.Request) error {
	staker, err := addressParam(r, "address")
	if err != nil {
		return err
	}
	return WriteJSON(w, PlaceholderIdsResponse{
		Staker:       staker,
		Placeholders: h.service.GetPlaceholderTokenIds(r.Context(), staker),
	})
}

func (h *Handlers) handleGetRecords(w http.ResponseWriter, r *http.Request) error {
	staker, err := addressParam(r, "address")
	if err != nil {
		return err
	}
	return WriteJSON(w, StakeRecordsResponse{
		Staker:  staker,
		Records: h.service.GetStakeRecords(r.Context(), staker),
	})
}

func (h *Handlers) handleGetHistory(w http.ResponseWriter, r *http.Request) error {
	staker, err := addressParam(r, "address")
	if err != nil {
		return err
	}
	history, svcErr := h.service.GetStakerHistory(r.Context(), staker)
	if svcErr != nil {
		return svcErr
	}
	return WriteJSON(w, history)
}

func (h *Handlers) handleGetClaimed(w http.ResponseWriter, r *http.Request) error {
	id, err := uint64Param(r, "id")
	if err != nil {
		return err
	}
	return WriteJSON(w, ClaimedResponse{
		ID:      id,
		Claimed: h.service.ClaimedNfts(r.Context(), id),
	})
}

func (h *Handlers) handleGetAsset(w http.ResponseWriter, r *http.Request) error {
	id, err := uint64Param(r, "id")
	if err != nil {
		return err
	}
	asset := types.AssetRef{Source: chi.URLParam(r, "source"), ID: id}

	state, svcErr := h.service.GetAssetState(r.Context(), asset)
	if svcErr != nil {
		return svcErr
	}
	return WriteJSON(w, state)
}

func (h *Handlers) handleGetPlaceholder(w http.ResponseWriter, r *http.Request) error {
	id, err := uint64Param(r, "id")
	if err != nil {
		return err
	}
	metadata, svcErr := h.service.GetPlaceholderMetadata(r.Context(), id)
	if svcErr != nil {
		return svcErr
	}
	return WriteJSON(w, metadata)
}

func (h *Handlers) handleGetReward(w http.ResponseWriter, r *http.Request) error {
	id, err := uint64Param(r, "id")
	if err != nil {
		return err
	}
	metadata, svcErr := h.service.GetRewardMetadata(r.Context(), id)
	if svcErr != nil {
		return svcErr
	}
	return WriteJSON(w, metadata)
}
