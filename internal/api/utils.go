package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/ethereum/go-ethereum/common"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"

	"github.com/babylonlabs-io/nft-staker/internal/types"
	"github.com/babylonlabs-io/nft-staker/pkg"
)

const (
	JSONContentType = "application/json; charset=utf-8"

	// CallerHeader carries the address of the authenticated caller. It is set
	// by the gateway in front of the service.
	CallerHeader = "X-Caller-Address"

	maxBodyBytes = 1 << 20
)

// HandlerFunc is like http.HandlerFunc but returns an error. A *types.Error is
// responded with its status and code, anything else with 500.
type HandlerFunc func(http.ResponseWriter, *http.Request) error

type ErrorResponse struct {
	ErrorCode string `json:"errorCode"`
	Message   string `json:"message"`
}

func WrapHandlerFunc(f HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		err := f(w, r)
		if err == nil {
			return
		}

		var apiErr *types.Error
		if !errors.As(err, &apiErr) {
			apiErr = types.NewInternalServiceError(err)
		}

		logger := log.Ctx(r.Context())
		if apiErr.StatusCode >= http.StatusInternalServerError {
			logger.Error().Err(apiErr).Str("error_code", apiErr.ErrorCode.String()).Msg("request failed")
		} else {
			logger.Debug().Err(apiErr).Str("error_code", apiErr.ErrorCode.String()).Msg("request rejected")
		}

		message := apiErr.Error()
		if apiErr.ErrorCode == types.InternalServiceError {
			message = "Internal service error"
		}
		writeJSON(w, apiErr.StatusCode, ErrorResponse{
			ErrorCode: apiErr.ErrorCode.String(),
			Message:   message,
		})
	}
}

// ParseJSON parses a JSON object using strict mode.
func ParseJSON(r io.Reader, v any) error {
	decoder := json.NewDecoder(io.LimitReader(r, maxBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(v); err != nil {
		return badRequest(fmt.Sprintf("invalid request body: %v", err))
	}
	return nil
}

// WriteJSON responds obj with status 200.
func WriteJSON(w http.ResponseWriter, obj any) error {
	return writeJSON(w, http.StatusOK, obj)
}

func writeJSON(w http.ResponseWriter, status int, obj any) error {
	w.Header().Set("Content-Type", JSONContentType)
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(obj)
}

func badRequest(msg string) *types.Error {
	return types.NewErrorWithMsg(http.StatusBadRequest, types.BadRequest, msg)
}

func parseAddress(s string) (common.Address, error) {
	addr, err := pkg.ParseAddress(s)
	if err != nil {
		return common.Address{}, badRequest(err.Error())
	}
	return addr, nil
}

func callerFromRequest(r *http.Request) (common.Address, error) {
	header := r.Header.Get(CallerHeader)
	if header == "" {
		return common.Address{}, badRequest(fmt.Sprintf("missing %s header", CallerHeader))
	}
	return parseAddress(header)
}

func addressParam(r *http.Request, name string) (common.Address, error) {
	return parseAddress(chi.URLParam(r, name))
}

func uint64Param(r *http.Request, name string) (uint64, error) {
	raw := chi.URLParam(r, name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, badRequest(fmt.Sprintf("invalid %s %q", name, raw))
	}
	return v, nil
}
