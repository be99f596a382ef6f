package types

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorCode string

const (
	InternalServiceError ErrorCode = "INTERNAL_SERVICE_ERROR"
	BadRequest           ErrorCode = "BAD_REQUEST"
	NotFound             ErrorCode = "NOT_FOUND"
	InvalidBatchSize     ErrorCode = "INVALID_BATCH_SIZE"
	UnknownAsset         ErrorCode = "UNKNOWN_ASSET"
	NotOwner             ErrorCode = "NOT_OWNER"
	NotApproved          ErrorCode = "NOT_APPROVED"
	AlreadyClaimed       ErrorCode = "ALREADY_CLAIMED"
	IndexNotFound        ErrorCode = "INDEX_NOT_FOUND"
)

func (c ErrorCode) String() string {
	return string(c)
}

// Error is returned by the service layer. StatusCode is the http status the
// transport should respond with.
type Error struct {
	StatusCode int
	ErrorCode  ErrorCode
	Err        error
}

func (e *Error) Error() string {
	return e.Err.Error()
}

func (e *Error) Unwrap() error {
	return e.Err
}

func NewError(statusCode int, errorCode ErrorCode, err error) *Error {
	return &Error{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Err:        err,
	}
}

func NewErrorWithMsg(statusCode int, errorCode ErrorCode, msg string) *Error {
	return NewError(statusCode, errorCode, errors.New(msg))
}

func NewInternalServiceError(err error) *Error {
	return NewError(http.StatusInternalServerError, InternalServiceError, err)
}

// IsErrorCode reports whether err is (or wraps) an *Error with the given code.
func IsErrorCode(err error, code ErrorCode) bool {
	var e *Error
	if !errors.As(err, &e) {
		return false
	}
	return e.ErrorCode == code
}

func NewInvalidBatchSizeError(size, limit int) *Error {
	return NewError(
		http.StatusBadRequest,
		InvalidBatchSize,
		fmt.Errorf("Stake amount incorrect: got %d assets, allowed 1..%d", size, limit),
	)
}

func NewUnknownAssetError(asset AssetRef, cause error) *Error {
	return NewError(
		http.StatusNotFound,
		UnknownAsset,
		fmt.Errorf("ERC721: invalid token ID %s: %w", asset, cause),
	)
}

func NewNotOwnerError(asset AssetRef) *Error {
	return NewError(
		http.StatusForbidden,
		NotOwner,
		fmt.Errorf("You do not own this Nft: %s", asset),
	)
}

func NewNotApprovedError(registry string, id uint64) *Error {
	return NewError(
		http.StatusForbidden,
		NotApproved,
		fmt.Errorf("ERC721: caller is not token owner or approved: %s/%d", registry, id),
	)
}

func NewAlreadyClaimedError(asset AssetRef) *Error {
	return NewError(
		http.StatusConflict,
		AlreadyClaimed,
		fmt.Errorf("NFT already claimed: %s", asset),
	)
}

func NewIndexNotFoundError(asset AssetRef) *Error {
	return NewError(
		http.StatusNotFound,
		IndexNotFound,
		fmt.Errorf("Index not found for this staker.: %s", asset),
	)
}
