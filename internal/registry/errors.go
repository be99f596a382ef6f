package registry

import "errors"

var (
	ErrTokenNotFound              = errors.New("ERC721: invalid token ID")
	ErrNotOwnerOrApproved         = errors.New("ERC721: caller is not token owner or approved")
	ErrTransferFromIncorrectOwner = errors.New("ERC721: transfer from incorrect owner")
	ErrZeroAddress                = errors.New("ERC721: address zero is not a valid owner")
	ErrTokenAlreadyMinted         = errors.New("ERC721: token already minted")
	ErrNotMinter                  = errors.New("caller is not the staking contract")
	ErrSourceNotFound             = errors.New("asset source is not configured")
)
