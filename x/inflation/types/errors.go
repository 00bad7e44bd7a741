package types

import "cosmossdk.io/errors"

var (
	// ERROR 1 IS RESERVED BY COSMOS-SDK PACKAGE
	ErrUnauthorized                  = errors.Register(ModuleName, 2, "unauthorized message signer")
	ErrInvalidParams                 = errors.Register(ModuleName, 3, "invalid params")
	ErrInvalidInflationConfiguration = errors.Register(ModuleName, 4, "invalid inflation configuration")
	ErrTgeAlreadyActivated           = errors.Register(ModuleName, 5, "token generation event already activated")
	ErrInvalidTotalIssuance          = errors.Register(ModuleName, 6, "invalid total issuance")
	ErrNotFound                      = errors.Register(ModuleName, 7, "not found")
	ErrInvalidGenesis                = errors.Register(ModuleName, 8, "invalid genesis state")
)
