package service

import "errors"

var ErrContractNotLoaded = errors.New("Contract not deployed or loaded")
