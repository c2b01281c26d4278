package ports

import "errors"

var (
	ErrClusterNotFound     = errors.New("Cluster not found")
	ErrNoUsableListener    = errors.New("Cluster has no listener with bootstrap servers")
	ErrUnsupportedAuthType = errors.New("Unsupported listener auth type")
	ErrTxBeginFailed       = errors.New("Transaction begin failed")
	ErrTxCommitFailed      = errors.New("Transaction commit failed")
)
