package certs

import "github.com/ethereum/go-ethereum/metrics"

var (
	issued_cnt         = metrics.NewRegisteredCounter("certs/issued", nil)
	revoked_cnt        = metrics.NewRegisteredCounter("certs/revoked", nil)
	batch_verify_cnt   = metrics.NewRegisteredCounter("certs/verify/batches", nil)
	verified_valid_cnt = metrics.NewRegisteredCounter("certs/verify/valid", nil)
	verified_fail_cnt  = metrics.NewRegisteredCounter("certs/verify/failed", nil)
)
