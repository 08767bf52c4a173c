package service

import "fmt"

// InputResolutionError reports that a parent transaction backing one of the
// candidate's inputs could not be resolved. The whole validation fails: a
// transaction cannot be validated without full visibility into what funded it.
type InputResolutionError struct {
	TxID string
	Err  error
}

func (e *InputResolutionError) Error() string {
	return fmt.Sprintf("resolve input transaction %s: %v", e.TxID, e.Err)
}

func (e *InputResolutionError) Unwrap() error {
	return e.Err
}

// ProvenanceOracleError reports a trust service failure for a referenced
// parent. Partial trust information is treated as no trust information.
type ProvenanceOracleError struct {
	TxID string
	Err  error
}

func (e *ProvenanceOracleError) Error() string {
	return fmt.Sprintf("provenance verdict for %s: %v", e.TxID, e.Err)
}

func (e *ProvenanceOracleError) Unwrap() error {
	return e.Err
}
