package gateway

import "fmt"

// Stage identifies where a fetch failed.
type Stage string

const (
	StageTransport Stage = "transport" // request never produced an HTTP response
	StageStatus    Stage = "status"    // non-2xx HTTP status
	StageDecode    Stage = "decode"    // response body did not parse as a record array
)

// RemoteFailure is the error for any failed gateway operation. Status is only
// meaningful for StageStatus and StageDecode.
type RemoteFailure struct {
	Stage  Stage
	Status int
	Err    error
}

func (e *RemoteFailure) Error() string {
	if e.Status != 0 {
		return fmt.Sprintf("remote fetch failed (%s, http %d): %v", e.Stage, e.Status, e.Err)
	}
	return fmt.Sprintf("remote fetch failed (%s): %v", e.Stage, e.Err)
}

func (e *RemoteFailure) Unwrap() error {
	return e.Err
}
