package entities

import "errors"

// Kind names a terminal failure category of the bootstrap sequence.
// Every stage reports exactly one kind and the run stops there; nothing
// is retried and nothing already done is rolled back.
type Kind string

const (
	KindArgument          Kind = "ArgumentError"
	KindMissingTool       Kind = "MissingTool"
	KindInvalidCredential Kind = "InvalidCredential"
	KindNotAuthenticated  Kind = "NotAuthenticated"
	KindMissingArtifact   Kind = "MissingArtifact"
	KindMissingIdentity   Kind = "MissingIdentity"
	KindAlreadyExists     Kind = "AlreadyExists"
	KindRemoteError       Kind = "RemoteError"
	KindVcsError          Kind = "VcsError"
	KindPushError         Kind = "PushError"
)

// StageError is the uniform failure value every stage returns. The
// detail carries remote-supplied message text verbatim so the operator
// sees exactly what the platform or tool reported.
type StageError struct {
	Kind   Kind
	Detail string
	Err    error
}

func (e *StageError) Error() string {
	if e.Detail != "" {
		return string(e.Kind) + ": " + e.Detail
	}
	if e.Err != nil {
		return string(e.Kind) + ": " + e.Err.Error()
	}
	return string(e.Kind)
}

func (e *StageError) Unwrap() error {
	return e.Err
}

// NewStageError creates a failure of the given kind.
func NewStageError(kind Kind, detail string) *StageError {
	return &StageError{Kind: kind, Detail: detail}
}

// WrapStageError creates a failure of the given kind wrapping an
// underlying tool or transport error.
func WrapStageError(kind Kind, detail string, err error) *StageError {
	return &StageError{Kind: kind, Detail: detail, Err: err}
}

// KindOf extracts the failure kind from an error chain, or "" when the
// error did not originate from a stage.
func KindOf(err error) Kind {
	var stageErr *StageError
	if errors.As(err, &stageErr) {
		return stageErr.Kind
	}
	return ""
}

// IsKind reports whether err carries the given failure kind.
func IsKind(err error, kind Kind) bool {
	return KindOf(err) == kind
}
