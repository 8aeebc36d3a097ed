package backend

import "github.com/jwalitptl/clinic-portal/pkg/apperror"

// Result is the outcome of a mutating call against the clinic API. The
// backend signals failure two different ways (a falsy success payload vs a
// request that never completed); both collapse into one discriminated
// shape here, with the underlying cause kept as a typed error.
type Result struct {
	OK      bool
	Message string
	Err     *apperror.Error
}

func succeeded(message string) Result {
	return Result{OK: true, Message: message}
}

func rejected(message string, cause error) Result {
	return Result{
		OK:      false,
		Message: message,
		Err:     apperror.RemoteRejected(message, cause),
	}
}

func failed(message string, cause error) Result {
	return Result{
		OK:      false,
		Message: message,
		Err:     apperror.Transport(message, cause),
	}
}

// IsTransportFailure reports whether the call never got a backend verdict.
func (r Result) IsTransportFailure() bool {
	return r.Err != nil && r.Err.Kind == apperror.KindTransport
}
