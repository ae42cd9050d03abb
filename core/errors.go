package core

type ErrorValidation struct {
	Message string
}

func (e ErrorValidation) Error() string {
	return "Validation Failed: " + e.Message
}

func NewErrorValidation(message string) ErrorValidation {
	return ErrorValidation{Message: message}
}

// ErrorDenied is the normal no-grant outcome, not a failure.
type ErrorDenied struct {
}

func (e ErrorDenied) Error() string {
	return "Denied"
}

func NewErrorDenied() ErrorDenied {
	return ErrorDenied{}
}

type ErrorAttestationInvalid struct {
	Reason string
}

func (e ErrorAttestationInvalid) Error() string {
	return "Attestation Invalid: " + e.Reason
}

func NewErrorAttestationInvalid(reason string) ErrorAttestationInvalid {
	return ErrorAttestationInvalid{Reason: reason}
}

type ErrorStore struct {
	Err error
}

func (e ErrorStore) Error() string {
	return "Store Failure: " + e.Err.Error()
}

func (e ErrorStore) Unwrap() error {
	return e.Err
}

func NewErrorStore(err error) ErrorStore {
	return ErrorStore{Err: err}
}

type ErrorIssuance struct {
	Err error
}

func (e ErrorIssuance) Error() string {
	return "Issuance Failure: " + e.Err.Error()
}

func (e ErrorIssuance) Unwrap() error {
	return e.Err
}

func NewErrorIssuance(err error) ErrorIssuance {
	return ErrorIssuance{Err: err}
}
