package approval

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrShortageRequestIsNotConstructed is returned when a ShortageRequest was not created via constructor.
	ErrShortageRequestIsNotConstructed = errors.New(
		"ShortageRequest must be created via NewShortageRequest constructor")

	// ErrShortageAlreadyResolved is returned when approving or rejecting a request a second time.
	ErrShortageAlreadyResolved = errors.New("shortage request is already resolved")
)

// RequestStatus is the resolution state of a shortage request.
type RequestStatus int

const (
	RequestStatusUnknown RequestStatus = iota
	// RequestPending awaits a supervisor decision.
	RequestPending
	// RequestApproved completed the task at the reported actual quantity.
	RequestApproved
	// RequestRejected sent the task back to the operator unchanged.
	RequestRejected
)

func requestStatusStrings() map[RequestStatus]string {
	return map[RequestStatus]string{
		RequestPending:  "PENDING",
		RequestApproved: "APPROVED",
		RequestRejected: "REJECTED",
	}
}

// Validate returns an error for statuses outside the known set.
func (s RequestStatus) Validate() error {
	if _, ok := requestStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidError("request status")
	}
	return nil
}

func (s RequestStatus) String() string {
	if name, ok := requestStatusStrings()[s]; ok {
		return name
	}
	return "UNKNOWN"
}

// RequestStatusFromString parses the wire form of a request status.
func RequestStatusFromString(name string) (RequestStatus, error) {
	for status, s := range requestStatusStrings() {
		if strings.EqualFold(s, name) {
			return status, nil
		}
	}
	return RequestStatusUnknown, errs.NewValueIsInvalidErrorWithCause("request status",
		fmt.Errorf("unknown status %q", name))
}

// IsResolved reports whether a supervisor already decided the request.
func (s RequestStatus) IsResolved() bool {
	return s == RequestApproved || s == RequestRejected
}

// ShortageRequest records an operator's claim that the shelf holds fewer
// units than a task requires. The request itself is the audit record: once
// resolved it keeps both quantities and the decision.
type ShortageRequest struct {
	id     kernel.UUID
	taskID kernel.UUID
	jobID  kernel.UUID

	requestedQty int
	actualQty    int
	reason       string
	requestedBy  string

	status RequestStatus

	guard kernel.ConstructorGuard
}

// NewShortageRequest creates a pending request. The actual quantity must be
// strictly below the task's requirement; an operator who can pick in full
// has nothing to report.
func NewShortageRequest(
	id, taskID, jobID kernel.UUID,
	requestedQty, actualQty int,
	reason, requestedBy string,
) (*ShortageRequest, error) {
	if err := errors.Join(id.Validate(), taskID.Validate(), jobID.Validate()); err != nil {
		return nil, err
	}
	if requestedQty <= 0 {
		return nil, errs.NewValueIsInvalidErrorWithCause("requestedQty is invalid",
			fmt.Errorf("%d is not greater than 0", requestedQty))
	}
	if actualQty < 0 || actualQty >= requestedQty {
		return nil, errs.NewValueIsOutOfRangeError("actualQty", actualQty, 0, requestedQty-1)
	}
	if requestedBy == "" {
		return nil, errs.NewValueIsRequiredError("requestedBy")
	}

	return &ShortageRequest{
		id:           id,
		taskID:       taskID,
		jobID:        jobID,
		requestedQty: requestedQty,
		actualQty:    actualQty,
		reason:       strings.TrimSpace(reason),
		requestedBy:  requestedBy,
		status:       RequestPending,
		guard:        kernel.NewConstructorGuard(),
	}, nil
}

// RestoreShortageRequest reconstructs a request from persistence.
func RestoreShortageRequest(
	id, taskID, jobID kernel.UUID,
	requestedQty, actualQty int,
	reason, requestedBy string,
	status RequestStatus,
) (*ShortageRequest, error) {
	r, err := NewShortageRequest(id, taskID, jobID, requestedQty, actualQty, reason, requestedBy)
	if err != nil {
		return nil, err
	}
	if err = status.Validate(); err != nil {
		return nil, err
	}

	r.status = status
	return r, nil
}

// Validate ensures the request came from a constructor.
func (r *ShortageRequest) Validate() error {
	if r == nil {
		return ErrShortageRequestIsNotConstructed
	}
	return r.guard.Validate(ErrShortageRequestIsNotConstructed)
}

// ID returns the request's unique identifier.
func (r *ShortageRequest) ID() kernel.UUID {
	return r.id
}

// TaskID returns the blocked pick task.
func (r *ShortageRequest) TaskID() kernel.UUID {
	return r.taskID
}

// JobID returns the job the blocked task belongs to.
func (r *ShortageRequest) JobID() kernel.UUID {
	return r.jobID
}

// RequestedQty returns the task's required quantity at report time.
func (r *ShortageRequest) RequestedQty() int {
	return r.requestedQty
}

// ActualQty returns what the operator found on the shelf.
func (r *ShortageRequest) ActualQty() int {
	return r.actualQty
}

// Delta returns the missing unit count.
func (r *ShortageRequest) Delta() int {
	return r.requestedQty - r.actualQty
}

// Reason returns the operator's free-text explanation, possibly empty.
func (r *ShortageRequest) Reason() string {
	return r.reason
}

// RequestedBy returns the reporting operator.
func (r *ShortageRequest) RequestedBy() string {
	return r.requestedBy
}

// Status returns the resolution state.
func (r *ShortageRequest) Status() RequestStatus {
	return r.status
}

// Approve resolves the request in the operator's favor. Resolving twice
// returns ErrShortageAlreadyResolved so retried approvals stay harmless.
func (r *ShortageRequest) Approve() error {
	if r.status.IsResolved() {
		return fmt.Errorf("%w: %s", ErrShortageAlreadyResolved, r.status)
	}

	r.status = RequestApproved
	return nil
}

// Reject resolves the request against the operator, sending the task back
// for a normal full-quantity pick.
func (r *ShortageRequest) Reject() error {
	if r.status.IsResolved() {
		return fmt.Errorf("%w: %s", ErrShortageAlreadyResolved, r.status)
	}

	r.status = RequestRejected
	return nil
}
