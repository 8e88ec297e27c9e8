package warehouse

import (
	"errors"
	"fmt"
	"strings"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/pkg/errs"
)

var (
	// ErrContainerIsNotConstructed is returned when a Container bypassed
	// its constructor.
	ErrContainerIsNotConstructed = errors.New("Container must be created via NewContainer constructor")

	// ErrContainerNotUsable indicates the container is closed or locked
	// and cannot source or receive stock.
	ErrContainerNotUsable = errors.New("container is not usable")
)

// ContainerStatus is the operational state of a physical container.
type ContainerStatus int

const (
	// ContainerUnknown is the invalid zero value.
	ContainerUnknown ContainerStatus = iota

	// ContainerOpen means the container participates in picking.
	ContainerOpen

	// ContainerClosed means the container was finalized (sealed for
	// shipment or retired) and takes no further stock movement.
	ContainerClosed

	// ContainerLocked means the container is administratively frozen,
	// typically for a stock take.
	ContainerLocked
)

func containerStatusStrings() map[ContainerStatus]string {
	return map[ContainerStatus]string{
		ContainerUnknown: "Unknown",
		ContainerOpen:    "Open",
		ContainerClosed:  "Closed",
		ContainerLocked:  "Locked",
	}
}

// Validate rejects ContainerUnknown and out-of-range values.
func (s ContainerStatus) Validate() error {
	switch s {
	case ContainerOpen, ContainerClosed, ContainerLocked:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause("container status is invalid",
			fmt.Errorf("%d is not a valid container status", s))
	}
}

// String implements fmt.Stringer.
func (s ContainerStatus) String() string {
	if str, ok := containerStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Container is a physical box or location holding inventory entries. The
// code is what operators scan; the location code orders containers for
// efficient physical traversal when building pick lists.
type Container struct {
	id           kernel.UUID
	code         string
	locationCode string
	status       ContainerStatus

	guard kernel.ConstructorGuard
}

// NewContainer creates an open container.
func NewContainer(id kernel.UUID, code, locationCode string) (*Container, error) {
	c := &Container{
		status: ContainerOpen,
		guard:  kernel.NewConstructorGuard(),
	}

	if err := errors.Join(
		c.setID(id),
		c.setCode(code),
		c.setLocationCode(locationCode),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreContainer reconstructs a container from persistence.
func RestoreContainer(id kernel.UUID, code, locationCode string, status ContainerStatus) (*Container, error) {
	c, err := NewContainer(id, code, locationCode)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	c.status = status
	return c, nil
}

// Validate ensures the container came from a constructor.
func (c *Container) Validate() error {
	if c == nil {
		return ErrContainerIsNotConstructed
	}
	return c.guard.Validate(ErrContainerIsNotConstructed)
}

// ID returns the container's unique identifier.
func (c *Container) ID() kernel.UUID {
	return c.id
}

// Code returns the scannable container code.
func (c *Container) Code() string {
	return c.code
}

// LocationCode returns the storage location code used for traversal ordering.
func (c *Container) LocationCode() string {
	return c.locationCode
}

// Status returns the operational state.
func (c *Container) Status() ContainerStatus {
	return c.status
}

// IsUsable reports whether the container can source stock or act as a
// consolidation target.
func (c *Container) IsUsable() bool {
	return c.status == ContainerOpen
}

// EnsureUsable returns ErrContainerNotUsable for closed or locked containers.
func (c *Container) EnsureUsable() error {
	if !c.IsUsable() {
		return fmt.Errorf("%w: %s is %s", ErrContainerNotUsable, c.code, c.status)
	}
	return nil
}

// MatchesScan reports whether a scanned code identifies this container.
// Scans are compared case-insensitively with surrounding whitespace ignored,
// since handheld scanners routinely pad or upcase codes.
func (c *Container) MatchesScan(scannedCode string) bool {
	return strings.EqualFold(strings.TrimSpace(scannedCode), c.code)
}

func (c *Container) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	c.id = id
	return nil
}

func (c *Container) setCode(code string) error {
	code = strings.TrimSpace(code)
	if code == "" {
		return errs.NewValueIsRequiredError("code")
	}
	c.code = code
	return nil
}

func (c *Container) setLocationCode(locationCode string) error {
	locationCode = strings.TrimSpace(locationCode)
	if locationCode == "" {
		return errs.NewValueIsRequiredError("locationCode")
	}
	c.locationCode = locationCode
	return nil
}
