package commands

// AllocateNextOrderCommand asks the allocation engine to pick up the oldest
// approved order still waiting for stock. The background sweep issues one of
// these per tick; there is nothing to validate.
type AllocateNextOrderCommand struct {
	isSet bool
}

// NewAllocateNextOrderCommand creates a command to allocate the next
// waiting order with the default strategy.
func NewAllocateNextOrderCommand() AllocateNextOrderCommand {
	return AllocateNextOrderCommand{isSet: true}
}

// IsEmpty returns true if the command was not created via the constructor.
func (c AllocateNextOrderCommand) IsEmpty() bool {
	return !c.isSet
}
