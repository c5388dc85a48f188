package store

// EventOp enumerates the mutations a store can report.
type EventOp string

const (
	OpCreated EventOp = "created"
	OpUpdated EventOp = "updated"
	OpDeleted EventOp = "deleted"
)

// Entity names the collection an event belongs to.
type Entity string

const (
	EntityUser        Entity = "user"
	EntityArtist      Entity = "artist"
	EntityMembership  Entity = "membership"
	EntityTransaction Entity = "transaction"
)

// Event describes one successful mutation. Record holds the post-mutation
// record for creates and updates; it is nil for deletes.
type Event struct {
	Entity Entity
	Op     EventOp
	ID     string
	Record any
}

// Subscriber receives events after a mutation has been applied. Callbacks run
// on the mutating goroutine and must not block.
type Subscriber func(Event)
