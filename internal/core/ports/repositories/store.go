package repositories

import "context"

// Collection is a client bound to one path of the hierarchical document
// store. Every method is a blocking round trip to the store.
type Collection interface {
	// Fetch decodes the document at the path into dest. found is false when
	// nothing is stored there, in which case dest is left untouched.
	Fetch(ctx context.Context, dest any) (found bool, err error)

	// FetchAll decodes every child of the path into dest, typically a map
	// keyed by child id. found is false when the path has no children.
	FetchAll(ctx context.Context, dest any) (found bool, err error)

	// WriteNew appends record under a newly generated key and returns it.
	WriteNew(ctx context.Context, record any) (string, error)

	// Replace overwrites the whole document at the path.
	Replace(ctx context.Context, record any) error

	// DeleteByID removes the child with the given id. Missing ids are not an error.
	DeleteByID(ctx context.Context, id string) error

	// DeleteAll removes everything under the path.
	DeleteAll(ctx context.Context) error
}

// DocumentStore hands out collection clients by path.
type DocumentStore interface {
	Collection(path string) Collection
}

// Collection paths used by the application.
const (
	TransactionsPath = "transactions"
	SummaryPath      = "summary"
)
