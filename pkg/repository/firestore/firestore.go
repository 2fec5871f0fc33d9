package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/interfaces"
)

const defaultCollection = "risk_register"

// Firestore stores the risk register one document per entry in a single
// collection, with a sequence field preserving insertion order.
type Firestore struct {
	client     *firestore.Client
	collection string
}

var _ interfaces.Repository = &Firestore{}

type Option func(*Firestore)

// WithCollection overrides the register collection name
func WithCollection(name string) Option {
	return func(f *Firestore) {
		f.collection = name
	}
}

func New(ctx context.Context, projectID, databaseID string, opts ...Option) (*Firestore, error) {
	var client *firestore.Client
	var err error
	if databaseID != "" {
		client, err = firestore.NewClientWithDatabase(ctx, projectID, databaseID)
	} else {
		client, err = firestore.NewClient(ctx, projectID)
	}
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create firestore client", goerr.V("projectID", projectID))
	}

	f := &Firestore{
		client:     client,
		collection: defaultCollection,
	}
	for _, opt := range opts {
		opt(f)
	}

	return f, nil
}

func (f *Firestore) Close() error {
	if f.client != nil {
		return f.client.Close()
	}
	return nil
}
