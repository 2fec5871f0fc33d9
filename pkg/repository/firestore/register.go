package firestore

import (
	"context"
	"encoding/json"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/model"
	"github.com/riskops-lab/themis/pkg/domain/types"
	"golang.org/x/sync/errgroup"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// saveConcurrency bounds parallel document writes during a register replace
const saveConcurrency = 8

type entryDocument struct {
	ID                string    `firestore:"id"`
	Seq               int       `firestore:"seq"`
	Name              string    `firestore:"name"`
	Description       string    `firestore:"description"`
	AssetName         string    `firestore:"asset_name"`
	ThreatDescription string    `firestore:"threat_description"`
	Type              string    `firestore:"type"`
	Result            string    `firestore:"result"` // wire JSON of the output variant
	Input             string    `firestore:"input"`  // wire JSON of the input variant
	Status            string    `firestore:"status"`
	Owner             string    `firestore:"owner"`
	ReviewDate        time.Time `firestore:"review_date"`
	CreatedAt         time.Time `firestore:"created_at"`
	UpdatedAt         time.Time `firestore:"updated_at"`
	Notes             string    `firestore:"notes"`
}

func toDocument(entry *model.RiskEntry, seq int) (*entryDocument, error) {
	var result, input any
	switch entry.Assessment.Type {
	case types.RiskTypeQualitative:
		result = entry.Assessment.Qualitative.Output
		input = entry.Assessment.Qualitative.Input
	case types.RiskTypeQuantitative:
		result = entry.Assessment.Quantitative.Output
		input = entry.Assessment.Quantitative.Input
	default:
		return nil, goerr.Wrap(model.ErrInvalidResult, "bad type tag", goerr.V("id", entry.ID))
	}

	resultRaw, err := json.Marshal(result)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal entry result", goerr.V("id", entry.ID))
	}
	inputRaw, err := json.Marshal(input)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to marshal entry input", goerr.V("id", entry.ID))
	}

	return &entryDocument{
		ID:                entry.ID.String(),
		Seq:               seq,
		Name:              entry.Name,
		Description:       entry.Description,
		AssetName:         entry.AssetName,
		ThreatDescription: entry.ThreatDescription,
		Type:              entry.Assessment.Type.String(),
		Result:            string(resultRaw),
		Input:             string(inputRaw),
		Status:            entry.Status.String(),
		Owner:             entry.Owner,
		ReviewDate:        entry.ReviewDate,
		CreatedAt:         entry.CreatedAt,
		UpdatedAt:         entry.UpdatedAt,
		Notes:             entry.Notes,
	}, nil
}

func (d *entryDocument) toModel() (*model.RiskEntry, error) {
	var assessment model.RiskResult
	switch types.RiskType(d.Type) {
	case types.RiskTypeQualitative:
		var input model.QualitativeInput
		var output model.QualitativeOutput
		if err := json.Unmarshal([]byte(d.Input), &input); err != nil {
			return nil, goerr.Wrap(err, "failed to decode qualitative input", goerr.V("id", d.ID))
		}
		if err := json.Unmarshal([]byte(d.Result), &output); err != nil {
			return nil, goerr.Wrap(err, "failed to decode qualitative result", goerr.V("id", d.ID))
		}
		assessment = model.NewQualitativeResult(input, output)
	case types.RiskTypeQuantitative:
		var input model.QuantitativeInput
		var output model.QuantitativeOutput
		if err := json.Unmarshal([]byte(d.Input), &input); err != nil {
			return nil, goerr.Wrap(err, "failed to decode quantitative input", goerr.V("id", d.ID))
		}
		if err := json.Unmarshal([]byte(d.Result), &output); err != nil {
			return nil, goerr.Wrap(err, "failed to decode quantitative result", goerr.V("id", d.ID))
		}
		assessment = model.NewQuantitativeResult(input, output)
	default:
		return nil, goerr.Wrap(model.ErrInvalidResult, "bad type tag in document", goerr.V("id", d.ID), goerr.V("type", d.Type))
	}

	return &model.RiskEntry{
		ID:                types.EntryID(d.ID),
		Name:              d.Name,
		Description:       d.Description,
		AssetName:         d.AssetName,
		ThreatDescription: d.ThreatDescription,
		Assessment:        assessment,
		Status:            types.RiskStatus(d.Status),
		Owner:             d.Owner,
		ReviewDate:        d.ReviewDate,
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
		Notes:             d.Notes,
	}, nil
}

func (f *Firestore) Load(ctx context.Context) ([]*model.RiskEntry, error) {
	iter := f.client.Collection(f.collection).OrderBy("seq", firestore.Asc).Documents(ctx)
	defer iter.Stop()

	var entries []*model.RiskEntry
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to iterate register")
		}

		var entryDoc entryDocument
		if err := doc.DataTo(&entryDoc); err != nil {
			return nil, goerr.Wrap(err, "failed to unmarshal register entry")
		}

		entry, err := entryDoc.toModel()
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	return entries, nil
}

func (f *Firestore) Save(ctx context.Context, entries []*model.RiskEntry) error {
	// Replace strategy: delete documents that are no longer present, then
	// write every entry with its sequence position.
	keep := make(map[string]bool, len(entries))
	for _, entry := range entries {
		keep[entry.ID.String()] = true
	}

	staleRefs, err := f.staleDocuments(ctx, keep)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(saveConcurrency)

	for _, ref := range staleRefs {
		g.Go(func() error {
			// A concurrent replace may have removed the document already
			if _, err := ref.Delete(ctx); err != nil && status.Code(err) != codes.NotFound {
				return goerr.Wrap(err, "failed to delete stale entry", goerr.V("doc", ref.ID))
			}
			return nil
		})
	}

	for seq, entry := range entries {
		doc, err := toDocument(entry, seq)
		if err != nil {
			return err
		}
		g.Go(func() error {
			ref := f.client.Collection(f.collection).Doc(doc.ID)
			if _, err := ref.Set(ctx, doc); err != nil {
				return goerr.Wrap(err, "failed to write register entry", goerr.V("id", doc.ID))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return goerr.Wrap(err, "failed to save register")
	}
	return nil
}

func (f *Firestore) Clear(ctx context.Context) error {
	refs, err := f.staleDocuments(ctx, nil)
	if err != nil {
		return err
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(saveConcurrency)
	for _, ref := range refs {
		g.Go(func() error {
			if _, err := ref.Delete(ctx); err != nil && status.Code(err) != codes.NotFound {
				return goerr.Wrap(err, "failed to delete entry", goerr.V("doc", ref.ID))
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return goerr.Wrap(err, "failed to clear register")
	}
	return nil
}

// staleDocuments lists document refs in the register collection that are not
// in keep. A nil keep returns every document.
func (f *Firestore) staleDocuments(ctx context.Context, keep map[string]bool) ([]*firestore.DocumentRef, error) {
	iter := f.client.Collection(f.collection).DocumentRefs(ctx)

	var refs []*firestore.DocumentRef
	for {
		ref, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, goerr.Wrap(err, "failed to list register documents")
		}
		if keep == nil || !keep[ref.ID] {
			refs = append(refs, ref)
		}
	}
	return refs, nil
}
