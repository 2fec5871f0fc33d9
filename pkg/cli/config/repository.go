package config

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/riskops-lab/themis/pkg/domain/interfaces"
	"github.com/riskops-lab/themis/pkg/repository/firestore"
	"github.com/riskops-lab/themis/pkg/repository/localfile"
	"github.com/riskops-lab/themis/pkg/repository/memory"
	"github.com/riskops-lab/themis/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Repository holds CLI flags for repository backend configuration
type Repository struct {
	backend    string
	path       string
	projectID  string
	databaseID string
	collection string
}

// Flags returns CLI flags for repository configuration
func (r *Repository) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "repository-backend",
			Usage:       "Repository backend type (localfile, firestore or memory)",
			Value:       "localfile",
			Category:    "Repository",
			Sources:     cli.EnvVars("THEMIS_REPOSITORY_BACKEND"),
			Destination: &r.backend,
		},
		&cli.StringFlag{
			Name:        "register-path",
			Usage:       "Register file path (used by the localfile backend)",
			Value:       "risk_register.json",
			Category:    "Repository",
			Sources:     cli.EnvVars("THEMIS_REGISTER_PATH"),
			Destination: &r.path,
		},
		&cli.StringFlag{
			Name:        "firestore-project-id",
			Usage:       "Firestore Project ID (required when using firestore backend)",
			Category:    "Repository",
			Sources:     cli.EnvVars("THEMIS_FIRESTORE_PROJECT_ID"),
			Destination: &r.projectID,
		},
		&cli.StringFlag{
			Name:        "firestore-database-id",
			Usage:       "Firestore Database ID",
			Category:    "Repository",
			Sources:     cli.EnvVars("THEMIS_FIRESTORE_DATABASE_ID"),
			Destination: &r.databaseID,
		},
		&cli.StringFlag{
			Name:        "firestore-collection",
			Usage:       "Firestore collection holding the register",
			Category:    "Repository",
			Sources:     cli.EnvVars("THEMIS_FIRESTORE_COLLECTION"),
			Destination: &r.collection,
		},
	}
}

// Backend returns the configured backend type
func (r *Repository) Backend() string {
	return r.backend
}

// Configure initializes and returns a repository based on the configured
// backend. The caller is responsible for calling Close() on the returned
// repository.
func (r *Repository) Configure(ctx context.Context) (interfaces.Repository, error) {
	switch r.backend {
	case "firestore":
		if r.projectID == "" {
			return nil, goerr.Wrap(ErrInvalidConfig, "firestore-project-id is required when using firestore backend")
		}
		var opts []firestore.Option
		if r.collection != "" {
			opts = append(opts, firestore.WithCollection(r.collection))
		}
		repo, err := firestore.New(ctx, r.projectID, r.databaseID, opts...)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize firestore repository")
		}
		logging.Default().Info("Using Firestore repository",
			"project_id", r.projectID,
			"database_id", r.databaseID,
		)
		return repo, nil

	case "localfile":
		if r.path == "" {
			return nil, goerr.Wrap(ErrInvalidConfig, "register-path is required when using localfile backend")
		}
		repo, err := localfile.New(r.path)
		if err != nil {
			return nil, goerr.Wrap(err, "failed to initialize local file repository")
		}
		logging.Default().Info("Using local file repository", "path", r.path)
		return repo, nil

	case "memory":
		logging.Default().Info("Using in-memory repository (development mode)")
		return memory.New(), nil

	default:
		return nil, goerr.Wrap(ErrInvalidConfig, "invalid repository backend", goerr.V("backend", r.backend))
	}
}
