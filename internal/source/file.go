package source

import (
	"context"
	"encoding/json"
	"os"

	"github.com/rotisserie/eris"

	"github.com/sells-group/leadflow-cli/internal/model"
)

// FileAdapter reads candidates from a JSON dump on disk. Scraper exports
// and hand-built fixtures both feed the pipeline through this path.
type FileAdapter struct {
	SourceName string
	Path       string
}

func (a FileAdapter) Name() string { return a.SourceName }

func (a FileAdapter) Candidates(ctx context.Context) ([]model.RawCandidate, error) {
	raw, err := os.ReadFile(a.Path)
	if err != nil {
		return nil, eris.Wrapf(err, "source: read candidate file %s", a.Path)
	}

	var candidates []model.RawCandidate
	if err := json.Unmarshal(raw, &candidates); err != nil {
		return nil, eris.Wrapf(err, "source: parse candidate file %s", a.Path)
	}
	return candidates, nil
}
