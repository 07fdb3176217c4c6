package source

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/sells-group/leadflow-cli/internal/model"
)

// Entity-name markers that separate companies from individual applicants
// on permit feeds.
var entityMarkers = []string{"LLC", "INC", "CORP", "CO", "COMPANY", "CONSTRUCTION", "BUILDER"}

// SocrataOptions configures a SocrataAdapter.
type SocrataOptions struct {
	SourceName string
	Endpoint   string
	City       string
	State      string
	DaysBack   int
	Limit      int
	UserAgent  string
	Timeout    time.Duration
}

// SocrataAdapter pulls building permits from a Socrata open-data portal.
// Rows without a company-shaped contractor name are dropped before they
// reach the pipeline.
type SocrataAdapter struct {
	opts    SocrataOptions
	client  *http.Client
	limiter *rate.Limiter
	now     func() time.Time
}

// NewSocrataAdapter creates a permit-feed adapter with sane defaults.
func NewSocrataAdapter(opts SocrataOptions) *SocrataAdapter {
	if opts.SourceName == "" {
		opts.SourceName = SourcePermits
	}
	if opts.DaysBack == 0 {
		opts.DaysBack = 7
	}
	if opts.Limit == 0 {
		opts.Limit = 100
	}
	if opts.UserAgent == "" {
		opts.UserAgent = "leadflow-cli/1.0"
	}
	if opts.Timeout == 0 {
		opts.Timeout = 30 * time.Second
	}
	return &SocrataAdapter{
		opts:    opts,
		client:  &http.Client{Timeout: opts.Timeout},
		limiter: rate.NewLimiter(2, 2),
		now:     time.Now,
	}
}

func (a *SocrataAdapter) Name() string { return a.opts.SourceName }

type permitRow struct {
	ContractorName  string `json:"contractor_name"`
	ApplicantName   string `json:"applicant_name"`
	PermitNumber    string `json:"permit_number"`
	IssueDate       string `json:"issue_date"`
	ZipCode         string `json:"zip_code"`
	ContractorPhone string `json:"contractor_phone"`
}

func (a *SocrataAdapter) Candidates(ctx context.Context) ([]model.RawCandidate, error) {
	if err := a.limiter.Wait(ctx); err != nil {
		return nil, eris.Wrap(err, "source: rate limit wait")
	}

	since := a.now().AddDate(0, 0, -a.opts.DaysBack).Format("2006-01-02T00:00:00")
	query := url.Values{}
	query.Set("$where", fmt.Sprintf("issue_date > '%s'", since))
	query.Set("$limit", fmt.Sprintf("%d", a.opts.Limit))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, a.opts.Endpoint+"?"+query.Encode(), nil)
	if err != nil {
		return nil, eris.Wrap(err, "source: build permit request")
	}
	req.Header.Set("User-Agent", a.opts.UserAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := a.client.Do(req)
	if err != nil {
		return nil, eris.Wrapf(err, "source: fetch permits for %s", a.opts.City)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		io.Copy(io.Discard, resp.Body)
		return nil, eris.Errorf("source: permit feed for %s returned %d", a.opts.City, resp.StatusCode)
	}

	var rows []permitRow
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, eris.Wrapf(err, "source: decode permit feed for %s", a.opts.City)
	}

	var candidates []model.RawCandidate
	for _, row := range rows {
		contractor := row.ContractorName
		if contractor == "" {
			contractor = row.ApplicantName
		}
		if len(contractor) < 3 || !looksLikeCompany(contractor) {
			continue
		}

		candidates = append(candidates, model.RawCandidate{
			CompanyName: contractor,
			City:        a.opts.City,
			State:       a.opts.State,
			Zip:         row.ZipCode,
			Phone:       row.ContractorPhone,
			NaturalKey:  row.PermitNumber,
			SignalType:  model.SignalBuildingPermit,
			SignalDate:  isoDate(row.IssueDate),
			RawData: map[string]any{
				"permit_number": row.PermitNumber,
				"issue_date":    row.IssueDate,
			},
		})
	}

	zap.L().Info("fetched permit feed",
		zap.String("city", a.opts.City),
		zap.Int("rows", len(rows)),
		zap.Int("candidates", len(candidates)),
	)
	return candidates, nil
}

func looksLikeCompany(name string) bool {
	upper := strings.ToUpper(name)
	for _, marker := range entityMarkers {
		if strings.Contains(upper, marker) {
			return true
		}
	}
	return false
}

// isoDate trims Socrata's timestamp suffix down to the date part.
func isoDate(ts string) string {
	if len(ts) > 10 {
		return ts[:10]
	}
	return ts
}
