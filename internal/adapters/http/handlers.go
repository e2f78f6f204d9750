package httpadapter

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
	"github.com/rs/zerolog"

	"backstage/internal/api"
	"backstage/internal/domain"
	"backstage/internal/ports"
)

// failure has the shape of every generated default response, so it
// converts to each of them.
type failure struct {
	Body       api.ResultEnvelope
	StatusCode int
}

func failed(ctx context.Context, err error) failure {
	status, msg := describe(ctx, err)
	if status >= http.StatusInternalServerError {
		zerolog.Ctx(ctx).Error().Err(err).Int("status", status).Msg("request failed")
	}
	return failure{Body: api.ResultEnvelope{Success: false, Error: &msg}, StatusCode: status}
}

func (s *Server) GetHealthz(_ context.Context, _ api.GetHealthzRequestObject) (api.GetHealthzResponseObject, error) {
	ok := "ok"
	return api.GetHealthz200JSONResponse{Status: &ok}, nil
}

func (s *Server) GetInsights(ctx context.Context, _ api.GetInsightsRequestObject) (api.GetInsightsResponseObject, error) {
	res, err := s.insights.Analyze(ctx)
	if err != nil {
		return api.GetInsightsdefaultJSONResponse(failed(ctx, err)), nil
	}
	return api.GetInsights200JSONResponse(toAnalysis(res)), nil
}

func (s *Server) QuoteFee(_ context.Context, req api.QuoteFeeRequestObject) (api.QuoteFeeResponseObject, error) {
	b := req.Body
	quote := s.licensing.Quote(domain.FeeParams{
		BaseFee:     b.BaseFee,
		Territory:   b.Territory,
		Duration:    b.Duration,
		MediaType:   b.MediaType,
		Exclusivity: deref(b.Exclusivity),
	})
	return api.QuoteFee200JSONResponse(toFeeBreakdown(quote)), nil
}

func (s *Server) CreateLicense(ctx context.Context, req api.CreateLicenseRequestObject) (api.CreateLicenseResponseObject, error) {
	b := req.Body
	id, err := s.licensing.CreateProposal(ctx, SessionFrom(ctx), domain.NewProposal{
		WorkID:      uuidString(b.WorkId),
		Title:       b.Title,
		Licensee:    b.Licensee,
		ProjectName: deref(b.ProjectName),
		Territory:   b.Territory,
		Duration:    b.Duration,
		MediaType:   b.MediaType,
		Exclusive:   deref(b.Exclusive),
		BaseFee:     b.BaseFee,
		Notes:       deref(b.Notes),
	})
	if err != nil {
		return api.CreateLicensedefaultJSONResponse(failed(ctx, err)), nil
	}
	return api.CreateLicense201JSONResponse{Success: true, ProposalId: &id}, nil
}

func (s *Server) GetLicense(ctx context.Context, req api.GetLicenseRequestObject) (api.GetLicenseResponseObject, error) {
	lic, err := s.licensing.GetLicense(ctx, req.Id.String())
	if err != nil {
		return api.GetLicensedefaultJSONResponse(failed(ctx, err)), nil
	}
	return api.GetLicense200JSONResponse{Success: true, Data: toLicense(lic)}, nil
}

func (s *Server) ListLicenses(ctx context.Context, req api.ListLicensesRequestObject) (api.ListLicensesResponseObject, error) {
	var f ports.LicenseFilter
	if p := req.Params.Status; p != nil {
		st, ok := domain.ParseLicenseStatus(string(*p))
		if !ok {
			return api.ListLicensesdefaultJSONResponse(failed(ctx, domain.Invalid("unknown status %q", *p))), nil
		}
		f.Status = st
	}
	if p := req.Params.WorkId; p != nil {
		f.WorkID = p.String()
	}
	if p := req.Params.Limit; p != nil {
		f.Limit = *p
	}

	list, err := s.licensing.ListLicenses(ctx, f)
	if err != nil {
		return api.ListLicensesdefaultJSONResponse(failed(ctx, err)), nil
	}
	out := make([]api.License, 0, len(list))
	for _, l := range list {
		out = append(out, toLicense(l))
	}
	return api.ListLicenses200JSONResponse{Success: true, Data: out}, nil
}

func (s *Server) UpdateLicenseStatus(ctx context.Context, req api.UpdateLicenseStatusRequestObject) (api.UpdateLicenseStatusResponseObject, error) {
	id := req.Id.String()
	st, ok := domain.ParseLicenseStatus(string(req.Body.Status))
	if !ok {
		return api.UpdateLicenseStatusdefaultJSONResponse(failed(ctx, domain.Invalid("unknown status %q", req.Body.Status))), nil
	}
	if err := s.licensing.UpdateStatus(ctx, SessionFrom(ctx), id, st, req.Body.Notes); err != nil {
		return api.UpdateLicenseStatusdefaultJSONResponse(failed(ctx, err)), nil
	}
	return api.UpdateLicenseStatus200JSONResponse{Success: true, ProposalId: &id}, nil
}

func (s *Server) ActivateLicense(ctx context.Context, req api.ActivateLicenseRequestObject) (api.ActivateLicenseResponseObject, error) {
	id := req.Id.String()
	if err := s.licensing.Activate(ctx, SessionFrom(ctx), id); err != nil {
		return api.ActivateLicensedefaultJSONResponse(failed(ctx, err)), nil
	}
	return api.ActivateLicense200JSONResponse{Success: true, ProposalId: &id}, nil
}

func (s *Server) ExpireLicenses(ctx context.Context, _ api.ExpireLicensesRequestObject) (api.ExpireLicensesResponseObject, error) {
	if !SessionFrom(ctx).IsAdmin {
		return api.ExpireLicensesdefaultJSONResponse(failed(ctx, domain.ErrForbidden)), nil
	}
	n, err := s.licensing.DeactivateExpired(ctx)
	if err != nil {
		return api.ExpireLicensesdefaultJSONResponse(failed(ctx, err)), nil
	}
	return api.ExpireLicenses200JSONResponse{Success: true, Deactivated: n}, nil
}

func toAnalysis(a domain.Analysis) api.Analysis {
	out := api.Analysis{
		Insights:        toInsights(a.Insights),
		Inconsistencies: toInsights(a.Inconsistencies),
		Opportunities:   toInsights(a.Opportunities),
		Alerts:          toInsights(a.Alerts),
		Summary: api.Summary{
			Total:    a.Summary.Total,
			Critical: a.Summary.Critical,
			Warning:  a.Summary.Warning,
			Info:     a.Summary.Info,
		},
	}
	if len(a.Unavailable) > 0 {
		out.Unavailable = &a.Unavailable
	}
	return out
}

func toInsights(in []domain.Insight) []api.Insight {
	out := make([]api.Insight, 0, len(in))
	for _, i := range in {
		refs := make([]api.EntityRef, 0, len(i.RelatedEntities))
		for _, e := range i.RelatedEntities {
			refs = append(refs, api.EntityRef{Type: e.Type, Id: e.ID, Name: e.Name})
		}
		out = append(out, api.Insight{
			Id:              i.ID,
			Category:        api.InsightCategory(i.Category),
			Severity:        api.InsightSeverity(i.Severity),
			Title:           i.Title,
			Description:     i.Description,
			Module:          i.Module,
			Actionable:      i.Actionable,
			SuggestedAction: i.SuggestedAction,
			RelatedEntities: refs,
		})
	}
	return out
}

func toFeeBreakdown(f domain.FeeBreakdown) api.FeeBreakdown {
	lines := make([]api.FeeComponent, 0, len(f.Breakdown))
	for _, c := range f.Breakdown {
		lines = append(lines, api.FeeComponent{Component: c.Component, Value: c.Value, Multiplier: c.Multiplier})
	}
	return api.FeeBreakdown{
		BaseFee:               f.BaseFee,
		TerritoryMultiplier:   f.TerritoryMultiplier,
		DurationMultiplier:    f.DurationMultiplier,
		MediaTypeMultiplier:   f.MediaTypeMultiplier,
		ExclusivityMultiplier: f.ExclusivityMultiplier,
		TotalFee:              f.TotalFee,
		Breakdown:             lines,
	}
}

func toLicense(l domain.License) api.License {
	return api.License{
		Id:          l.ID,
		WorkId:      l.WorkID,
		Title:       l.Title,
		Licensee:    l.Licensee,
		ProjectName: l.ProjectName,
		Territory:   l.Territory,
		Duration:    l.Duration,
		MediaType:   l.MediaType,
		Exclusive:   l.Exclusive,
		BaseFee:     l.BaseFee,
		TotalFee:    l.TotalFee,
		Status:      api.LicenseStatus(l.Status),
		Notes:       l.Notes,
		StartDate:   toDate(l.StartDate),
		EndDate:     toDate(l.EndDate),
		SignedDate:  toDate(l.SignedDate),
		SignedBy:    l.SignedBy,
		CreatedBy:   l.CreatedBy,
		CreatedAt:   l.CreatedAt,
		UpdatedAt:   l.UpdatedAt,
	}
}

func toDate(t *time.Time) *openapi_types.Date {
	if t == nil {
		return nil
	}
	return &openapi_types.Date{Time: *t}
}

// uuidString leaves a missing id blank so validation reports it as
// required rather than as the nil uuid.
func uuidString(id openapi_types.UUID) string {
	if id == (openapi_types.UUID{}) {
		return ""
	}
	return id.String()
}

func deref[T any](p *T) T {
	var zero T
	if p == nil {
		return zero
	}
	return *p
}

// badRequest answers bodies and parameters the generated binding could
// not decode.
func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	writeError(w, r, domain.Invalid("%v", err))
}

// writeError renders err as a failed envelope outside a typed response.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	res := failed(r.Context(), err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(res.StatusCode)
	_ = json.NewEncoder(w).Encode(res.Body)
}
