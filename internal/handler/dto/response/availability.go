package response

import (
	"event-booking-engine/internal/domain/availability"
	"event-booking-engine/internal/pkg/errs"
	"event-booking-engine/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type AvailabilityResponse struct {
	Department      string `json:"department"`
	RequirementID   string `json:"requirementId"`
	RequirementName string `json:"requirementName"`
	Date            string `json:"date"`
	Available       bool   `json:"available"`
	Quantity        int    `json:"quantity"`
	Notes           string `json:"notes,omitempty"`
}

type BulkResultResponse struct {
	Operation      string            `json:"operation"`
	TotalDates     int               `json:"totalDates"`
	AffectedDates  int               `json:"affectedDates"`
	UpsertedCount  int               `json:"upsertedCount"`
	DeletedCount   int               `json:"deletedCount"`
	ProtectedDates []string          `json:"protectedDates,omitempty"`
	Failures       []BulkDateFailure `json:"failures,omitempty"`
}

type BulkDateFailure struct {
	Date  string `json:"date"`
	Error string `json:"error"`
}

func FromAvailabilityView(view *queries.AvailabilityView) (*AvailabilityResponse, error) {
	resp := &AvailabilityResponse{}
	if err := copier.Copy(resp, view); err != nil {
		return nil, errs.Wrap(err, "failed to map availability view")
	}
	resp.Date = view.Date.Format("2006-01-02")
	return resp, nil
}

func FromBulkResult(result *availability.BulkResult) *BulkResultResponse {
	resp := &BulkResultResponse{
		Operation:     result.Operation.String(),
		TotalDates:    result.TotalDates,
		AffectedDates: result.AffectedDates,
		UpsertedCount: result.UpsertedCount,
		DeletedCount:  result.DeletedCount,
	}
	for _, d := range result.ProtectedDates {
		resp.ProtectedDates = append(resp.ProtectedDates, d.Format("2006-01-02"))
	}
	for _, f := range result.Failures {
		resp.Failures = append(resp.Failures, BulkDateFailure{
			Date:  f.Date.Format("2006-01-02"),
			Error: f.Err,
		})
	}
	return resp
}
