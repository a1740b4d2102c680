package history

import (
	"strings"
	"sync"
	"time"

	"github.com/aleister1102/phishscan/internal/common"
	"github.com/aleister1102/phishscan/internal/models"
	"github.com/go-playground/validator/v10"
)

// DateLayout is the accepted format for date bounds.
const DateLayout = "2006-01-02"

var (
	validate     *validator.Validate
	validateOnce sync.Once
)

func queryValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
	})
	return validate
}

// QueryInput holds the raw strings a user typed for a history listing.
type QueryInput struct {
	Search   string
	Category string
	Sort     string
	From     string
	To       string
}

// ParseQuery builds a HistoryQuery from raw strings. Dates are parsed in loc
// (time.Local when nil). Unknown categories or sort keys are validation errors.
func ParseQuery(in QueryInput, loc *time.Location) (models.HistoryQuery, error) {
	if loc == nil {
		loc = time.Local
	}

	q := models.HistoryQuery{
		SearchTerm: strings.TrimSpace(in.Search),
		Category:   models.Category(strings.ToLower(strings.TrimSpace(in.Category))),
		SortKey:    models.SortKey(strings.ToLower(strings.TrimSpace(in.Sort))),
	}

	from, err := parseDate("from", in.From, loc)
	if err != nil {
		return models.HistoryQuery{}, err
	}
	to, err := parseDate("to", in.To, loc)
	if err != nil {
		return models.HistoryQuery{}, err
	}
	q.DateFrom, q.DateTo = from, to

	if err := Validate(q); err != nil {
		return models.HistoryQuery{}, err
	}
	return q, nil
}

// Validate checks the enumerated fields of q and that the range is not inverted.
func Validate(q models.HistoryQuery) error {
	if err := queryValidator().Struct(q); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return common.NewValidationError(strings.ToLower(fe.Field()), fe.Value(), "must be one of: "+fe.Param())
		}
		return common.WrapError(err, "validate history query")
	}
	if q.DateFrom != nil && q.DateTo != nil && q.DateFrom.After(models.EndOfDay(*q.DateTo)) {
		return common.NewValidationError("date_from", q.DateFrom.Format(DateLayout), "start date is after end date")
	}
	return nil
}

func parseDate(field, raw string, loc *time.Location) (*time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation(DateLayout, raw, loc)
	if err != nil {
		return nil, common.NewValidationError(field, raw, "expected a date in YYYY-MM-DD format")
	}
	return &t, nil
}
