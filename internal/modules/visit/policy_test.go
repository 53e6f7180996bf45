package visit

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"fieldcrm/internal/domain"
	"fieldcrm/internal/pkg/optional"
)

var testNow = time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC)

func TestBuildUpdate_VisitedSetsCompletedAtAndClearsSkip(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Status: optional.Of(domain.VisitVisited),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "visited", writes["status"])
	assert.Equal(t, true, writes["completed"])
	assert.Equal(t, testNow, writes["completed_at"])
	assert.Nil(t, writes["visit_skip_reason"])
}

func TestBuildUpdate_NotVisitedWipesPaymentRegardlessOfPatch(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Status:           optional.Of(domain.VisitNotVisited),
		PaymentCollected: optional.Of(true),
		PaymentType:      optional.Of(domain.PaymentCash),
		PaymentAmount:    optional.Of(500.0),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "not_visited", writes["status"])
	assert.Equal(t, false, writes["payment_collected"])
	assert.Nil(t, writes["payment_type"])
	assert.Nil(t, writes["payment_amount"])
	assert.Nil(t, writes["payment_skip_reason"])
}

func TestBuildUpdate_NotVisitedKeepsPatchedSkipReason(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Status:          optional.Of(domain.VisitNotVisited),
		VisitSkipReason: optional.Of("closed"),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "closed", writes["visit_skip_reason"])
}

func TestBuildUpdate_PendingClearsEverything(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Status: optional.Of(domain.VisitPending),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "pending", writes["status"])
	assert.Equal(t, false, writes["completed"])
	assert.Nil(t, writes["completed_at"])
	assert.Nil(t, writes["visit_skip_reason"])
}

func TestBuildUpdate_RoundTripVisitedThenPendingReverses(t *testing.T) {
	first, err := BuildUpdate(&domain.Visit{}, Patch{
		Status: optional.Of(domain.VisitVisited),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, true, first["completed"])
	assert.NotNil(t, first["completed_at"])

	second, err := BuildUpdate(&domain.Visit{
		Status:    domain.VisitVisited,
		Completed: true,
	}, Patch{
		Status: optional.Of(domain.VisitPending),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, false, second["completed"])
	assert.Nil(t, second["completed_at"])
}

func TestBuildUpdate_NullStatusIsRejected(t *testing.T) {
	_, err := BuildUpdate(&domain.Visit{}, Patch{
		Status: optional.Null[domain.VisitStatus](),
	}, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildUpdate_UnknownStatusIsRejected(t *testing.T) {
	_, err := BuildUpdate(&domain.Visit{}, Patch{
		Status: optional.Of(domain.VisitStatus("maybe")),
	}, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildUpdate_LegacyCompletedTrueMapsToVisited(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Completed: optional.Of(true),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "visited", writes["status"])
	assert.Equal(t, true, writes["completed"])
	assert.NotNil(t, writes["completed_at"])
}

func TestBuildUpdate_LegacyCompletedFalseWithReasonIsNotVisited(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Completed:       optional.Of(false),
		VisitSkipReason: optional.Of("no owner"),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "not_visited", writes["status"])
	assert.Equal(t, false, writes["payment_collected"])
	assert.Nil(t, writes["payment_amount"])
	assert.Equal(t, "no owner", writes["visit_skip_reason"])
}

func TestBuildUpdate_LegacyCompletedFalseUsesCurrentReason(t *testing.T) {
	reason := "closed"
	writes, err := BuildUpdate(&domain.Visit{VisitSkipReason: &reason}, Patch{
		Completed: optional.Of(false),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "not_visited", writes["status"])
}

func TestBuildUpdate_LegacyCompletedFalseNoReasonIsPending(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Completed: optional.Of(false),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "pending", writes["status"])
}

func TestBuildUpdate_ExplicitStatusWinsOverCompleted(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Status:    optional.Of(domain.VisitVisited),
		Completed: optional.Of(false),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "visited", writes["status"])
	assert.Equal(t, true, writes["completed"])
}

func TestBuildUpdate_ScalarsWrittenVerbatim(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Note:            optional.Of("left samples"),
		CustomerRequest: optional.Of("more stock"),
		QualityRating:   optional.Of(4),
		PaymentAmount:   optional.Of(150.5),
	}, testNow)
	assert.NoError(t, err)
	assert.Equal(t, "left samples", writes["note"])
	assert.Equal(t, "more stock", writes["customer_request"])
	assert.Equal(t, 4, writes["quality_rating"])
	assert.Equal(t, 150.5, writes["payment_amount"])
}

func TestBuildUpdate_ExplicitNullClearsScalar(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{
		Note:          optional.Null[string](),
		QualityRating: optional.Null[int](),
	}, testNow)
	assert.NoError(t, err)
	note, noted := writes["note"]
	assert.True(t, noted)
	assert.Nil(t, note)
	rating, rated := writes["quality_rating"]
	assert.True(t, rated)
	assert.Nil(t, rating)
}

func TestBuildUpdate_AbsentFieldsWriteNothing(t *testing.T) {
	writes, err := BuildUpdate(&domain.Visit{}, Patch{}, testNow)
	assert.NoError(t, err)
	assert.Empty(t, writes)
}

func TestBuildUpdate_InvalidPaymentTypeRejected(t *testing.T) {
	_, err := BuildUpdate(&domain.Visit{}, Patch{
		PaymentType: optional.Of(domain.PaymentType("Bitcoin")),
	}, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestBuildUpdate_NegativeAmountRejected(t *testing.T) {
	_, err := BuildUpdate(&domain.Visit{}, Patch{
		PaymentAmount: optional.Of(-1.0),
	}, testNow)
	assert.ErrorIs(t, err, ErrValidation)
}

func TestPatch_JSONDistinguishesNullFromAbsent(t *testing.T) {
	var p Patch
	err := json.Unmarshal([]byte(`{"note": null, "payment_amount": 20}`), &p)
	assert.NoError(t, err)
	assert.True(t, p.Note.Present())
	assert.True(t, p.Note.Null())
	assert.False(t, p.CustomerRequest.Present())

	amount, ok := p.PaymentAmount.Get()
	assert.True(t, ok)
	assert.Equal(t, 20.0, amount)
}
