package visit

import (
	"time"

	"fieldcrm/internal/domain"
	"fieldcrm/internal/pkg/optional"
)

// Patch is a partial visit update. Every field distinguishes absent from
// explicit null so callers can clear a column without a magic sentinel.
type Patch struct {
	Status            optional.Field[domain.VisitStatus] `json:"status"`
	Completed         optional.Field[bool]               `json:"completed"`
	VisitSkipReason   optional.Field[string]             `json:"visit_skip_reason"`
	PaymentCollected  optional.Field[bool]               `json:"payment_collected"`
	PaymentType       optional.Field[domain.PaymentType] `json:"payment_type"`
	PaymentAmount     optional.Field[float64]            `json:"payment_amount"`
	PaymentSkipReason optional.Field[string]             `json:"payment_skip_reason"`
	CustomerRequest   optional.Field[string]             `json:"customer_request"`
	Note              optional.Field[string]             `json:"note"`
	QualityRating     optional.Field[int]                `json:"quality_rating"`
}

// BuildUpdate translates a patch into the column writes that keep the visit
// invariants intact. Exactly one status branch runs: an explicit status wins
// over the legacy completed flag. Timer columns are never touched here.
func BuildUpdate(current *domain.Visit, p Patch, now time.Time) (map[string]any, error) {
	writes := map[string]any{}

	switch {
	case p.Status.Present():
		status, ok := p.Status.Get()
		if !ok {
			// null is not a member of the status enum
			return nil, ErrValidation
		}
		switch status {
		case domain.VisitVisited:
			writes["status"] = string(domain.VisitVisited)
			writes["completed"] = true
			writes["completed_at"] = now
			writes["visit_skip_reason"] = nil
		case domain.VisitNotVisited:
			writes["status"] = string(domain.VisitNotVisited)
			writes["completed"] = false
			writes["completed_at"] = nil
			// payment state is unconditionally wiped on this transition
			writes["payment_collected"] = false
			writes["payment_type"] = nil
			writes["payment_amount"] = nil
			writes["payment_skip_reason"] = nil
			if reason, ok := p.VisitSkipReason.Get(); ok {
				writes["visit_skip_reason"] = reason
			}
		case domain.VisitPending:
			writes["status"] = string(domain.VisitPending)
			writes["completed"] = false
			writes["completed_at"] = nil
			writes["visit_skip_reason"] = nil
		default:
			return nil, ErrValidation
		}

	case p.Completed.Present():
		// back-compat path for pre-status clients
		done, ok := p.Completed.Get()
		if !ok {
			return nil, ErrValidation
		}
		if done {
			writes["status"] = string(domain.VisitVisited)
			writes["completed"] = true
			writes["completed_at"] = now
			writes["visit_skip_reason"] = nil
		} else {
			reason := ""
			if r, ok := p.VisitSkipReason.Get(); ok && r != "" {
				reason = r
			} else if current.VisitSkipReason != nil {
				reason = *current.VisitSkipReason
			}
			writes["completed"] = false
			writes["completed_at"] = nil
			if reason != "" {
				writes["status"] = string(domain.VisitNotVisited)
				writes["payment_collected"] = false
				writes["payment_type"] = nil
				writes["payment_amount"] = nil
				writes["payment_skip_reason"] = nil
			} else {
				writes["status"] = string(domain.VisitPending)
				writes["visit_skip_reason"] = nil
			}
		}
	}

	toNotVisited := writes["status"] == string(domain.VisitNotVisited)

	// Remaining patched scalars are written verbatim, explicit null included.
	// Fields already decided by the status branch above stay decided.
	putAbsent(writes, "visit_skip_reason", p.VisitSkipReason)
	put(writes, "note", p.Note)
	put(writes, "customer_request", p.CustomerRequest)
	put(writes, "quality_rating", p.QualityRating)

	if !toNotVisited {
		if p.PaymentCollected.Present() {
			collected, ok := p.PaymentCollected.Get()
			if !ok {
				return nil, ErrValidation
			}
			writes["payment_collected"] = collected
		}
		if t, ok := p.PaymentType.Get(); ok && !domain.IsValidPaymentType(t) {
			return nil, ErrValidation
		}
		if amount, ok := p.PaymentAmount.Get(); ok && amount < 0 {
			return nil, ErrValidation
		}
		put(writes, "payment_type", p.PaymentType)
		put(writes, "payment_amount", p.PaymentAmount)
		put(writes, "payment_skip_reason", p.PaymentSkipReason)
	}

	return writes, nil
}

// put writes a patched field verbatim, nil for explicit null.
func put[T any](writes map[string]any, col string, f optional.Field[T]) {
	if !f.Present() {
		return
	}
	if v, ok := f.Get(); ok {
		writes[col] = v
	} else {
		writes[col] = nil
	}
}

// putAbsent is put for columns a status branch may already own.
func putAbsent[T any](writes map[string]any, col string, f optional.Field[T]) {
	if _, decided := writes[col]; decided {
		return
	}
	put(writes, col, f)
}
