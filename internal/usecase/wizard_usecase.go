package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strconv"
	"sync"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces"
)

var ErrSubmissionInFlight = errors.New("submission already in flight")

const wizardStepCount = 3

// ValidationError reports which form field blocked a step advance. It is
// local and synchronous; it never reaches the remote layer.
type ValidationError struct {
	Step   int
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("step %d: %s %s", e.Step, e.Field, e.Reason)
}

// IWizardUseCase drives the strictly linear quotation-creation wizard. The
// draft spans all steps and survives reloads; the only remote side effect is
// the quotation insert at final submission, so an abandoned wizard leaves no
// partial remote records.

type IWizardUseCase interface {
	Load(ctx context.Context, userID string) (entities.QuotationDraft, error)
	Advance(ctx context.Context, userID string, draft entities.QuotationDraft) (entities.QuotationDraft, error)
	Back(ctx context.Context, userID string, draft entities.QuotationDraft) (entities.QuotationDraft, error)
	Submit(ctx context.Context, userID string, draft entities.QuotationDraft) (entities.Quotation, error)
	Cancel(ctx context.Context, userID string) error
}

type WizardUseCase struct {
	store       interfaces.IDraftStore
	quotationUC IQuotationUseCase

	mu       sync.Mutex
	inFlight map[string]bool
}

var _ IWizardUseCase = (*WizardUseCase)(nil)

func NewWizardUseCase(store interfaces.IDraftStore, quotationUC IQuotationUseCase) *WizardUseCase {
	return &WizardUseCase{
		store:       store,
		quotationUC: quotationUC,
		inFlight:    map[string]bool{},
	}
}

func (u *WizardUseCase) Load(ctx context.Context, userID string) (entities.QuotationDraft, error) {
	key, err := wizardDraftKey(userID)
	if err != nil {
		return entities.QuotationDraft{}, err
	}

	draft, ok, err := u.store.Get(ctx, key)
	if err != nil {
		return entities.QuotationDraft{}, err
	}
	if !ok || draft.Step < 1 {
		draft.Step = 1
	}
	return draft, nil
}

// Advance validates the current step and, on success, persists the draft one
// step forward. On a validation failure the step does not change and the
// submitted field values are still persisted (write-through).
func (u *WizardUseCase) Advance(ctx context.Context, userID string, draft entities.QuotationDraft) (entities.QuotationDraft, error) {
	key, err := wizardDraftKey(userID)
	if err != nil {
		return entities.QuotationDraft{}, err
	}
	if draft.Step < 1 {
		draft.Step = 1
	}

	if vErr := validateWizardStep(draft, draft.Step); vErr != nil {
		if err := u.store.Set(ctx, key, draft); err != nil {
			return entities.QuotationDraft{}, err
		}
		return draft, vErr
	}

	if draft.Step < wizardStepCount {
		draft.Step++
	}
	if err := u.store.Set(ctx, key, draft); err != nil {
		return entities.QuotationDraft{}, err
	}
	return draft, nil
}

// Back is always permitted and never validated.
func (u *WizardUseCase) Back(ctx context.Context, userID string, draft entities.QuotationDraft) (entities.QuotationDraft, error) {
	key, err := wizardDraftKey(userID)
	if err != nil {
		return entities.QuotationDraft{}, err
	}

	if draft.Step > 1 {
		draft.Step--
	} else {
		draft.Step = 1
	}
	if err := u.store.Set(ctx, key, draft); err != nil {
		return entities.QuotationDraft{}, err
	}
	return draft, nil
}

// Submit re-confirms every step's validation, creates the quotation and clears
// the draft. A second submission for the same draft key is refused while one
// is in flight; payment-style writes are not idempotent.
func (u *WizardUseCase) Submit(ctx context.Context, userID string, draft entities.QuotationDraft) (entities.Quotation, error) {
	key, err := wizardDraftKey(userID)
	if err != nil {
		return entities.Quotation{}, err
	}

	if !u.begin(key) {
		return entities.Quotation{}, ErrSubmissionInFlight
	}
	defer u.end(key)

	for step := 1; step <= wizardStepCount; step++ {
		if vErr := validateWizardStep(draft, step); vErr != nil {
			return entities.Quotation{}, vErr
		}
	}

	quantity, _ := strconv.Atoi(draft.Quantity)
	q := entities.Quotation{
		UserID:         userID,
		ProductName:    draft.ProductName,
		ProductLink:    draft.ProductLink,
		Quantity:       quantity,
		Destination:    draft.Destination,
		ShippingMethod: draft.ShippingMethod,
		Receiver: entities.Receiver{
			Name:    draft.Receiver.Name,
			Phone:   draft.Receiver.Phone,
			Address: draft.Receiver.Address,
		},
	}

	created, err := u.quotationUC.Create(ctx, q)
	if err != nil {
		return entities.Quotation{}, err
	}

	if err := u.store.Delete(ctx, key); err != nil {
		// The quotation exists; a stale draft is an audit concern, not a
		// submission failure.
		log.Printf("[wizard][usecase] draft cleanup failed key=%s quotation_id=%s err=%v", key, created.ID, err)
	}
	return created, nil
}

func (u *WizardUseCase) Cancel(ctx context.Context, userID string) error {
	key, err := wizardDraftKey(userID)
	if err != nil {
		return err
	}
	return u.store.Delete(ctx, key)
}

func (u *WizardUseCase) begin(key string) bool {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.inFlight[key] {
		return false
	}
	u.inFlight[key] = true
	return true
}

func (u *WizardUseCase) end(key string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	delete(u.inFlight, key)
}

func validateWizardStep(d entities.QuotationDraft, step int) *ValidationError {
	switch step {
	case 1:
		if d.ProductName == "" {
			return &ValidationError{Step: 1, Field: "product_name", Reason: "is required"}
		}
		quantity, err := strconv.Atoi(d.Quantity)
		if err != nil || quantity <= 0 {
			return &ValidationError{Step: 1, Field: "quantity", Reason: "must be a positive integer"}
		}
	case 2:
		if d.Destination == "" {
			return &ValidationError{Step: 2, Field: "destination", Reason: "is required"}
		}
		if d.ShippingMethod == "" {
			return &ValidationError{Step: 2, Field: "shipping_method", Reason: "is required"}
		}
	case 3:
		if d.Receiver.Name == "" {
			return &ValidationError{Step: 3, Field: "receiver.name", Reason: "is required"}
		}
		if d.Receiver.Phone == "" {
			return &ValidationError{Step: 3, Field: "receiver.phone", Reason: "is required"}
		}
		if d.Receiver.Address == "" {
			return &ValidationError{Step: 3, Field: "receiver.address", Reason: "is required"}
		}
	}
	return nil
}
