package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrQuotationNotFound        = errors.New("quotation not found")
	ErrInvalidQuotationID       = errors.New("invalid quotation id")
	ErrInvalidQuotationInput    = errors.New("invalid quotation input")
	ErrInvalidOptionIndex       = errors.New("invalid option index")
	ErrInvalidOptions           = errors.New("invalid price options")
	ErrInvalidQuotationReceiver = errors.New("invalid quotation receiver")
	ErrOptionSelectionLocked    = errors.New("option selection locked by existing payment")
	ErrQuotationNotPending      = errors.New("quotation is not pending")
)

// IQuotationUseCase exposes quotation operations.
//
// Approval is intentionally absent: a quotation is approved only as a side
// effect of payment creation (see PaymentUseCase).

type IQuotationUseCase interface {
	Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error)
	GetByID(ctx context.Context, id string) (entities.Quotation, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Quotation, error)
	SelectPriceOption(ctx context.Context, id string, option int) (entities.Quotation, error)
	SetPriceOptions(ctx context.Context, id string, options []entities.PriceOption, serviceFee float64) (entities.Quotation, error)
	SetReceiver(ctx context.Context, id string, receiver entities.Receiver) (entities.Quotation, error)
	Reject(ctx context.Context, id string) (entities.Quotation, error)
}

type QuotationUseCase struct {
	repo        interfaces.IQuotationRepository
	paymentRepo interfaces.IPaymentRepository
	draftStore  interfaces.IDraftStore
}

var _ IQuotationUseCase = (*QuotationUseCase)(nil)

func NewQuotationUseCase(repo interfaces.IQuotationRepository, paymentRepo interfaces.IPaymentRepository, draftStore interfaces.IDraftStore) *QuotationUseCase {
	return &QuotationUseCase{repo: repo, paymentRepo: paymentRepo, draftStore: draftStore}
}

func (u *QuotationUseCase) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	q.ProductName = strings.TrimSpace(q.ProductName)
	q.UserID = strings.TrimSpace(q.UserID)
	if q.UserID == "" || q.ProductName == "" || q.Quantity <= 0 {
		return entities.Quotation{}, ErrInvalidQuotationInput
	}

	now := time.Now().UTC()
	q.ID = uuid.NewString()
	q.RefCode = newRefCode("QT")
	q.Status = entities.QuotationStatusPending
	q.SelectedOption = 0
	q.CreatedAt = now
	q.UpdatedAt = now
	return u.repo.Create(ctx, q)
}

func (u *QuotationUseCase) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Quotation{}, ErrInvalidQuotationID
	}

	q, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if q.ID == "" {
		return entities.Quotation{}, ErrQuotationNotFound
	}
	return q, nil
}

func (u *QuotationUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Quotation, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidQuotationInput
	}
	return u.repo.ListByUserID(ctx, userID)
}

// SelectPriceOption marks exactly one of the quotation's options as selected.
//
// Selection is refused once any payment references the quotation: the paid
// amount was validated against the selected option and switching afterwards
// would silently desync the two.
func (u *QuotationUseCase) SelectPriceOption(ctx context.Context, id string, option int) (entities.Quotation, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if option < 1 || option > len(q.Options) {
		return entities.Quotation{}, ErrInvalidOptionIndex
	}

	payments, err := u.paymentRepo.ListReferencingQuotation(ctx, q.ID, q.RefCode)
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(payments) > 0 {
		log.Printf("[quotation][usecase] option selection locked quotation_id=%s payments=%d", q.ID, len(payments))
		return entities.Quotation{}, ErrOptionSelectionLocked
	}

	return u.repo.UpdateSelectedOption(ctx, q.ID, option)
}

// SetPriceOptions replaces the priced options on a quotation (admin pricing
// form). Option 1 is mandatory; option 3 requires option 2 to exist.
//
// A successful submission also clears the form's stored draft: non-empty
// draft fields win every merge, so a surviving draft would mask the values
// just submitted on the next Load.
func (u *QuotationUseCase) SetPriceOptions(ctx context.Context, id string, options []entities.PriceOption, serviceFee float64) (entities.Quotation, error) {
	if len(options) < 1 || len(options) > 3 || serviceFee < 0 {
		return entities.Quotation{}, ErrInvalidOptions
	}
	for i, opt := range options {
		if strings.TrimSpace(opt.Title) == "" || opt.UnitPrice <= 0 {
			log.Printf("[quotation][usecase] rejecting option %d: missing title or price quotation_id=%s", i+1, id)
			return entities.Quotation{}, ErrInvalidOptions
		}
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	updated, err := u.repo.UpdateOptions(ctx, q.ID, options, serviceFee)
	if err != nil {
		return entities.Quotation{}, err
	}
	u.clearDraft(ctx, q.ID)
	return updated, nil
}

// SetReceiver applies the receiver section of the quotation form and clears
// the form's stored draft, same as SetPriceOptions.
func (u *QuotationUseCase) SetReceiver(ctx context.Context, id string, receiver entities.Receiver) (entities.Quotation, error) {
	receiver.Name = strings.TrimSpace(receiver.Name)
	receiver.Phone = strings.TrimSpace(receiver.Phone)
	receiver.Address = strings.TrimSpace(receiver.Address)
	if receiver.Name == "" || receiver.Phone == "" || receiver.Address == "" {
		return entities.Quotation{}, ErrInvalidQuotationReceiver
	}

	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	updated, err := u.repo.UpdateReceiver(ctx, q.ID, receiver)
	if err != nil {
		return entities.Quotation{}, err
	}
	u.clearDraft(ctx, q.ID)
	return updated, nil
}

// clearDraft is best-effort: the authoritative write already landed, so a
// failed cleanup is logged for audit rather than surfaced.
func (u *QuotationUseCase) clearDraft(ctx context.Context, quotationID string) {
	key, err := quotationDraftKey(quotationID)
	if err != nil {
		return
	}
	if err := u.draftStore.Delete(ctx, key); err != nil {
		log.Printf("[quotation][usecase] draft cleanup failed quotation_id=%s err=%v", quotationID, err)
	}
}

func (u *QuotationUseCase) Reject(ctx context.Context, id string) (entities.Quotation, error) {
	q, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Quotation{}, err
	}
	if !q.Status.CanTransition(entities.QuotationStatusRejected) {
		return entities.Quotation{}, ErrQuotationNotPending
	}
	return u.repo.UpdateStatus(ctx, q.ID, entities.QuotationStatusRejected)
}

// newRefCode builds a human-facing reference code (e.g. QT-1A2B3C4D). It is
// generated independently from the primary key and never assumed equal to it.
func newRefCode(prefix string) string {
	return prefix + "-" + strings.ToUpper(uuid.NewString()[:8])
}
