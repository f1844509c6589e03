package usecase

import (
	"context"
	"errors"
	"log"
	"math"
	"strings"
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrPaymentNotFound        = errors.New("payment not found")
	ErrInvalidPaymentID       = errors.New("invalid payment id")
	ErrInvalidPaymentInput    = errors.New("invalid payment input")
	ErrNoQuotationRefs        = errors.New("payment references no quotations")
	ErrPaymentAmountMismatch  = errors.New("payment amount does not match quotation totals")
	ErrPaymentAlreadyReviewed = errors.New("payment already reviewed")
)

// amountTolerance absorbs float rounding when comparing a submitted total
// against the sum computed from quotation options.
const amountTolerance = 0.005

// IPaymentUseCase encapsulates payment creation and admin review.

type IPaymentUseCase interface {
	Create(ctx context.Context, input CreatePaymentInput) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	ListByUser(ctx context.Context, userID string) ([]entities.Payment, error)
	Approve(ctx context.Context, id string) (entities.Payment, error)
	Reject(ctx context.Context, id string) (entities.Payment, error)
}

type CreatePaymentInput struct {
	UserID        string
	Method        string
	Amount        float64
	QuotationRefs entities.RefDescriptor
	ProofKey      string
}

type PaymentUseCase struct {
	repo          interfaces.IPaymentRepository
	quotationRepo interfaces.IQuotationRepository

	// asyncExec runs the post-commit side effects. Tests replace it with an
	// inline call to observe ordering deterministically.
	asyncExec func(fn func())
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(repo interfaces.IPaymentRepository, quotationRepo interfaces.IQuotationRepository) *PaymentUseCase {
	return &PaymentUseCase{
		repo:          repo,
		quotationRepo: quotationRepo,
		asyncExec:     func(fn func()) { go fn() },
	}
}

// Create validates and persists a payment, then approves the referenced
// quotations as a detached follow-up.
//
// Ordering contract: the payment write must succeed and be returned to the
// caller before any quotation status update is attempted. The updates are
// best-effort with per-step retries; a quotation left Pending against an
// existing payment is tolerated and logged, never rolled back.
func (u *PaymentUseCase) Create(ctx context.Context, input CreatePaymentInput) (entities.Payment, error) {
	input.UserID = strings.TrimSpace(input.UserID)
	input.Method = strings.TrimSpace(input.Method)
	if input.UserID == "" || input.Method == "" || input.Amount <= 0 {
		return entities.Payment{}, ErrInvalidPaymentInput
	}

	ids := input.QuotationRefs.Resolve()
	if len(ids) == 0 {
		return entities.Payment{}, ErrNoQuotationRefs
	}

	log.Printf("[payment][usecase] create start user_id=%s refs=%d amount=%.2f", input.UserID, len(ids), input.Amount)
	quotations, err := u.quotationRepo.GetByIDs(ctx, ids)
	if err != nil {
		log.Printf("[payment][usecase] loading quotations failed user_id=%s err=%v", input.UserID, err)
		return entities.Payment{}, err
	}
	if len(quotations) == 0 {
		return entities.Payment{}, ErrQuotationNotFound
	}

	var total float64
	for _, q := range quotations {
		total += q.SelectedTotal()
	}
	if math.Abs(total-input.Amount) > amountTolerance {
		log.Printf("[payment][usecase] amount mismatch user_id=%s expected=%.2f got=%.2f", input.UserID, total, input.Amount)
		return entities.Payment{}, ErrPaymentAmountMismatch
	}

	p := entities.Payment{
		ID:            uuid.NewString(),
		UserID:        input.UserID,
		Amount:        input.Amount,
		Method:        input.Method,
		Status:        entities.PaymentStatusPending,
		RefCode:       newRefCode("PAY"),
		QuotationRefs: entities.RefsFromIDs(ids...),
		ProofKey:      input.ProofKey,
		CreatedAt:     time.Now().UTC(),
	}

	created, err := u.repo.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] create failed user_id=%s err=%v", input.UserID, err)
		return entities.Payment{}, err
	}
	log.Printf("[payment][usecase] create success payment_id=%s ref_code=%s", created.ID, created.RefCode)

	steps := u.approvalSteps(created.ID, quotations)
	u.asyncExec(func() { runSideEffects("payment", steps) })

	return created, nil
}

func (u *PaymentUseCase) approvalSteps(paymentID string, quotations []entities.Quotation) []sideEffectStep {
	steps := make([]sideEffectStep, 0, len(quotations))
	for _, q := range quotations {
		if !q.Status.CanTransition(entities.QuotationStatusApproved) {
			log.Printf("[payment][usecase] skipping approval quotation_id=%s status=%s payment_id=%s", q.ID, q.Status, paymentID)
			continue
		}
		quotationID := q.ID
		steps = append(steps, sideEffectStep{
			Name:     "approve-quotation:" + quotationID,
			Attempts: 3,
			Backoff:  time.Second,
			Run: func(ctx context.Context) error {
				_, err := u.quotationRepo.UpdateStatus(ctx, quotationID, entities.QuotationStatusApproved)
				return err
			},
		})
	}
	return steps
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, ErrInvalidPaymentID
	}

	p, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) ListByUser(ctx context.Context, userID string) ([]entities.Payment, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return nil, ErrInvalidPaymentInput
	}
	return u.repo.ListByUserID(ctx, userID)
}

func (u *PaymentUseCase) Approve(ctx context.Context, id string) (entities.Payment, error) {
	return u.review(ctx, id, entities.PaymentStatusApproved)
}

func (u *PaymentUseCase) Reject(ctx context.Context, id string) (entities.Payment, error) {
	return u.review(ctx, id, entities.PaymentStatusRejected)
}

func (u *PaymentUseCase) review(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	p, err := u.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if !p.Status.CanTransition(status) {
		return entities.Payment{}, ErrPaymentAlreadyReviewed
	}
	return u.repo.UpdateStatus(ctx, p.ID, status)
}
