package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	mock_interfaces "github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

// inlineExec makes the detached side effects run synchronously so tests can
// observe their ordering relative to the payment write.
func inlineExec(u *PaymentUseCase) *PaymentUseCase {
	u.asyncExec = func(fn func()) { fn() }
	return u
}

func pendingQuotation(id string, total float64) entities.Quotation {
	return entities.Quotation{
		ID:             id,
		RefCode:        "QT-" + id,
		Status:         entities.QuotationStatusPending,
		Quantity:       1,
		SelectedOption: 1,
		Options:        []entities.PriceOption{{Title: "o1", UnitPrice: total}},
	}
}

func TestPaymentUseCase_Create_Validations(t *testing.T) {
	t.Run("missing user id", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePaymentInput{Method: "wire", Amount: 10, QuotationRefs: entities.RefsFromIDs("q1")})
		if !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})

	t.Run("non-positive amount", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePaymentInput{UserID: "u1", Method: "wire", Amount: 0, QuotationRefs: entities.RefsFromIDs("q1")})
		if !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})

	t.Run("no quotation refs", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		_, err := uc.Create(context.Background(), CreatePaymentInput{UserID: "u1", Method: "wire", Amount: 10})
		if !errors.Is(err, ErrNoQuotationRefs) {
			t.Fatalf("expected ErrNoQuotationRefs, got %v", err)
		}
	})

	t.Run("no referenced quotation exists", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewPaymentUseCase(repo, quotationRepo)

		quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1"}).Return(nil, nil)

		_, err := uc.Create(context.Background(), CreatePaymentInput{UserID: "u1", Method: "wire", Amount: 10, QuotationRefs: entities.RefsFromIDs("q1")})
		if !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("quotation fetch error is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewPaymentUseCase(repo, quotationRepo)

		quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1"}).Return(nil, errors.New("db"))

		_, err := uc.Create(context.Background(), CreatePaymentInput{UserID: "u1", Method: "wire", Amount: 10, QuotationRefs: entities.RefsFromIDs("q1")})
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})

	t.Run("amount mismatch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewPaymentUseCase(repo, quotationRepo)

		quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1"}).Return([]entities.Quotation{pendingQuotation("q1", 50)}, nil)

		_, err := uc.Create(context.Background(), CreatePaymentInput{UserID: "u1", Method: "wire", Amount: 49, QuotationRefs: entities.RefsFromIDs("q1")})
		if !errors.Is(err, ErrPaymentAmountMismatch) {
			t.Fatalf("expected ErrPaymentAmountMismatch, got %v", err)
		}
	})

	t.Run("sub-cent difference tolerated", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := inlineExec(NewPaymentUseCase(repo, quotationRepo))

		quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1"}).Return([]entities.Quotation{pendingQuotation("q1", 50)}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		quotationRepo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuotationStatusApproved).Return(entities.Quotation{}, nil)

		_, err := uc.Create(context.Background(), CreatePaymentInput{UserID: "u1", Method: "wire", Amount: 50.004, QuotationRefs: entities.RefsFromIDs("q1")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_Create_SideEffectOrdering(t *testing.T) {
	t.Run("payment write precedes quotation approvals", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := inlineExec(NewPaymentUseCase(repo, quotationRepo))

		var order []string
		quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1", "q2"}).Return([]entities.Quotation{
			pendingQuotation("q1", 30),
			pendingQuotation("q2", 20),
		}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				order = append(order, "payment-write")
				return p, nil
			},
		)
		quotationRepo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuotationStatusApproved).DoAndReturn(
			func(_ context.Context, id string, _ entities.QuotationStatus) (entities.Quotation, error) {
				order = append(order, "approve-"+id)
				return entities.Quotation{}, nil
			},
		)
		quotationRepo.EXPECT().UpdateStatus(gomock.Any(), "q2", entities.QuotationStatusApproved).DoAndReturn(
			func(_ context.Context, id string, _ entities.QuotationStatus) (entities.Quotation, error) {
				order = append(order, "approve-"+id)
				return entities.Quotation{}, nil
			},
		)

		created, err := uc.Create(context.Background(), CreatePaymentInput{
			UserID: "u1", Method: "wire", Amount: 50,
			QuotationRefs: entities.RefsFromString("q1, q2"),
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" || created.Status != entities.PaymentStatusPending {
			t.Fatalf("unexpected payment: %+v", created)
		}
		if len(order) != 3 || order[0] != "payment-write" || order[1] != "approve-q1" || order[2] != "approve-q2" {
			t.Fatalf("unexpected order: %v", order)
		}
	})

	t.Run("approval failure does not fail the payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := inlineExec(NewPaymentUseCase(repo, quotationRepo))

		quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1"}).Return([]entities.Quotation{pendingQuotation("q1", 50)}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		// First attempt fails, retry succeeds.
		gomock.InOrder(
			quotationRepo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuotationStatusApproved).Return(entities.Quotation{}, errors.New("throttled")),
			quotationRepo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuotationStatusApproved).Return(entities.Quotation{}, nil),
		)

		created, err := uc.Create(context.Background(), CreatePaymentInput{UserID: "u1", Method: "wire", Amount: 50, QuotationRefs: entities.RefsFromIDs("q1")})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID == "" {
			t.Fatalf("expected created payment")
		}
	})

	t.Run("non-pending quotations are skipped", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		quotationRepo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := inlineExec(NewPaymentUseCase(repo, quotationRepo))

		approved := pendingQuotation("q1", 50)
		approved.Status = entities.QuotationStatusApproved
		quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1"}).Return([]entities.Quotation{approved}, nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil },
		)
		// No UpdateStatus expectation: an already-approved quotation must not
		// be touched again.

		if _, err := uc.Create(context.Background(), CreatePaymentInput{UserID: "u1", Method: "wire", Amount: 50, QuotationRefs: entities.RefsFromIDs("q1")}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestPaymentUseCase_Review(t *testing.T) {
	t.Run("approve pending payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Payment{ID: "p1", Status: entities.PaymentStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "p1", entities.PaymentStatusApproved).Return(entities.Payment{ID: "p1", Status: entities.PaymentStatusApproved}, nil)

		p, err := uc.Approve(context.Background(), "p1")
		if err != nil || p.Status != entities.PaymentStatusApproved {
			t.Fatalf("unexpected result err=%v p=%+v", err, p)
		}
	})

	t.Run("reject already reviewed payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Payment{ID: "p1", Status: entities.PaymentStatusApproved}, nil)

		_, err := uc.Reject(context.Background(), "p1")
		if !errors.Is(err, ErrPaymentAlreadyReviewed) {
			t.Fatalf("expected ErrPaymentAlreadyReviewed, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Payment{}, nil)

		_, err := uc.Approve(context.Background(), "p1")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_Getters(t *testing.T) {
	t.Run("GetByID invalid", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		if _, err := uc.GetByID(context.Background(), " "); !errors.Is(err, ErrInvalidPaymentID) {
			t.Fatalf("expected ErrInvalidPaymentID, got %v", err)
		}
	})

	t.Run("GetByID trims input", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewPaymentUseCase(repo, nil)
		repo.EXPECT().GetByID(gomock.Any(), "p1").Return(entities.Payment{ID: "p1"}, nil)

		p, err := uc.GetByID(context.Background(), " p1 ")
		if err != nil || p.ID != "p1" {
			t.Fatalf("unexpected result err=%v p=%+v", err, p)
		}
	})

	t.Run("ListByUser invalid", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil)
		if _, err := uc.ListByUser(context.Background(), ""); !errors.Is(err, ErrInvalidPaymentInput) {
			t.Fatalf("expected ErrInvalidPaymentInput, got %v", err)
		}
	})
}
