package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	mock_interfaces "github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestQuotationUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), entities.Quotation{UserID: "u1", Quantity: 2})
		if !errors.Is(err, ErrInvalidQuotationInput) {
			t.Fatalf("expected ErrInvalidQuotationInput, got %v", err)
		}
	})

	t.Run("server-assigned fields", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil)

		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, q entities.Quotation) (entities.Quotation, error) {
				if q.ID == "" {
					t.Fatalf("id must be assigned")
				}
				if !strings.HasPrefix(q.RefCode, "QT-") {
					t.Fatalf("unexpected ref code: %s", q.RefCode)
				}
				if q.Status != entities.QuotationStatusPending || q.SelectedOption != 0 {
					t.Fatalf("unexpected initial state: %+v", q)
				}
				if q.CreatedAt.IsZero() || q.UpdatedAt.IsZero() {
					t.Fatalf("timestamps must be set")
				}
				return q, nil
			},
		)

		q, err := uc.Create(context.Background(), entities.Quotation{
			UserID:      "u1",
			ProductName: " widget ",
			Quantity:    2,
			// Client-supplied status must be ignored.
			Status: entities.QuotationStatusApproved,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.ProductName != "widget" {
			t.Fatalf("expected trimmed product name, got %q", q.ProductName)
		}
	})
}

func TestQuotationUseCase_SelectPriceOption(t *testing.T) {
	base := entities.Quotation{
		ID:      "q1",
		RefCode: "QT-1A2B3C4D",
		Status:  entities.QuotationStatusPending,
		Options: []entities.PriceOption{{Title: "o1", UnitPrice: 10}, {Title: "o2", UnitPrice: 20}},
	}

	t.Run("out of range option", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(base, nil)

		_, err := uc.SelectPriceOption(context.Background(), "q1", 3)
		if !errors.Is(err, ErrInvalidOptionIndex) {
			t.Fatalf("expected ErrInvalidOptionIndex, got %v", err)
		}
	})

	t.Run("locked once a payment references the quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewQuotationUseCase(repo, paymentRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(base, nil)
		paymentRepo.EXPECT().ListReferencingQuotation(gomock.Any(), "q1", "QT-1A2B3C4D").Return([]entities.Payment{{ID: "p1"}}, nil)

		_, err := uc.SelectPriceOption(context.Background(), "q1", 1)
		if !errors.Is(err, ErrOptionSelectionLocked) {
			t.Fatalf("expected ErrOptionSelectionLocked, got %v", err)
		}
	})

	t.Run("success without referencing payments", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewQuotationUseCase(repo, paymentRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(base, nil)
		paymentRepo.EXPECT().ListReferencingQuotation(gomock.Any(), "q1", "QT-1A2B3C4D").Return(nil, nil)
		selected := base
		selected.SelectedOption = 2
		repo.EXPECT().UpdateSelectedOption(gomock.Any(), "q1", 2).Return(selected, nil)

		q, err := uc.SelectPriceOption(context.Background(), "q1", 2)
		if err != nil || q.SelectedOption != 2 {
			t.Fatalf("unexpected result err=%v q=%+v", err, q)
		}
	})

	t.Run("lock check failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		paymentRepo := mock_interfaces.NewMockIPaymentRepository(ctrl)
		uc := NewQuotationUseCase(repo, paymentRepo, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(base, nil)
		paymentRepo.EXPECT().ListReferencingQuotation(gomock.Any(), "q1", "QT-1A2B3C4D").Return(nil, errors.New("db"))

		_, err := uc.SelectPriceOption(context.Background(), "q1", 1)
		if err == nil || err.Error() != "db" {
			t.Fatalf("expected db error, got %v", err)
		}
	})
}

func TestQuotationUseCase_SetPriceOptions(t *testing.T) {
	valid := []entities.PriceOption{{Title: "o1", UnitPrice: 10}}

	t.Run("zero options refused", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		if _, err := uc.SetPriceOptions(context.Background(), "q1", nil, 0); !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("expected ErrInvalidOptions, got %v", err)
		}
	})

	t.Run("more than three options refused", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		four := []entities.PriceOption{{Title: "a", UnitPrice: 1}, {Title: "b", UnitPrice: 1}, {Title: "c", UnitPrice: 1}, {Title: "d", UnitPrice: 1}}
		if _, err := uc.SetPriceOptions(context.Background(), "q1", four, 0); !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("expected ErrInvalidOptions, got %v", err)
		}
	})

	t.Run("option without price refused", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		bad := []entities.PriceOption{{Title: "o1", UnitPrice: 10}, {Title: "o2"}}
		if _, err := uc.SetPriceOptions(context.Background(), "q1", bad, 0); !errors.Is(err, ErrInvalidOptions) {
			t.Fatalf("expected ErrInvalidOptions, got %v", err)
		}
	})

	t.Run("success clears the stored draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		store := mock_interfaces.NewMockIDraftStore(ctrl)
		uc := NewQuotationUseCase(repo, nil, store)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quotation{ID: "q1"}, nil)
		repo.EXPECT().UpdateOptions(gomock.Any(), "q1", valid, 5.0).Return(entities.Quotation{ID: "q1", Options: valid, ServiceFee: 5}, nil)
		// A surviving draft would mask the just-submitted values on the next
		// merge-on-load, so submission must delete the key.
		store.EXPECT().Delete(gomock.Any(), "draft:quotation:q1").Return(nil)

		q, err := uc.SetPriceOptions(context.Background(), "q1", valid, 5)
		if err != nil || len(q.Options) != 1 {
			t.Fatalf("unexpected result err=%v q=%+v", err, q)
		}
	})

	t.Run("draft cleanup failure does not fail the submission", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		store := mock_interfaces.NewMockIDraftStore(ctrl)
		uc := NewQuotationUseCase(repo, nil, store)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quotation{ID: "q1"}, nil)
		repo.EXPECT().UpdateOptions(gomock.Any(), "q1", valid, 5.0).Return(entities.Quotation{ID: "q1", Options: valid, ServiceFee: 5}, nil)
		store.EXPECT().Delete(gomock.Any(), "draft:quotation:q1").Return(errors.New("redis down"))

		if _, err := uc.SetPriceOptions(context.Background(), "q1", valid, 5); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("failed write leaves the draft alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		store := mock_interfaces.NewMockIDraftStore(ctrl)
		uc := NewQuotationUseCase(repo, nil, store)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quotation{ID: "q1"}, nil)
		repo.EXPECT().UpdateOptions(gomock.Any(), "q1", valid, 5.0).Return(entities.Quotation{}, errors.New("db"))

		if _, err := uc.SetPriceOptions(context.Background(), "q1", valid, 5); err == nil {
			t.Fatalf("expected error")
		}
	})
}

func TestQuotationUseCase_SetReceiver(t *testing.T) {
	receiver := entities.Receiver{Name: "A. Receiver", Phone: "+212600000000", Address: "12 Harbor Rd"}

	t.Run("all fields required", func(t *testing.T) {
		uc := NewQuotationUseCase(nil, nil, nil)
		partial := entities.Receiver{Name: "A. Receiver", Phone: "  "}
		if _, err := uc.SetReceiver(context.Background(), "q1", partial); !errors.Is(err, ErrInvalidQuotationReceiver) {
			t.Fatalf("expected ErrInvalidQuotationReceiver, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quotation{}, nil)

		if _, err := uc.SetReceiver(context.Background(), "q1", receiver); !errors.Is(err, ErrQuotationNotFound) {
			t.Fatalf("expected ErrQuotationNotFound, got %v", err)
		}
	})

	t.Run("applies receiver and clears the stored draft", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		store := mock_interfaces.NewMockIDraftStore(ctrl)
		uc := NewQuotationUseCase(repo, nil, store)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quotation{ID: "q1"}, nil)
		repo.EXPECT().UpdateReceiver(gomock.Any(), "q1", receiver).Return(entities.Quotation{ID: "q1", Receiver: receiver}, nil)
		store.EXPECT().Delete(gomock.Any(), "draft:quotation:q1").Return(nil)

		q, err := uc.SetReceiver(context.Background(), "q1", receiver)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if q.Receiver != receiver {
			t.Fatalf("unexpected receiver: %+v", q.Receiver)
		}
	})

	t.Run("trims before validating", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		store := mock_interfaces.NewMockIDraftStore(ctrl)
		uc := NewQuotationUseCase(repo, nil, store)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quotation{ID: "q1"}, nil)
		repo.EXPECT().UpdateReceiver(gomock.Any(), "q1", receiver).Return(entities.Quotation{ID: "q1", Receiver: receiver}, nil)
		store.EXPECT().Delete(gomock.Any(), "draft:quotation:q1").Return(nil)

		padded := entities.Receiver{Name: " A. Receiver ", Phone: " +212600000000 ", Address: " 12 Harbor Rd "}
		if _, err := uc.SetReceiver(context.Background(), "q1", padded); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})
}

func TestQuotationUseCase_Reject(t *testing.T) {
	t.Run("pending quotation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quotation{ID: "q1", Status: entities.QuotationStatusPending}, nil)
		repo.EXPECT().UpdateStatus(gomock.Any(), "q1", entities.QuotationStatusRejected).Return(entities.Quotation{ID: "q1", Status: entities.QuotationStatusRejected}, nil)

		q, err := uc.Reject(context.Background(), "q1")
		if err != nil || q.Status != entities.QuotationStatusRejected {
			t.Fatalf("unexpected result err=%v q=%+v", err, q)
		}
	})

	t.Run("already approved", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIQuotationRepository(ctrl)
		uc := NewQuotationUseCase(repo, nil, nil)

		repo.EXPECT().GetByID(gomock.Any(), "q1").Return(entities.Quotation{ID: "q1", Status: entities.QuotationStatusApproved}, nil)

		if _, err := uc.Reject(context.Background(), "q1"); !errors.Is(err, ErrQuotationNotPending) {
			t.Fatalf("expected ErrQuotationNotPending, got %v", err)
		}
	})
}

func TestNewRefCode(t *testing.T) {
	code := newRefCode("QT")
	if !strings.HasPrefix(code, "QT-") || len(code) != len("QT-")+8 {
		t.Fatalf("unexpected ref code: %s", code)
	}
	if code != strings.ToUpper(code) {
		t.Fatalf("ref code must be upper case: %s", code)
	}
	if code == newRefCode("QT") {
		t.Fatalf("ref codes must not repeat")
	}
}
