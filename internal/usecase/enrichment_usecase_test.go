package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	mock_interfaces "github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type enrichmentMocks struct {
	paymentRepo   *mock_interfaces.MockIPaymentRepository
	shipmentRepo  *mock_interfaces.MockIShipmentRepository
	quotationRepo *mock_interfaces.MockIQuotationRepository
	profileRepo   *mock_interfaces.MockIProfileRepository
}

func newEnrichmentUseCase(ctrl *gomock.Controller) (*EnrichmentUseCase, enrichmentMocks) {
	m := enrichmentMocks{
		paymentRepo:   mock_interfaces.NewMockIPaymentRepository(ctrl),
		shipmentRepo:  mock_interfaces.NewMockIShipmentRepository(ctrl),
		quotationRepo: mock_interfaces.NewMockIQuotationRepository(ctrl),
		profileRepo:   mock_interfaces.NewMockIProfileRepository(ctrl),
	}
	return NewEnrichmentUseCase(m.paymentRepo, m.shipmentRepo, m.quotationRepo, m.profileRepo), m
}

func TestEnrichmentUseCase_ListPaymentsOverview(t *testing.T) {
	t.Run("one batch fetch per collection", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEnrichmentUseCase(ctrl)

		payments := []entities.Payment{
			{ID: "p1", UserID: "u1", RefCode: "PAY-1", QuotationRefs: entities.RefsFromIDs("q1", "q2")},
			{ID: "p2", UserID: "u2", RefCode: "PAY-2", QuotationRefs: entities.RefsFromIDs("q2", "q3")},
			{ID: "p3", UserID: "u1", RefCode: "PAY-3", QuotationRefs: entities.RefsFromString("q1")},
		}
		m.paymentRepo.EXPECT().List(gomock.Any()).Return(payments, nil)
		// Exactly one id batch over the deduplicated union, one refcode batch
		// and one profile batch, regardless of how many payments there are.
		m.quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1", "q2", "q3"}).Return([]entities.Quotation{
			{ID: "q1", RefCode: "QT-1"},
			{ID: "q2", RefCode: "QT-2"},
		}, nil)
		m.quotationRepo.EXPECT().GetByRefCodes(gomock.Any(), []string{"PAY-1", "PAY-2", "PAY-3"}).Return(nil, nil)
		m.profileRepo.EXPECT().GetByIDs(gomock.Any(), []string{"u1", "u2"}).Return([]entities.Profile{{ID: "u1", Name: "User One"}}, nil)

		out, err := uc.ListPaymentsOverview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out) != 3 {
			t.Fatalf("expected 3 enriched payments, got %d", len(out))
		}

		if len(out[0].Quotations) != 2 || !out[0].QuotationsResolved {
			t.Fatalf("unexpected p1 quotations: %+v", out[0])
		}
		// q3 matches nothing and is silently dropped.
		if len(out[1].Quotations) != 1 || out[1].Quotations[0].ID != "q2" {
			t.Fatalf("unexpected p2 quotations: %+v", out[1].Quotations)
		}
		if out[0].Buyer == nil || out[0].Buyer.Name != "User One" {
			t.Fatalf("expected buyer profile for p1: %+v", out[0].Buyer)
		}
		// u2 has no profile row; still resolved, just absent.
		if out[1].Buyer != nil || !out[1].BuyerResolved {
			t.Fatalf("unexpected p2 buyer: %+v", out[1])
		}
	})

	t.Run("refcode fallback only when ids match nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEnrichmentUseCase(ctrl)

		// Legacy row: quotation_refs carries the quotation's ref code, so the
		// primary lookup misses and the payment's own ref code resolves it.
		payments := []entities.Payment{
			{ID: "p1", UserID: "u1", RefCode: "PAY-OLD", QuotationRefs: entities.RefsFromString("QT-9")},
		}
		m.paymentRepo.EXPECT().List(gomock.Any()).Return(payments, nil)
		m.quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"QT-9"}).Return(nil, nil)
		m.quotationRepo.EXPECT().GetByRefCodes(gomock.Any(), []string{"PAY-OLD"}).Return([]entities.Quotation{
			{ID: "q9", RefCode: "PAY-OLD"},
		}, nil)
		m.profileRepo.EXPECT().GetByIDs(gomock.Any(), []string{"u1"}).Return(nil, nil)

		out, err := uc.ListPaymentsOverview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out[0].Quotations) != 1 || out[0].Quotations[0].ID != "q9" {
			t.Fatalf("expected refcode fallback match, got %+v", out[0].Quotations)
		}
		if !out[0].QuotationsResolved {
			t.Fatalf("expected quotations resolved")
		}
	})

	t.Run("decoration failure sets resolved flags false", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEnrichmentUseCase(ctrl)

		payments := []entities.Payment{
			{ID: "p1", UserID: "u1", RefCode: "PAY-1", QuotationRefs: entities.RefsFromIDs("q1")},
		}
		m.paymentRepo.EXPECT().List(gomock.Any()).Return(payments, nil)
		m.quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1"}).Return(nil, errors.New("batch failed"))
		m.quotationRepo.EXPECT().GetByRefCodes(gomock.Any(), []string{"PAY-1"}).Return(nil, nil)
		m.profileRepo.EXPECT().GetByIDs(gomock.Any(), []string{"u1"}).Return(nil, errors.New("batch failed"))

		out, err := uc.ListPaymentsOverview(context.Background())
		if err != nil {
			t.Fatalf("decoration failures must not abort the view: %v", err)
		}
		if out[0].QuotationsResolved || out[0].BuyerResolved {
			t.Fatalf("expected resolved flags false: %+v", out[0])
		}
		if len(out[0].Quotations) != 0 || out[0].Buyer != nil {
			t.Fatalf("expected no attachments: %+v", out[0])
		}
	})

	t.Run("primary fetch failure is fatal", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEnrichmentUseCase(ctrl)

		m.paymentRepo.EXPECT().List(gomock.Any()).Return(nil, errors.New("down"))

		if _, err := uc.ListPaymentsOverview(context.Background()); err == nil {
			t.Fatalf("expected error")
		}
	})

	t.Run("no payments means no batch fetches", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEnrichmentUseCase(ctrl)

		m.paymentRepo.EXPECT().List(gomock.Any()).Return(nil, nil)

		out, err := uc.ListPaymentsOverview(context.Background())
		if err != nil || len(out) != 0 {
			t.Fatalf("unexpected result err=%v out=%+v", err, out)
		}
	})
}

func TestEnrichmentUseCase_ListShipmentsOverview(t *testing.T) {
	t.Run("quotation and owner attached", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEnrichmentUseCase(ctrl)

		shipments := []entities.Shipment{
			{ID: "s1", QuotationRef: "q1", UserID: "u1", Status: entities.ShipmentStatusInTransit},
			{ID: "s2", QuotationRef: "QT-2", UserID: "u1", Status: entities.ShipmentStatusWaiting},
		}
		m.shipmentRepo.EXPECT().List(gomock.Any()).Return(shipments, nil)
		m.quotationRepo.EXPECT().GetByIDs(gomock.Any(), []string{"q1", "QT-2"}).Return([]entities.Quotation{{ID: "q1"}}, nil)
		// s2 links by reference code; the same union doubles as the fallback set.
		m.quotationRepo.EXPECT().GetByRefCodes(gomock.Any(), []string{"q1", "QT-2"}).Return([]entities.Quotation{{ID: "q2", RefCode: "QT-2"}}, nil)
		m.profileRepo.EXPECT().GetByIDs(gomock.Any(), []string{"u1"}).Return([]entities.Profile{{ID: "u1"}}, nil)

		out, err := uc.ListShipmentsOverview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0].Quotation == nil || out[0].Quotation.ID != "q1" {
			t.Fatalf("expected primary match for s1: %+v", out[0].Quotation)
		}
		if out[1].Quotation == nil || out[1].Quotation.ID != "q2" {
			t.Fatalf("expected refcode match for s2: %+v", out[1].Quotation)
		}
		if out[0].Owner == nil || out[1].Owner == nil {
			t.Fatalf("expected owner profiles attached")
		}
	})

	t.Run("shipment without quotation ref", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc, m := newEnrichmentUseCase(ctrl)

		shipments := []entities.Shipment{{ID: "s1", Status: entities.ShipmentStatusWaiting}}
		m.shipmentRepo.EXPECT().List(gomock.Any()).Return(shipments, nil)

		out, err := uc.ListShipmentsOverview(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out[0].Quotation != nil || !out[0].QuotationResolved {
			t.Fatalf("expected no quotation but resolved: %+v", out[0])
		}
	})
}
