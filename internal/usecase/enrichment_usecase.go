package usecase

import (
	"context"
	"log"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces"
)

// EnrichedPayment is a payment decorated with the records it weakly links to.
//
// The Resolved flags distinguish "fetched but empty" from "not fetched": a
// false flag means the decoration fetch for that collection failed and the
// attached value says nothing about what actually exists.
type EnrichedPayment struct {
	Payment            entities.Payment
	Quotations         []entities.Quotation
	QuotationsResolved bool
	Buyer              *entities.Profile
	BuyerResolved      bool
}

// EnrichedShipment is a shipment decorated with its quotation and owner.
type EnrichedShipment struct {
	Shipment          entities.Shipment
	Quotation         *entities.Quotation
	QuotationResolved bool
	Owner             *entities.Profile
	OwnerResolved     bool
}

// IEnrichmentUseCase reconciles the weakly-linked collections into per-order
// views. Fetch discipline: one batch request per target collection over the
// union of resolved identifiers (plus at most one batched reference-code
// fallback request), never one request per primary record.

type IEnrichmentUseCase interface {
	ListPaymentsOverview(ctx context.Context) ([]EnrichedPayment, error)
	ListShipmentsOverview(ctx context.Context) ([]EnrichedShipment, error)
}

type EnrichmentUseCase struct {
	paymentRepo   interfaces.IPaymentRepository
	shipmentRepo  interfaces.IShipmentRepository
	quotationRepo interfaces.IQuotationRepository
	profileRepo   interfaces.IProfileRepository
}

var _ IEnrichmentUseCase = (*EnrichmentUseCase)(nil)

func NewEnrichmentUseCase(
	paymentRepo interfaces.IPaymentRepository,
	shipmentRepo interfaces.IShipmentRepository,
	quotationRepo interfaces.IQuotationRepository,
	profileRepo interfaces.IProfileRepository,
) *EnrichmentUseCase {
	return &EnrichmentUseCase{
		paymentRepo:   paymentRepo,
		shipmentRepo:  shipmentRepo,
		quotationRepo: quotationRepo,
		profileRepo:   profileRepo,
	}
}

// quotationIndex resolves quotation lookups by primary key with a secondary
// reference-code path for legacy links.
type quotationIndex struct {
	byID      map[string]entities.Quotation
	byRefCode map[string]entities.Quotation
	idsOK     bool
	codesOK   bool
}

// ListPaymentsOverview fetches all payments (fatal on error) and decorates
// each with its quotations and buyer profile. Decoration failures are logged
// and reported through the Resolved flags instead of aborting the view.
func (u *EnrichmentUseCase) ListPaymentsOverview(ctx context.Context) ([]EnrichedPayment, error) {
	payments, err := u.paymentRepo.List(ctx)
	if err != nil {
		log.Printf("[enrichment][usecase] primary payments fetch failed err=%v", err)
		return nil, err
	}

	idUnion := make([]string, 0, len(payments))
	userUnion := make([]string, 0, len(payments))
	seenIDs := map[string]struct{}{}
	seenUsers := map[string]struct{}{}
	for _, p := range payments {
		for _, id := range p.QuotationRefs.Resolve() {
			if _, ok := seenIDs[id]; !ok {
				seenIDs[id] = struct{}{}
				idUnion = append(idUnion, id)
			}
		}
		if p.UserID != "" {
			if _, ok := seenUsers[p.UserID]; !ok {
				seenUsers[p.UserID] = struct{}{}
				userUnion = append(userUnion, p.UserID)
			}
		}
	}

	qIdx := u.fetchQuotationIndex(ctx, idUnion, fallbackCodesForPayments(payments))
	profiles, profilesOK := u.fetchProfileIndex(ctx, userUnion)

	out := make([]EnrichedPayment, 0, len(payments))
	for _, p := range payments {
		ep := EnrichedPayment{Payment: p}

		matched, resolved := qIdx.match(p.QuotationRefs.Resolve(), p.RefCode)
		ep.Quotations = matched
		ep.QuotationsResolved = resolved

		ep.BuyerResolved = profilesOK
		if profilesOK {
			if prof, ok := profiles[p.UserID]; ok {
				ep.Buyer = &prof
			}
		}
		out = append(out, ep)
	}
	return out, nil
}

// ListShipmentsOverview fetches all shipments (fatal on error) and decorates
// each with its quotation and owning profile.
func (u *EnrichmentUseCase) ListShipmentsOverview(ctx context.Context) ([]EnrichedShipment, error) {
	shipments, err := u.shipmentRepo.List(ctx)
	if err != nil {
		log.Printf("[enrichment][usecase] primary shipments fetch failed err=%v", err)
		return nil, err
	}

	idUnion := make([]string, 0, len(shipments))
	userUnion := make([]string, 0, len(shipments))
	seenIDs := map[string]struct{}{}
	seenUsers := map[string]struct{}{}
	for _, s := range shipments {
		if s.QuotationRef != "" {
			if _, ok := seenIDs[s.QuotationRef]; !ok {
				seenIDs[s.QuotationRef] = struct{}{}
				idUnion = append(idUnion, s.QuotationRef)
			}
		}
		if s.UserID != "" {
			if _, ok := seenUsers[s.UserID]; !ok {
				seenUsers[s.UserID] = struct{}{}
				userUnion = append(userUnion, s.UserID)
			}
		}
	}

	// A shipment's quotation_ref may itself be a reference code on legacy
	// rows, so the same union doubles as the fallback code set.
	qIdx := u.fetchQuotationIndex(ctx, idUnion, idUnion)
	profiles, profilesOK := u.fetchProfileIndex(ctx, userUnion)

	out := make([]EnrichedShipment, 0, len(shipments))
	for _, s := range shipments {
		es := EnrichedShipment{Shipment: s}

		var refs []string
		if s.QuotationRef != "" {
			refs = []string{s.QuotationRef}
		}
		matched, resolved := qIdx.match(refs, s.QuotationRef)
		if len(matched) > 0 {
			es.Quotation = &matched[0]
		}
		es.QuotationResolved = resolved

		es.OwnerResolved = profilesOK
		if profilesOK {
			if prof, ok := profiles[s.UserID]; ok {
				es.Owner = &prof
			}
		}
		out = append(out, es)
	}
	return out, nil
}

func (u *EnrichmentUseCase) fetchQuotationIndex(ctx context.Context, ids, fallbackCodes []string) quotationIndex {
	idx := quotationIndex{
		byID:      map[string]entities.Quotation{},
		byRefCode: map[string]entities.Quotation{},
		idsOK:     true,
		codesOK:   true,
	}

	if len(ids) > 0 {
		quotations, err := u.quotationRepo.GetByIDs(ctx, ids)
		if err != nil {
			log.Printf("[enrichment][usecase] quotation batch fetch failed ids=%d err=%v", len(ids), err)
			idx.idsOK = false
		}
		for _, q := range quotations {
			idx.byID[q.ID] = q
		}
	}

	if len(fallbackCodes) > 0 {
		quotations, err := u.quotationRepo.GetByRefCodes(ctx, fallbackCodes)
		if err != nil {
			log.Printf("[enrichment][usecase] quotation refcode fetch failed codes=%d err=%v", len(fallbackCodes), err)
			idx.codesOK = false
		}
		for _, q := range quotations {
			if q.RefCode != "" {
				idx.byRefCode[q.RefCode] = q
			}
		}
	}

	return idx
}

// match looks each candidate id up by primary key, falling back to the
// reference-code column only when the primary path yields zero matches for
// this record. Ids that match nothing are silently dropped: a record may
// legitimately reference a deleted or not-yet-visible quotation.
func (idx quotationIndex) match(ids []string, fallbackCode string) ([]entities.Quotation, bool) {
	if !idx.idsOK {
		return nil, false
	}

	matched := make([]entities.Quotation, 0, len(ids))
	seen := map[string]struct{}{}
	for _, id := range ids {
		q, ok := idx.byID[id]
		if !ok {
			continue
		}
		if _, dup := seen[q.ID]; dup {
			continue
		}
		seen[q.ID] = struct{}{}
		matched = append(matched, q)
	}
	if len(matched) > 0 {
		return matched, true
	}

	if fallbackCode != "" {
		if !idx.codesOK {
			return nil, false
		}
		if q, ok := idx.byRefCode[fallbackCode]; ok {
			return []entities.Quotation{q}, true
		}
	}
	return matched, true
}

// fallbackCodesForPayments collects the secondary keys of payments that could
// need the reference-code path, so the fallback stays a single batch request.
func fallbackCodesForPayments(payments []entities.Payment) []string {
	codes := make([]string, 0)
	seen := map[string]struct{}{}
	for _, p := range payments {
		if p.RefCode == "" {
			continue
		}
		if _, ok := seen[p.RefCode]; ok {
			continue
		}
		seen[p.RefCode] = struct{}{}
		codes = append(codes, p.RefCode)
	}
	return codes
}

func (u *EnrichmentUseCase) fetchProfileIndex(ctx context.Context, ids []string) (map[string]entities.Profile, bool) {
	idx := map[string]entities.Profile{}
	if len(ids) == 0 {
		return idx, true
	}

	profiles, err := u.profileRepo.GetByIDs(ctx, ids)
	if err != nil {
		log.Printf("[enrichment][usecase] profile batch fetch failed ids=%d err=%v", len(ids), err)
		return idx, false
	}
	for _, p := range profiles {
		idx[p.ID] = p
	}
	return idx, true
}
