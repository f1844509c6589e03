package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces"
)

var ErrInvalidDraftKey = errors.New("invalid draft key")

// Draft store key templates, scoped per record identity. Only one form per
// record is ever open at a time, so no cross-key locking is needed.
const (
	keyQuotationDraft = "draft:quotation:%s"
	keyWizardDraft    = "draft:wizard:%s"
)

// IDraftUseCase keeps a quotation's in-progress form state durable and
// reconciled against the latest authoritative snapshot.

type IDraftUseCase interface {
	Load(ctx context.Context, quotationID string) (entities.QuotationDraft, error)
	Save(ctx context.Context, quotationID string, draft entities.QuotationDraft) (entities.QuotationDraft, error)
	Clear(ctx context.Context, quotationID string) error
}

type DraftUseCase struct {
	store         interfaces.IDraftStore
	quotationRepo interfaces.IQuotationRepository
}

var _ IDraftUseCase = (*DraftUseCase)(nil)

func NewDraftUseCase(store interfaces.IDraftStore, quotationRepo interfaces.IQuotationRepository) *DraftUseCase {
	return &DraftUseCase{store: store, quotationRepo: quotationRepo}
}

// Load implements merge-on-load: the stored draft (if any) is reconciled
// field-by-field against the quotation's current state and the merged result
// is written straight back, so an interrupted session resumes from it.
//
// A failed authoritative fetch is not fatal: the draft alone is still a valid
// working state; it just cannot pick up upstream changes this time.
func (u *DraftUseCase) Load(ctx context.Context, quotationID string) (entities.QuotationDraft, error) {
	key, err := quotationDraftKey(quotationID)
	if err != nil {
		return entities.QuotationDraft{}, err
	}

	draft, stored, err := u.store.Get(ctx, key)
	if err != nil {
		return entities.QuotationDraft{}, err
	}

	merged := false
	q, err := u.quotationRepo.GetByID(ctx, strings.TrimSpace(quotationID))
	if err != nil {
		log.Printf("[draft][usecase] authoritative fetch failed quotation_id=%s err=%v", quotationID, err)
	} else if q.ID != "" {
		draft = draft.MergeAuthoritative(q)
		merged = true
	}

	// Nothing stored and nothing merged: returning the zero draft without
	// minting a TTL key keeps probing GETs from littering the store.
	if !stored && !merged {
		return draft, nil
	}

	if err := u.store.Set(ctx, key, draft); err != nil {
		return entities.QuotationDraft{}, err
	}
	return draft, nil
}

// Save is write-through: every field change lands in the store immediately,
// not on submit.
func (u *DraftUseCase) Save(ctx context.Context, quotationID string, draft entities.QuotationDraft) (entities.QuotationDraft, error) {
	key, err := quotationDraftKey(quotationID)
	if err != nil {
		return entities.QuotationDraft{}, err
	}
	if err := u.store.Set(ctx, key, draft); err != nil {
		return entities.QuotationDraft{}, err
	}
	return draft, nil
}

// Clear removes the stored draft. Required on submit and cancel; a leftover
// draft would resurrect stale edits on the next Load.
func (u *DraftUseCase) Clear(ctx context.Context, quotationID string) error {
	key, err := quotationDraftKey(quotationID)
	if err != nil {
		return err
	}
	return u.store.Delete(ctx, key)
}

func quotationDraftKey(quotationID string) (string, error) {
	quotationID = strings.TrimSpace(quotationID)
	if quotationID == "" {
		return "", ErrInvalidDraftKey
	}
	return fmt.Sprintf(keyQuotationDraft, quotationID), nil
}

func wizardDraftKey(userID string) (string, error) {
	userID = strings.TrimSpace(userID)
	if userID == "" {
		return "", ErrInvalidDraftKey
	}
	return fmt.Sprintf(keyWizardDraft, userID), nil
}
