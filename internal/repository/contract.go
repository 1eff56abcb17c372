package repository

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/andrepreira/bid-pdf-document-processor/gen/ent"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/biditem"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/bidder"
	"github.com/andrepreira/bid-pdf-document-processor/gen/ent/contract"
	"github.com/andrepreira/bid-pdf-document-processor/internal/entity"
)

// ContractRepository persists extracted records. Contracts merge across
// documents sharing a contract number; new non-empty fields fill in what
// earlier documents left blank, never erase it.
type ContractRepository interface {
	UpsertRecord(ctx context.Context, rec *entity.Record) (uuid.UUID, error)
	GetByNumber(ctx context.Context, contractNumber string) (*ent.Contract, error)
}

type contractRepository struct {
	client *ent.Client
	logger *slog.Logger
}

func NewContractRepository(client *ent.Client, logger *slog.Logger) ContractRepository {
	return &contractRepository{client: client, logger: logger}
}

func (r *contractRepository) GetByNumber(ctx context.Context, contractNumber string) (*ent.Contract, error) {
	return r.client.Contract.Query().
		Where(contract.ContractNumber(contractNumber)).
		Only(ctx)
}

// UpsertRecord writes one record inside a transaction: contract row upsert
// keyed by contract_number, bidder upserts keyed by (contract_id, name),
// and a full replace of the contract's bid items when the record carries
// any.
func (r *contractRepository) UpsertRecord(ctx context.Context, rec *entity.Record) (uuid.UUID, error) {
	tx, err := r.client.Tx(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	id, err := r.upsertTx(ctx, tx, rec)
	if err != nil {
		if rerr := tx.Rollback(); rerr != nil {
			r.logger.Error("rollback failed", "error", rerr)
		}
		return uuid.Nil, err
	}
	if err := tx.Commit(); err != nil {
		return uuid.Nil, err
	}
	return id, nil
}

func (r *contractRepository) upsertTx(ctx context.Context, tx *ent.Tx, rec *entity.Record) (uuid.UUID, error) {
	c := rec.Contract

	id, err := tx.Contract.Create().
		SetContractNumber(c.ContractNumber).
		OnConflictColumns(contract.FieldContractNumber).
		UpdateNewValues().
		ID(ctx)
	if err != nil {
		return uuid.Nil, err
	}

	// Fill in only the fields this document carries.
	upd := tx.Contract.UpdateOneID(id).
		SetNillableDateAvailable(c.DateAvailable).
		SetNillableCompletionDate(c.CompletionDate).
		SetNillableMbeGoal(c.MBEGoal).
		SetNillableWbeGoal(c.WBEGoal).
		SetNillableCombinedGoal(c.CombinedGoal).
		SetNillableBidOpeningDate(c.BidOpeningDate).
		SetNillableProposalLength(c.ProposalLength).
		SetNillableEstimatedCost(c.EstimatedCost).
		SetNillableAwardedAmount(c.AwardedAmount).
		SetNillableAwardDate(c.AwardDate)
	if c.WBSElement != "" {
		upd = upd.SetWbsElement(c.WBSElement)
	}
	if c.Counties != "" {
		upd = upd.SetCounties(c.Counties)
	}
	if c.Description != "" {
		upd = upd.SetDescription(c.Description)
	}
	if c.TypeOfWork != "" {
		upd = upd.SetTypeOfWork(c.TypeOfWork)
	}
	if c.Location != "" {
		upd = upd.SetLocation(c.Location)
	}
	if c.AwardedTo != "" {
		upd = upd.SetAwardedTo(c.AwardedTo)
	}
	if c.SourceFilePath != "" {
		upd = upd.SetSourceFilePath(c.SourceFilePath)
	}
	if err := upd.Exec(ctx); err != nil {
		return uuid.Nil, err
	}

	for _, b := range rec.Bidders {
		if b.Name == "" {
			continue
		}
		create := tx.Bidder.Create().
			SetContractID(id).
			SetBidderName(b.Name).
			SetNillableTotalBidAmount(b.TotalBidAmount).
			SetNillablePercentageDiff(b.PercentageDiff).
			SetIsWinner(b.IsWinner)
		if b.Location != "" {
			create = create.SetBidderLocation(b.Location)
		}
		if b.BidRank > 0 {
			create = create.SetBidRank(b.BidRank)
		}
		err := create.
			OnConflictColumns(bidder.FieldContractID, bidder.FieldBidderName).
			UpdateNewValues().
			Exec(ctx)
		if err != nil {
			return uuid.Nil, err
		}
	}

	if len(rec.BidItems) > 0 {
		// Re-extraction replaces the item grid wholesale.
		if _, err := tx.BidItem.Delete().
			Where(biditem.ContractID(id)).
			Exec(ctx); err != nil {
			return uuid.Nil, err
		}
		creates := make([]*ent.BidItemCreate, 0, len(rec.BidItems))
		for _, it := range rec.BidItems {
			create := tx.BidItem.Create().
				SetContractID(id).
				SetNillableQuantity(it.Quantity).
				SetNillableUnitPrice(it.UnitPrice).
				SetNillableTotalPrice(it.TotalPrice)
			if it.ItemNumber != "" {
				create = create.SetItemNumber(it.ItemNumber)
			}
			if it.ItemCode != "" {
				create = create.SetItemCode(it.ItemCode)
			}
			if it.Description != "" {
				create = create.SetDescription(it.Description)
			}
			if it.Unit != "" {
				create = create.SetUnit(it.Unit)
			}
			if it.BidderName != "" {
				create = create.SetBidderName(it.BidderName)
			}
			creates = append(creates, create)
		}
		if err := tx.BidItem.CreateBulk(creates...).Exec(ctx); err != nil {
			return uuid.Nil, err
		}
	}

	return id, nil
}
