package repository

import (
	"context"
	"errors"
	"time"

	"github.com/amaadour/admin-sourcing-launch-sub000/internal/domain/entities"
	"github.com/amaadour/admin-sourcing-launch-sub000/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName = "payments"
	paymentsUserIDIndex      = "user_id-index"
)

type paymentItem struct {
	ID            string                 `dynamodbav:"id"`
	UserID        string                 `dynamodbav:"user_id"`
	Amount        float64                `dynamodbav:"amount"`
	Method        string                 `dynamodbav:"method"`
	Status        string                 `dynamodbav:"status"`
	RefCode       string                 `dynamodbav:"ref_code"`
	QuotationRefs entities.RefDescriptor `dynamodbav:"quotation_refs"`
	ProofKey      string                 `dynamodbav:"proof_key,omitempty"`
	CreatedAt     string                 `dynamodbav:"created_at"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// quotation_refs on legacy rows may be a plain comma-delimited string instead
// of a list; RefDescriptor decodes both (see entities.RefDescriptor).

type PaymentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb *dynamodb.Client) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	it := toPaymentItem(p)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String("attribute_not_exists(#id)"),
		ExpressionAttributeNames: map[string]string{
			"#id": "id",
		},
	})
	if err != nil {
		return entities.Payment{}, err
	}
	return p, nil
}

func (r *PaymentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func (r *PaymentDynamoRepository) List(ctx context.Context) ([]entities.Payment, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raw)
}

func (r *PaymentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Payment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalPayments(raw)
}

// ListReferencingQuotation finds payments linked to a quotation under either
// encoding of the link. The contains() filter covers both the list form and
// the legacy comma-delimited string form of quotation_refs; the ref_code
// clause covers rows that share a transaction reference with the quotation.
// contains() is a substring match on string-form rows, so the candidates are
// re-checked token-exactly after unmarshalling.
func (r *PaymentDynamoRepository) ListReferencingQuotation(ctx context.Context, quotationID, quotationRefCode string) ([]entities.Payment, error) {
	filter := "contains(#refs, :qid)"
	values := map[string]types.AttributeValue{
		":qid": &types.AttributeValueMemberS{Value: quotationID},
	}
	if quotationRefCode != "" {
		filter += " OR #ref_code = :qcode"
		values[":qcode"] = &types.AttributeValueMemberS{Value: quotationRefCode}
	}

	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:        aws.String(r.tableName),
		FilterExpression: aws.String(filter),
		ExpressionAttributeNames: map[string]string{
			"#refs":     "quotation_refs",
			"#ref_code": "ref_code",
		},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}

	candidates, err := unmarshalPayments(raw)
	if err != nil {
		return nil, err
	}
	matched := make([]entities.Payment, 0, len(candidates))
	for _, p := range candidates {
		if p.ReferencesQuotation(quotationID, quotationRefCode) {
			matched = append(matched, p)
		}
	}
	return matched, nil
}

func (r *PaymentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #status = :status"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
		ExpressionAttributeNames: map[string]string{
			"#id":     "id",
			"#status": "status",
		},
		ReturnValues: types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Payment{}, nil
	}
	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func unmarshalPayments(raw []map[string]types.AttributeValue) ([]entities.Payment, error) {
	items := make([]entities.Payment, 0, len(raw))
	for _, av := range raw {
		var it paymentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentItem(it))
	}
	return items, nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:            p.ID,
		UserID:        p.UserID,
		Amount:        p.Amount,
		Method:        p.Method,
		Status:        string(p.Status),
		RefCode:       p.RefCode,
		QuotationRefs: p.QuotationRefs,
		ProofKey:      p.ProofKey,
		CreatedAt:     p.CreatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	return entities.Payment{
		ID:            it.ID,
		UserID:        it.UserID,
		Amount:        it.Amount,
		Method:        it.Method,
		Status:        entities.PaymentStatus(it.Status),
		RefCode:       it.RefCode,
		QuotationRefs: it.QuotationRefs,
		ProofKey:      it.ProofKey,
		CreatedAt:     createdAt,
	}
}
