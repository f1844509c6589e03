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
	defaultQuotationsTableName = "quotations"
	quotationsUserIDIndex      = "user_id-index"
)

type priceOptionItem struct {
	Title        string  `dynamodbav:"title"`
	UnitPrice    float64 `dynamodbav:"unit_price"`
	UnitWeight   float64 `dynamodbav:"unit_weight"`
	DeliveryTime string  `dynamodbav:"delivery_time"`
	Description  string  `dynamodbav:"description"`
	ImageURL     string  `dynamodbav:"image_url,omitempty"`
	ImageURL2    string  `dynamodbav:"image_url2,omitempty"`
}

type receiverItem struct {
	Name    string `dynamodbav:"name"`
	Phone   string `dynamodbav:"phone"`
	Address string `dynamodbav:"address"`
}

type quotationItem struct {
	ID             string            `dynamodbav:"id"`
	RefCode        string            `dynamodbav:"ref_code"`
	UserID         string            `dynamodbav:"user_id"`
	ProductName    string            `dynamodbav:"product_name"`
	ProductLink    string            `dynamodbav:"product_link,omitempty"`
	Quantity       int               `dynamodbav:"quantity"`
	Destination    string            `dynamodbav:"destination"`
	ShippingMethod string            `dynamodbav:"shipping_method"`
	Options        []priceOptionItem `dynamodbav:"options,omitempty"`
	SelectedOption int               `dynamodbav:"selected_option"`
	ServiceFee     float64           `dynamodbav:"service_fee"`
	Status         string            `dynamodbav:"status"`
	Receiver       receiverItem      `dynamodbav:"receiver"`
	CreatedAt      string            `dynamodbav:"created_at"`
	UpdatedAt      string            `dynamodbav:"updated_at"`
}

// QuotationDynamoRepository persists Quotation entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// ref_code is a plain attribute, not a key: refcode lookups are a filtered
// Scan and exist only as the reconciliation fallback path for legacy links.

type QuotationDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IQuotationRepository = (*QuotationDynamoRepository)(nil)

func NewQuotationDynamoRepository(ddb *dynamodb.Client) *QuotationDynamoRepository {
	return &QuotationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("QUOTATIONS_TABLE", defaultQuotationsTableName),
	}
}

func (r *QuotationDynamoRepository) Create(ctx context.Context, q entities.Quotation) (entities.Quotation, error) {
	it := toQuotationItem(q)
	av, err := attributevalue.MarshalMap(it)
	if err != nil {
		return entities.Quotation{}, err
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
		return entities.Quotation{}, err
	}
	return q, nil
}

func (r *QuotationDynamoRepository) GetByID(ctx context.Context, id string) (entities.Quotation, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Quotation{}, err
	}
	if len(out.Item) == 0 {
		return entities.Quotation{}, nil
	}

	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

// GetByIDs resolves a set of primary keys in one batched request. Ids that
// match no row are absent from the result, not an error.
func (r *QuotationDynamoRepository) GetByIDs(ctx context.Context, ids []string) ([]entities.Quotation, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	raw, err := batchGetByIDs(ctx, r.ddb, r.tableName, ids)
	if err != nil {
		return nil, err
	}
	return unmarshalQuotations(raw)
}

// GetByRefCodes resolves quotations by their business reference code: a
// single Scan filtered with an IN expression over the whole code set.
func (r *QuotationDynamoRepository) GetByRefCodes(ctx context.Context, codes []string) ([]entities.Quotation, error) {
	if len(codes) == 0 {
		return nil, nil
	}

	filter, values := inExpression("#ref_code", codes)
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName:                 aws.String(r.tableName),
		FilterExpression:          aws.String(filter),
		ExpressionAttributeNames:  map[string]string{"#ref_code": "ref_code"},
		ExpressionAttributeValues: values,
	})
	if err != nil {
		return nil, err
	}
	return unmarshalQuotations(raw)
}

func (r *QuotationDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Quotation, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(quotationsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalQuotations(raw)
}

func (r *QuotationDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.QuotationStatus) (entities.Quotation, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #status = :status, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":status":     &types.AttributeValueMemberS{Value: string(status)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#status":     "status",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuotationDynamoRepository) UpdateSelectedOption(ctx context.Context, id string, selected int) (entities.Quotation, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #selected_option = :selected, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":selected":   &types.AttributeValueMemberN{Value: intToString(selected)},
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#selected_option": "selected_option",
			"#updated_at":      "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuotationDynamoRepository) UpdateOptions(ctx context.Context, id string, options []entities.PriceOption, serviceFee float64) (entities.Quotation, error) {
	items := make([]priceOptionItem, 0, len(options))
	for _, opt := range options {
		items = append(items, toPriceOptionItem(opt))
	}
	optionsAV, err := attributevalue.Marshal(items)
	if err != nil {
		return entities.Quotation{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #options = :options, #service_fee = :service_fee, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":options":     optionsAV,
			":service_fee": &types.AttributeValueMemberN{Value: floatToString(serviceFee)},
			":updated_at":  &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#options":     "options",
			"#service_fee": "service_fee",
			"#updated_at":  "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuotationDynamoRepository) UpdateReceiver(ctx context.Context, id string, receiver entities.Receiver) (entities.Quotation, error) {
	receiverAV, err := attributevalue.Marshal(toReceiverItem(receiver))
	if err != nil {
		return entities.Quotation{}, err
	}

	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #receiver = :receiver, #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":receiver":   receiverAV,
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#receiver":   "receiver",
			"#updated_at": "updated_at",
		}
		return expr, vals, names
	})
}

func (r *QuotationDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Quotation, error) {
	now := time.Now().UTC().Format(time.RFC3339Nano)
	updateExpr, values, names := build(now)

	out, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression:       aws.String("attribute_exists(#id)"),
		UpdateExpression:          aws.String(updateExpr),
		ExpressionAttributeValues: values,
		ExpressionAttributeNames:  mergeNames(names, map[string]string{"#id": "id"}),
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Quotation{}, nil
		}
		return entities.Quotation{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Quotation{}, nil
	}
	var it quotationItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Quotation{}, err
	}
	return fromQuotationItem(it), nil
}

func unmarshalQuotations(raw []map[string]types.AttributeValue) ([]entities.Quotation, error) {
	items := make([]entities.Quotation, 0, len(raw))
	for _, av := range raw {
		var it quotationItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromQuotationItem(it))
	}
	return items, nil
}

func toQuotationItem(q entities.Quotation) quotationItem {
	options := make([]priceOptionItem, 0, len(q.Options))
	for _, opt := range q.Options {
		options = append(options, toPriceOptionItem(opt))
	}
	return quotationItem{
		ID:             q.ID,
		RefCode:        q.RefCode,
		UserID:         q.UserID,
		ProductName:    q.ProductName,
		ProductLink:    q.ProductLink,
		Quantity:       q.Quantity,
		Destination:    q.Destination,
		ShippingMethod: q.ShippingMethod,
		Options:        options,
		SelectedOption: q.SelectedOption,
		ServiceFee:     q.ServiceFee,
		Status:         string(q.Status),
		Receiver:       toReceiverItem(q.Receiver),
		CreatedAt:      q.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:      q.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
}

func fromQuotationItem(it quotationItem) entities.Quotation {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	options := make([]entities.PriceOption, 0, len(it.Options))
	for _, opt := range it.Options {
		options = append(options, fromPriceOptionItem(opt))
	}
	return entities.Quotation{
		ID:             it.ID,
		RefCode:        it.RefCode,
		UserID:         it.UserID,
		ProductName:    it.ProductName,
		ProductLink:    it.ProductLink,
		Quantity:       it.Quantity,
		Destination:    it.Destination,
		ShippingMethod: it.ShippingMethod,
		Options:        options,
		SelectedOption: it.SelectedOption,
		ServiceFee:     it.ServiceFee,
		Status:         entities.QuotationStatus(it.Status),
		Receiver:       fromReceiverItem(it.Receiver),
		CreatedAt:      createdAt,
		UpdatedAt:      updatedAt,
	}
}

func toPriceOptionItem(opt entities.PriceOption) priceOptionItem {
	return priceOptionItem{
		Title:        opt.Title,
		UnitPrice:    opt.UnitPrice,
		UnitWeight:   opt.UnitWeight,
		DeliveryTime: opt.DeliveryTime,
		Description:  opt.Description,
		ImageURL:     opt.ImageURL,
		ImageURL2:    opt.ImageURL2,
	}
}

func fromPriceOptionItem(it priceOptionItem) entities.PriceOption {
	return entities.PriceOption{
		Title:        it.Title,
		UnitPrice:    it.UnitPrice,
		UnitWeight:   it.UnitWeight,
		DeliveryTime: it.DeliveryTime,
		Description:  it.Description,
		ImageURL:     it.ImageURL,
		ImageURL2:    it.ImageURL2,
	}
}

func toReceiverItem(r entities.Receiver) receiverItem {
	return receiverItem{Name: r.Name, Phone: r.Phone, Address: r.Address}
}

func fromReceiverItem(it receiverItem) entities.Receiver {
	return entities.Receiver{Name: it.Name, Phone: it.Phone, Address: it.Address}
}
