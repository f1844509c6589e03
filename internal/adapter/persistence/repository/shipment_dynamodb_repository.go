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
	defaultShipmentsTableName = "shipments"
	shipmentsUserIDIndex      = "user_id-index"
)

type shipmentItem struct {
	ID           string       `dynamodbav:"id"`
	QuotationRef string       `dynamodbav:"quotation_ref"`
	UserID       string       `dynamodbav:"user_id"`
	Status       string       `dynamodbav:"status"`
	Location     string       `dynamodbav:"location,omitempty"`
	MediaURLs    []string     `dynamodbav:"media_urls,omitempty"`
	Label        string       `dynamodbav:"label,omitempty"`
	Receiver     receiverItem `dynamodbav:"receiver"`
	ETA          string       `dynamodbav:"eta,omitempty"`
	DeliveredAt  string       `dynamodbav:"delivered_at,omitempty"`
	CreatedAt    string       `dynamodbav:"created_at"`
	UpdatedAt    string       `dynamodbav:"updated_at"`
}

// ShipmentDynamoRepository patches Shipment rows in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: user_id-index (PK: user_id)
//
// Rows are inserted by the fulfilment pipeline; there is intentionally no
// Create here.

type ShipmentDynamoRepository struct {
	ddb       *dynamodb.Client
	tableName string
}

var _ interfaces.IShipmentRepository = (*ShipmentDynamoRepository)(nil)

func NewShipmentDynamoRepository(ddb *dynamodb.Client) *ShipmentDynamoRepository {
	return &ShipmentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("SHIPMENTS_TABLE", defaultShipmentsTableName),
	}
}

func (r *ShipmentDynamoRepository) GetByID(ctx context.Context, id string) (entities.Shipment, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.Shipment{}, err
	}
	if len(out.Item) == 0 {
		return entities.Shipment{}, nil
	}

	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func (r *ShipmentDynamoRepository) List(ctx context.Context) ([]entities.Shipment, error) {
	raw, err := scanAll(ctx, r.ddb, &dynamodb.ScanInput{
		TableName: aws.String(r.tableName),
	})
	if err != nil {
		return nil, err
	}
	return unmarshalShipments(raw)
}

func (r *ShipmentDynamoRepository) ListByUserID(ctx context.Context, userID string) ([]entities.Shipment, error) {
	raw, err := queryAll(ctx, r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(shipmentsUserIDIndex),
		KeyConditionExpression: aws.String("user_id = :uid"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":uid": &types.AttributeValueMemberS{Value: userID},
		},
	})
	if err != nil {
		return nil, err
	}
	return unmarshalShipments(raw)
}

func (r *ShipmentDynamoRepository) UpdateStatus(ctx context.Context, id string, status entities.ShipmentStatus, deliveredAt *time.Time) (entities.Shipment, error) {
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
		if deliveredAt != nil {
			expr += ", #delivered_at = :delivered_at"
			vals[":delivered_at"] = &types.AttributeValueMemberS{Value: deliveredAt.UTC().Format(time.RFC3339Nano)}
			names["#delivered_at"] = "delivered_at"
		}
		return expr, vals, names
	})
}

func (r *ShipmentDynamoRepository) UpdateReceiver(ctx context.Context, id string, receiver entities.Receiver, status *entities.ShipmentStatus) (entities.Shipment, error) {
	receiverAV, err := attributevalue.Marshal(toReceiverItem(receiver))
	if err != nil {
		return entities.Shipment{}, err
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
		if status != nil {
			expr += ", #status = :status"
			vals[":status"] = &types.AttributeValueMemberS{Value: string(*status)}
			names["#status"] = "status"
		}
		return expr, vals, names
	})
}

func (r *ShipmentDynamoRepository) UpdateTracking(ctx context.Context, id string, location, label string, eta *time.Time) (entities.Shipment, error) {
	return r.update(ctx, id, func(now string) (string, map[string]types.AttributeValue, map[string]string) {
		expr := "SET #updated_at = :updated_at"
		vals := map[string]types.AttributeValue{
			":updated_at": &types.AttributeValueMemberS{Value: now},
		}
		names := map[string]string{
			"#updated_at": "updated_at",
		}
		if location != "" {
			expr += ", #location = :location"
			vals[":location"] = &types.AttributeValueMemberS{Value: location}
			names["#location"] = "location"
		}
		if label != "" {
			expr += ", #label = :label"
			vals[":label"] = &types.AttributeValueMemberS{Value: label}
			names["#label"] = "label"
		}
		if eta != nil {
			expr += ", #eta = :eta"
			vals[":eta"] = &types.AttributeValueMemberS{Value: eta.UTC().Format(time.RFC3339Nano)}
			names["#eta"] = "eta"
		}
		return expr, vals, names
	})
}

func (r *ShipmentDynamoRepository) update(
	ctx context.Context,
	id string,
	build func(now string) (updateExpr string, values map[string]types.AttributeValue, names map[string]string),
) (entities.Shipment, error) {
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
			return entities.Shipment{}, nil
		}
		return entities.Shipment{}, err
	}
	if len(out.Attributes) == 0 {
		return entities.Shipment{}, nil
	}
	var it shipmentItem
	if err := attributevalue.UnmarshalMap(out.Attributes, &it); err != nil {
		return entities.Shipment{}, err
	}
	return fromShipmentItem(it), nil
}

func unmarshalShipments(raw []map[string]types.AttributeValue) ([]entities.Shipment, error) {
	items := make([]entities.Shipment, 0, len(raw))
	for _, av := range raw {
		var it shipmentItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromShipmentItem(it))
	}
	return items, nil
}

func fromShipmentItem(it shipmentItem) entities.Shipment {
	createdAt, _ := time.Parse(time.RFC3339Nano, it.CreatedAt)
	updatedAt, _ := time.Parse(time.RFC3339Nano, it.UpdatedAt)
	s := entities.Shipment{
		ID:           it.ID,
		QuotationRef: it.QuotationRef,
		UserID:       it.UserID,
		Status:       entities.ShipmentStatus(it.Status),
		Location:     it.Location,
		MediaURLs:    it.MediaURLs,
		Label:        it.Label,
		Receiver:     fromReceiverItem(it.Receiver),
		CreatedAt:    createdAt,
		UpdatedAt:    updatedAt,
	}
	if it.ETA != "" {
		if eta, err := time.Parse(time.RFC3339Nano, it.ETA); err == nil {
			s.ETA = &eta
		}
	}
	if it.DeliveredAt != "" {
		if deliveredAt, err := time.Parse(time.RFC3339Nano, it.DeliveredAt); err == nil {
			s.DeliveredAt = &deliveredAt
		}
	}
	return s
}
