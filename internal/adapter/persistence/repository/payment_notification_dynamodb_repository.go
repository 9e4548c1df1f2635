package repository

import (
	"context"
	"errors"
	"time"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentNotificationsTableName = "hpp_payment_notifications"
	notificationsPSPIndex                = "psp_reference-index"
	notificationsUnhandledIndex          = "unhandled-index"
	unhandledMarker                      = "1"
)

type paymentNotificationItem struct {
	ID                  string            `dynamodbav:"id"`
	Live                bool              `dynamodbav:"live"`
	EventCode           string            `dynamodbav:"event_code"`
	PSPReference        string            `dynamodbav:"psp_reference,omitempty"`
	OriginalReference   string            `dynamodbav:"original_reference,omitempty"`
	MerchantReference   string            `dynamodbav:"merchant_reference"`
	MerchantAccountCode string            `dynamodbav:"merchant_account_code"`
	EventDate           string            `dynamodbav:"event_date"`
	Success             bool              `dynamodbav:"success"`
	PaymentMethod       string            `dynamodbav:"payment_method,omitempty"`
	Operations          string            `dynamodbav:"operations,omitempty"`
	Reason              string            `dynamodbav:"reason,omitempty"`
	Value               int64             `dynamodbav:"value"`
	Currency            string            `dynamodbav:"currency"`
	AdditionalParams    map[string]string `dynamodbav:"additional_params,omitempty"`
	Handled             bool              `dynamodbav:"handled"`
	Unhandled           string            `dynamodbav:"unhandled,omitempty"`
	CreatedAt           string            `dynamodbav:"created_at"`
}

// PaymentNotificationDynamoRepository persists PaymentNotification entities
// in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: psp_reference-index (PK: psp_reference, SK: created_at)
//   - GSI: unhandled-index (PK: unhandled, SK: created_at), sparse
type PaymentNotificationDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentNotificationRepository = (*PaymentNotificationDynamoRepository)(nil)

func NewPaymentNotificationDynamoRepository(ddb dynamoAPI) *PaymentNotificationDynamoRepository {
	return &PaymentNotificationDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_NOTIFICATIONS_TABLE", defaultPaymentNotificationsTableName),
	}
}

func (r *PaymentNotificationDynamoRepository) Create(ctx context.Context, n entities.PaymentNotification) (entities.PaymentNotification, error) {
	av, err := attributevalue.MarshalMap(toPaymentNotificationItem(n))
	if err != nil {
		return entities.PaymentNotification{}, err
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
		return entities.PaymentNotification{}, err
	}
	return n, nil
}

func (r *PaymentNotificationDynamoRepository) GetByID(ctx context.Context, id string) (entities.PaymentNotification, error) {
	out, err := r.ddb.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return entities.PaymentNotification{}, err
	}
	if len(out.Item) == 0 {
		return entities.PaymentNotification{}, nil
	}

	var it paymentNotificationItem
	if err := attributevalue.UnmarshalMap(out.Item, &it); err != nil {
		return entities.PaymentNotification{}, err
	}
	return fromPaymentNotificationItem(it), nil
}

// ListByPSPReference returns every delivery for the reference, oldest first.
// Notifications without a PSP reference are not in the index.
func (r *PaymentNotificationDynamoRepository) ListByPSPReference(ctx context.Context, pspReference string) ([]entities.PaymentNotification, error) {
	if pspReference == "" {
		return nil, nil
	}
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsPSPIndex),
		KeyConditionExpression: aws.String("psp_reference = :psp"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":psp": &types.AttributeValueMemberS{Value: pspReference},
		},
		ScanIndexForward: aws.Bool(true),
	})

	var items []entities.PaymentNotification
	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return nil, err
		}
		decoded, err := decodeNotifications(page.Items)
		if err != nil {
			return nil, err
		}
		items = append(items, decoded...)
	}
	return items, nil
}

// HasEarlier counts deliveries of the same event stored before the given
// instant. Without a PSP reference there is nothing to compare against.
func (r *PaymentNotificationDynamoRepository) HasEarlier(ctx context.Context, eventCode, pspReference string, before time.Time) (bool, error) {
	if pspReference == "" {
		return false, nil
	}
	p := dynamodb.NewQueryPaginator(r.ddb, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsPSPIndex),
		KeyConditionExpression: aws.String("psp_reference = :psp AND created_at < :before"),
		FilterExpression:       aws.String("event_code = :event"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":psp":    &types.AttributeValueMemberS{Value: pspReference},
			":before": &types.AttributeValueMemberS{Value: formatTimestamp(before)},
			":event":  &types.AttributeValueMemberS{Value: eventCode},
		},
		Select: types.SelectCount,
	})

	for p.HasMorePages() {
		page, err := p.NextPage(ctx)
		if err != nil {
			return false, err
		}
		if page.Count > 0 {
			return true, nil
		}
	}
	return false, nil
}

// ListUnhandled returns one page of unhandled notifications, oldest first.
func (r *PaymentNotificationDynamoRepository) ListUnhandled(ctx context.Context, limit int32, after *interfaces.UnhandledCursor) ([]entities.PaymentNotification, *interfaces.UnhandledCursor, error) {
	in := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(notificationsUnhandledIndex),
		KeyConditionExpression: aws.String("#unhandled = :marker"),
		ExpressionAttributeNames: map[string]string{
			"#unhandled": "unhandled",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":marker": &types.AttributeValueMemberS{Value: unhandledMarker},
		},
		ScanIndexForward: aws.Bool(true),
		Limit:            aws.Int32(limit),
	}
	if after != nil {
		in.ExclusiveStartKey = map[string]types.AttributeValue{
			"id":         &types.AttributeValueMemberS{Value: after.ID},
			"unhandled":  &types.AttributeValueMemberS{Value: unhandledMarker},
			"created_at": &types.AttributeValueMemberS{Value: formatTimestamp(after.CreatedAt)},
		}
	}

	out, err := r.ddb.Query(ctx, in)
	if err != nil {
		return nil, nil, err
	}
	items, err := decodeNotifications(out.Items)
	if err != nil {
		return nil, nil, err
	}
	next, err := unhandledCursor(out.LastEvaluatedKey)
	if err != nil {
		return nil, nil, err
	}
	return items, next, nil
}

func unhandledCursor(key map[string]types.AttributeValue) (*interfaces.UnhandledCursor, error) {
	if len(key) == 0 {
		return nil, nil
	}
	var k struct {
		ID        string `dynamodbav:"id"`
		CreatedAt string `dynamodbav:"created_at"`
	}
	if err := attributevalue.UnmarshalMap(key, &k); err != nil {
		return nil, err
	}
	return &interfaces.UnhandledCursor{ID: k.ID, CreatedAt: parseTimestamp(k.CreatedAt)}, nil
}

// MarkHandled flags the notification and drops it from the unhandled index.
// Unknown ids are ignored.
func (r *PaymentNotificationDynamoRepository) MarkHandled(ctx context.Context, id string) error {
	_, err := r.ddb.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName: aws.String(r.tableName),
		Key: map[string]types.AttributeValue{
			"id": &types.AttributeValueMemberS{Value: id},
		},
		ConditionExpression: aws.String("attribute_exists(#id)"),
		UpdateExpression:    aws.String("SET #handled = :handled REMOVE #unhandled"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":handled": &types.AttributeValueMemberBOOL{Value: true},
		},
		ExpressionAttributeNames: mergeNames(
			map[string]string{"#handled": "handled", "#unhandled": "unhandled"},
			map[string]string{"#id": "id"},
		),
	})
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return nil
		}
		return err
	}
	return nil
}

func decodeNotifications(raw []map[string]types.AttributeValue) ([]entities.PaymentNotification, error) {
	items := make([]entities.PaymentNotification, 0, len(raw))
	for _, av := range raw {
		var it paymentNotificationItem
		if err := attributevalue.UnmarshalMap(av, &it); err != nil {
			return nil, err
		}
		items = append(items, fromPaymentNotificationItem(it))
	}
	return items, nil
}

func toPaymentNotificationItem(n entities.PaymentNotification) paymentNotificationItem {
	it := paymentNotificationItem{
		ID:                  n.ID,
		Live:                n.Live,
		EventCode:           n.EventCode,
		PSPReference:        n.PSPReference,
		OriginalReference:   n.OriginalReference,
		MerchantReference:   n.MerchantReference,
		MerchantAccountCode: n.MerchantAccountCode,
		EventDate:           formatTimestamp(n.EventDate),
		Success:             n.Success,
		PaymentMethod:       n.PaymentMethod,
		Operations:          n.Operations,
		Reason:              n.Reason,
		Value:               n.Value,
		Currency:            n.Currency,
		AdditionalParams:    n.AdditionalParams,
		Handled:             n.Handled,
		CreatedAt:           formatTimestamp(n.CreatedAt),
	}
	if !n.Handled {
		it.Unhandled = unhandledMarker
	}
	return it
}

func fromPaymentNotificationItem(it paymentNotificationItem) entities.PaymentNotification {
	return entities.PaymentNotification{
		ID:                  it.ID,
		Live:                it.Live,
		EventCode:           it.EventCode,
		PSPReference:        it.PSPReference,
		OriginalReference:   it.OriginalReference,
		MerchantReference:   it.MerchantReference,
		MerchantAccountCode: it.MerchantAccountCode,
		EventDate:           parseTimestamp(it.EventDate),
		Success:             it.Success,
		PaymentMethod:       it.PaymentMethod,
		Operations:          it.Operations,
		Reason:              it.Reason,
		Value:               it.Value,
		Currency:            it.Currency,
		AdditionalParams:    it.AdditionalParams,
		Handled:             it.Handled,
		CreatedAt:           parseTimestamp(it.CreatedAt),
	}
}

func (r *PaymentNotificationDynamoRepository) TableName() string {
	return r.tableName
}
