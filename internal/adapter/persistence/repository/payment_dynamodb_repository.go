package repository

import (
	"context"
	"errors"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentsTableName       = "hpp_payments"
	paymentsMerchantReferenceIndex = "merchant_reference-index"
)

type paymentItem struct {
	ID                string `dynamodbav:"id"`
	OrderNumber       string `dynamodbav:"order_number"`
	MerchantReference string `dynamodbav:"merchant_reference"`
	Live              bool   `dynamodbav:"live"`
	Amount            int64  `dynamodbav:"amount"`
	CurrencyCode      string `dynamodbav:"currency_code"`
	SkinCode          string `dynamodbav:"skin_code"`
	MerchantAccount   string `dynamodbav:"merchant_account"`
	ShipBeforeDate    string `dynamodbav:"ship_before_date,omitempty"`
	SessionValidity   string `dynamodbav:"session_validity,omitempty"`
	ResURL            string `dynamodbav:"res_url,omitempty"`
	RedirectURL       string `dynamodbav:"redirect_url,omitempty"`
	CreatedAt         string `dynamodbav:"created_at"`
	UpdatedAt         string `dynamodbav:"updated_at"`

	ShopperLocale      string `dynamodbav:"shopper_locale,omitempty"`
	OrderData          string `dynamodbav:"order_data,omitempty"`
	MerchantReturnData string `dynamodbav:"merchant_return_data,omitempty"`
	CountryCode        string `dynamodbav:"country_code,omitempty"`
	ShopperEmail       string `dynamodbav:"shopper_email,omitempty"`
	ShopperReference   string `dynamodbav:"shopper_reference,omitempty"`
	RecurringContract  string `dynamodbav:"recurring_contract,omitempty"`
	AllowedMethods     string `dynamodbav:"allowed_methods,omitempty"`
	BlockedMethods     string `dynamodbav:"blocked_methods,omitempty"`
	Offset             *int   `dynamodbav:"offset,omitempty"`
	BrandCode          string `dynamodbav:"brand_code,omitempty"`
	IssuerID           string `dynamodbav:"issuer_id,omitempty"`
	ShopperStatement   string `dynamodbav:"shopper_statement,omitempty"`
	OfferEmail         string `dynamodbav:"offer_email,omitempty"`
}

// PaymentDynamoRepository persists Payment entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: merchant_reference-index (PK: merchant_reference)
type PaymentDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentRepository = (*PaymentDynamoRepository)(nil)

func NewPaymentDynamoRepository(ddb dynamoAPI) *PaymentDynamoRepository {
	return &PaymentDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENTS_TABLE", defaultPaymentsTableName),
	}
}

func (r *PaymentDynamoRepository) Create(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	return r.put(ctx, p, "attribute_not_exists(#id)")
}

// Update replaces the stored item. A zero Payment is returned when the id
// does not exist.
func (r *PaymentDynamoRepository) Update(ctx context.Context, p entities.Payment) (entities.Payment, error) {
	out, err := r.put(ctx, p, "attribute_exists(#id)")
	if err != nil {
		var cfe *types.ConditionalCheckFailedException
		if errors.As(err, &cfe) {
			return entities.Payment{}, nil
		}
		return entities.Payment{}, err
	}
	return out, nil
}

func (r *PaymentDynamoRepository) put(ctx context.Context, p entities.Payment, condition string) (entities.Payment, error) {
	av, err := attributevalue.MarshalMap(toPaymentItem(p))
	if err != nil {
		return entities.Payment{}, err
	}

	_, err = r.ddb.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(r.tableName),
		Item:                av,
		ConditionExpression: aws.String(condition),
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

func (r *PaymentDynamoRepository) GetByMerchantReference(ctx context.Context, merchantReference string) (entities.Payment, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentsMerchantReferenceIndex),
		KeyConditionExpression: aws.String("merchant_reference = :ref"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":ref": &types.AttributeValueMemberS{Value: merchantReference},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return entities.Payment{}, err
	}
	if len(out.Items) == 0 {
		return entities.Payment{}, nil
	}

	var it paymentItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.Payment{}, err
	}
	return fromPaymentItem(it), nil
}

func toPaymentItem(p entities.Payment) paymentItem {
	return paymentItem{
		ID:                 p.ID,
		OrderNumber:        p.OrderNumber,
		MerchantReference:  p.MerchantReference,
		Live:               p.Live,
		Amount:             p.Amount,
		CurrencyCode:       p.CurrencyCode,
		SkinCode:           p.SkinCode,
		MerchantAccount:    p.MerchantAccount,
		ShipBeforeDate:     p.ShipBeforeDate,
		SessionValidity:    p.SessionValidity,
		ResURL:             p.ResURL,
		RedirectURL:        p.RedirectURL,
		CreatedAt:          formatTimestamp(p.CreatedAt),
		UpdatedAt:          formatTimestamp(p.UpdatedAt),
		ShopperLocale:      p.ShopperLocale,
		OrderData:          p.OrderData,
		MerchantReturnData: p.MerchantReturnData,
		CountryCode:        p.CountryCode,
		ShopperEmail:       p.ShopperEmail,
		ShopperReference:   p.ShopperReference,
		RecurringContract:  p.RecurringContract,
		AllowedMethods:     p.AllowedMethods,
		BlockedMethods:     p.BlockedMethods,
		Offset:             p.Offset,
		BrandCode:          p.BrandCode,
		IssuerID:           p.IssuerID,
		ShopperStatement:   p.ShopperStatement,
		OfferEmail:         p.OfferEmail,
	}
}

func fromPaymentItem(it paymentItem) entities.Payment {
	return entities.Payment{
		ID:                 it.ID,
		OrderNumber:        it.OrderNumber,
		MerchantReference:  it.MerchantReference,
		Live:               it.Live,
		Amount:             it.Amount,
		CurrencyCode:       it.CurrencyCode,
		SkinCode:           it.SkinCode,
		MerchantAccount:    it.MerchantAccount,
		ShipBeforeDate:     it.ShipBeforeDate,
		SessionValidity:    it.SessionValidity,
		ResURL:             it.ResURL,
		RedirectURL:        it.RedirectURL,
		CreatedAt:          parseTimestamp(it.CreatedAt),
		UpdatedAt:          parseTimestamp(it.UpdatedAt),
		ShopperLocale:      it.ShopperLocale,
		OrderData:          it.OrderData,
		MerchantReturnData: it.MerchantReturnData,
		CountryCode:        it.CountryCode,
		ShopperEmail:       it.ShopperEmail,
		ShopperReference:   it.ShopperReference,
		RecurringContract:  it.RecurringContract,
		AllowedMethods:     it.AllowedMethods,
		BlockedMethods:     it.BlockedMethods,
		Offset:             it.Offset,
		BrandCode:          it.BrandCode,
		IssuerID:           it.IssuerID,
		ShopperStatement:   it.ShopperStatement,
		OfferEmail:         it.OfferEmail,
	}
}

func (r *PaymentDynamoRepository) TableName() string {
	return r.tableName
}
