package repository

import (
	"context"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
)

const (
	defaultPaymentResultsTableName = "hpp_payment_results"
	paymentResultsPSPIndex         = "psp_reference-index"
)

type paymentResultItem struct {
	ID                 string `dynamodbav:"id"`
	Live               *bool  `dynamodbav:"live,omitempty"`
	AuthResult         string `dynamodbav:"auth_result"`
	PSPReference       string `dynamodbav:"psp_reference,omitempty"`
	MerchantReference  string `dynamodbav:"merchant_reference"`
	SkinCode           string `dynamodbav:"skin_code"`
	PaymentMethod      string `dynamodbav:"payment_method,omitempty"`
	ShopperLocale      string `dynamodbav:"shopper_locale"`
	MerchantReturnData string `dynamodbav:"merchant_return_data,omitempty"`
	CreatedAt          string `dynamodbav:"created_at"`
}

// PaymentResultDynamoRepository persists PaymentResult entities in DynamoDB.
//
// Table requirements:
//   - PK: id (string)
//   - GSI: psp_reference-index (PK: psp_reference, SK: created_at)
type PaymentResultDynamoRepository struct {
	ddb       dynamoAPI
	tableName string
}

var _ interfaces.IPaymentResultRepository = (*PaymentResultDynamoRepository)(nil)

func NewPaymentResultDynamoRepository(ddb dynamoAPI) *PaymentResultDynamoRepository {
	return &PaymentResultDynamoRepository{
		ddb:       ddb,
		tableName: getenvDefault("PAYMENT_RESULTS_TABLE", defaultPaymentResultsTableName),
	}
}

func (r *PaymentResultDynamoRepository) Create(ctx context.Context, res entities.PaymentResult) (entities.PaymentResult, error) {
	av, err := attributevalue.MarshalMap(toPaymentResultItem(res))
	if err != nil {
		return entities.PaymentResult{}, err
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
		return entities.PaymentResult{}, err
	}
	return res, nil
}

// GetByPSPReference returns the most recent result for the reference.
func (r *PaymentResultDynamoRepository) GetByPSPReference(ctx context.Context, pspReference string) (entities.PaymentResult, error) {
	out, err := r.ddb.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(paymentResultsPSPIndex),
		KeyConditionExpression: aws.String("psp_reference = :psp"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":psp": &types.AttributeValueMemberS{Value: pspReference},
		},
		ScanIndexForward: aws.Bool(false),
		Limit:            aws.Int32(1),
	})
	if err != nil {
		return entities.PaymentResult{}, err
	}
	if len(out.Items) == 0 {
		return entities.PaymentResult{}, nil
	}

	var it paymentResultItem
	if err := attributevalue.UnmarshalMap(out.Items[0], &it); err != nil {
		return entities.PaymentResult{}, err
	}
	return fromPaymentResultItem(it), nil
}

func toPaymentResultItem(r entities.PaymentResult) paymentResultItem {
	return paymentResultItem{
		ID:                 r.ID,
		Live:               r.Live,
		AuthResult:         string(r.AuthResult),
		PSPReference:       r.PSPReference,
		MerchantReference:  r.MerchantReference,
		SkinCode:           r.SkinCode,
		PaymentMethod:      r.PaymentMethod,
		ShopperLocale:      r.ShopperLocale,
		MerchantReturnData: r.MerchantReturnData,
		CreatedAt:          formatTimestamp(r.CreatedAt),
	}
}

func fromPaymentResultItem(it paymentResultItem) entities.PaymentResult {
	return entities.PaymentResult{
		ID:                 it.ID,
		Live:               it.Live,
		AuthResult:         entities.AuthResult(it.AuthResult),
		PSPReference:       it.PSPReference,
		MerchantReference:  it.MerchantReference,
		SkinCode:           it.SkinCode,
		PaymentMethod:      it.PaymentMethod,
		ShopperLocale:      it.ShopperLocale,
		MerchantReturnData: it.MerchantReturnData,
		CreatedAt:          parseTimestamp(it.CreatedAt),
	}
}

func (r *PaymentResultDynamoRepository) TableName() string {
	return r.tableName
}
