package messaging

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"hpp_gateway/internal/domain/entities"
	"hpp_gateway/internal/usecase/interfaces"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/sns"
	"github.com/aws/aws-sdk-go-v2/service/sns/types"
	"go.uber.org/zap"
)

// SNSAPI is the part of *sns.Client the publisher uses.
type SNSAPI interface {
	Publish(ctx context.Context, params *sns.PublishInput, optFns ...func(*sns.Options)) (*sns.PublishOutput, error)
}

// SNSPaymentEventPublisher sends payment events as JSON to one topic. The
// event type and order number travel as message attributes so subscribers
// can filter on them.
type SNSPaymentEventPublisher struct {
	client   SNSAPI
	topicARN string
	log      *zap.Logger
}

var _ interfaces.IPaymentEventPublisher = (*SNSPaymentEventPublisher)(nil)

func NewSNSPaymentEventPublisher(client SNSAPI, topicARN string, log *zap.Logger) *SNSPaymentEventPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return &SNSPaymentEventPublisher{client: client, topicARN: topicARN, log: log}
}

func NewSNSPaymentEventPublisherFromConfig(cfg aws.Config, topicARN string, log *zap.Logger) *SNSPaymentEventPublisher {
	return NewSNSPaymentEventPublisher(sns.NewFromConfig(cfg), topicARN, log)
}

func (p *SNSPaymentEventPublisher) PublishPaymentEvent(ctx context.Context, event entities.PaymentEvent) error {
	if p.topicARN == "" {
		return errors.New("empty topicArn")
	}
	body, err := json.Marshal(event)
	if err != nil {
		return err
	}

	out, err := p.client.Publish(ctx, &sns.PublishInput{
		TopicArn: aws.String(p.topicARN),
		Message:  aws.String(string(body)),
		MessageAttributes: map[string]types.MessageAttributeValue{
			"event_type":   {DataType: aws.String("String"), StringValue: aws.String(event.EventType)},
			"order_number": {DataType: aws.String("String"), StringValue: aws.String(event.OrderNumber)},
		},
	})
	if err != nil {
		return fmt.Errorf("sns publish failed for topic %s: %w", p.topicARN, err)
	}
	p.log.Info("[notification][sns] event published",
		zap.String("event_type", event.EventType),
		zap.String("order_number", event.OrderNumber),
		zap.String("message_id", aws.ToString(out.MessageId)),
	)
	return nil
}

// LogPaymentEventPublisher only logs events. It is used when no topic is
// configured.
type LogPaymentEventPublisher struct {
	log *zap.Logger
}

var _ interfaces.IPaymentEventPublisher = LogPaymentEventPublisher{}

func NewLogPaymentEventPublisher(log *zap.Logger) LogPaymentEventPublisher {
	if log == nil {
		log = zap.NewNop()
	}
	return LogPaymentEventPublisher{log: log}
}

func (p LogPaymentEventPublisher) PublishPaymentEvent(_ context.Context, event entities.PaymentEvent) error {
	p.log.Info("[notification][event] "+event.EventType,
		zap.String("order_number", event.OrderNumber),
		zap.String("payment_id", event.PaymentID),
		zap.String("amount", event.Amount),
		zap.String("currency", event.Currency),
		zap.String("reference", event.Reference),
		zap.Bool("success", event.Success),
	)
	return nil
}
