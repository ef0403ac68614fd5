package stripegw

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/go-playground/validator/v10"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/webhook"
)

// eventRoute maps a Stripe event type to the object it is about and the lifecycle step.
type eventRoute struct {
	object domain.GatewayObject
	kind   domain.EventKind
}

// transfer.reversed is how Stripe reports a transfer pulled back from the connected
// account. Only a full reversal takes the cancel path.
var eventRoutes = map[stripe.EventType]eventRoute{
	"transfer.created":  {domain.ObjectTransfer, domain.EventCreated},
	"transfer.paid":     {domain.ObjectTransfer, domain.EventPaid},
	"transfer.failed":   {domain.ObjectTransfer, domain.EventFailed},
	"transfer.reversed": {domain.ObjectTransfer, domain.EventCanceled},
	"payout.created":    {domain.ObjectPayout, domain.EventCreated},
	"payout.paid":       {domain.ObjectPayout, domain.EventPaid},
	"payout.failed":     {domain.ObjectPayout, domain.EventFailed},
	"payout.canceled":   {domain.ObjectPayout, domain.EventCanceled},
}

// eventObject is the subset of a transfer or payout the reconciler needs.
type eventObject struct {
	ID             string `json:"id" validate:"required"`
	Object         string `json:"object" validate:"required,oneof=transfer payout"`
	Amount         int64  `json:"amount" validate:"gte=0"`
	Currency       string `json:"currency" validate:"omitempty,len=3"`
	FailureCode    string `json:"failure_code"`
	FailureMessage string `json:"failure_message"`

	// Transfers only.
	Reversed       bool  `json:"reversed"`
	AmountReversed int64 `json:"amount_reversed" validate:"gte=0"`
}

// WebhookParser verifies Stripe-Signature headers and decodes events.
type WebhookParser struct {
	secret    string
	tolerance time.Duration
	validate  *validator.Validate
	routes    map[stripe.EventType]eventRoute
}

// ParserOption configures the webhook parser.
type ParserOption func(*WebhookParser)

// WithTransferCreatedSettles routes transfer.created to the paid step. Transfers to a
// connected account are settled once created and newer API versions never send transfer.paid.
func WithTransferCreatedSettles() ParserOption {
	return func(p *WebhookParser) {
		p.routes["transfer.created"] = eventRoute{domain.ObjectTransfer, domain.EventPaid}
	}
}

var _ portssvc.EventParser = (*WebhookParser)(nil)

// NewWebhookParser creates a parser for the endpoint signing secret.
func NewWebhookParser(secret string, tolerance time.Duration, opts ...ParserOption) *WebhookParser {
	if tolerance <= 0 {
		tolerance = webhook.DefaultTolerance
	}
	p := &WebhookParser{
		secret:    secret,
		tolerance: tolerance,
		validate:  validator.New(),
		routes:    make(map[stripe.EventType]eventRoute, len(eventRoutes)),
	}
	for t, r := range eventRoutes {
		p.routes[t] = r
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

func (p *WebhookParser) ParseEvent(payload []byte, signatureHeader string) (*domain.GatewayEvent, error) {
	if p.secret == "" {
		return nil, fmt.Errorf("%w: webhook secret not configured", apperrors.ErrInvalidEvent)
	}

	evt, err := webhook.ConstructEventWithOptions(payload, signatureHeader, p.secret, webhook.ConstructEventOptions{
		Tolerance:                p.tolerance,
		IgnoreAPIVersionMismatch: true,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidEvent, err)
	}

	route, ok := p.routes[evt.Type]
	if !ok {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrUnsupportedEvent, evt.Type)
	}
	if evt.ID == "" || evt.Data == nil || len(evt.Data.Raw) == 0 {
		return nil, fmt.Errorf("%w: event without id or data", apperrors.ErrInvalidEvent)
	}

	var obj eventObject
	if err := json.Unmarshal(evt.Data.Raw, &obj); err != nil {
		return nil, fmt.Errorf("%w: decode %s object: %v", apperrors.ErrInvalidEvent, evt.Type, err)
	}
	if err := p.validate.Struct(obj); err != nil {
		return nil, fmt.Errorf("%w: %v", apperrors.ErrInvalidEvent, err)
	}
	if domain.GatewayObject(obj.Object) != route.object {
		return nil, fmt.Errorf("%w: %s event carries a %s", apperrors.ErrInvalidEvent, evt.Type, obj.Object)
	}
	if evt.Type == "transfer.reversed" && !obj.Reversed {
		return nil, fmt.Errorf("%w: %s reversed %d of %d", apperrors.ErrPartialReversal, obj.ID, obj.AmountReversed, obj.Amount)
	}

	return &domain.GatewayEvent{
		EventID:          evt.ID,
		Type:             string(evt.Type),
		Object:           route.object,
		Kind:             route.kind,
		ExternalID:       obj.ID,
		ConnectAccountID: evt.Account,
		Amount:           obj.Amount,
		Currency:         obj.Currency,
		Failure: domain.FailureInfo{
			Code:    obj.FailureCode,
			Message: obj.FailureMessage,
		},
	}, nil
}
