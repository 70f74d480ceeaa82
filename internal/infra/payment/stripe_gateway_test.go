package payment

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"sarahkyoga/config"
	"sarahkyoga/internal/domain/service"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v76"
)

type stripeStub struct {
	forms map[string]url.Values
}

func newStripeStub(t *testing.T) (*stripeStub, *httptest.Server) {
	t.Helper()
	stub := &stripeStub{forms: map[string]url.Values{}}

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		form, _ := url.ParseQuery(string(body))
		stub.forms[r.Method+" "+r.URL.Path] = form

		w.Header().Set("Content-Type", "application/json")
		switch r.Method + " " + r.URL.Path {
		case "POST /v1/payment_intents":
			_, _ = io.WriteString(w, `{"id":"pi_123","object":"payment_intent","client_secret":"pi_123_secret","status":"requires_payment_method"}`)
		case "GET /v1/payment_intents/pi_123":
			_, _ = io.WriteString(w, `{"id":"pi_123","object":"payment_intent","status":"succeeded","amount":7000,"receipt_email":"guest@example.com","metadata":{"promo_code":"SPRING20"}}`)
		case "POST /v1/coupons":
			_, _ = io.WriteString(w, `{"id":"co_1","object":"coupon"}`)
		case "POST /v1/checkout/sessions":
			_, _ = io.WriteString(w, `{"id":"cs_456","object":"checkout.session","url":"https://checkout.stripe.test/cs_456"}`)
		case "GET /v1/checkout/sessions/cs_456":
			_, _ = io.WriteString(w, `{"id":"cs_456","object":"checkout.session","payment_status":"paid","amount_total":5000,"customer_details":{"email":"buyer@example.com"},"metadata":{"cart_id":"c1"}}`)
		case "GET /v1/checkout/sessions/cs_free":
			_, _ = io.WriteString(w, `{"id":"cs_free","object":"checkout.session","status":"complete","payment_status":"no_payment_required","amount_total":0,"customer_details":{"email":"buyer@example.com"},"metadata":{"promo_code":"TRYUS"}}`)
		case "GET /v1/checkout/sessions/cs_unpaid":
			_, _ = io.WriteString(w, `{"id":"cs_unpaid","object":"checkout.session","payment_status":"unpaid","amount_total":5000}`)
		default:
			w.WriteHeader(http.StatusNotFound)
			_, _ = io.WriteString(w, `{"error":{"type":"invalid_request_error","message":"no such resource"}}`)
		}
	}))
	t.Cleanup(server.Close)

	return stub, server
}

func newTestGateway(t *testing.T, serverURL string) *stripeGateway {
	t.Helper()
	backend := stripe.GetBackendWithConfig(stripe.APIBackend, &stripe.BackendConfig{
		URL:               stripe.String(serverURL),
		MaxNetworkRetries: stripe.Int64(0),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelNull},
	})

	gateway, err := newStripeGateway(&config.Config{Stripe: &config.StripeConfig{
		SecretKey:  "sk_test_123",
		Currency:   "USD",
		SuccessURL: "https://studio.test/success",
		CancelURL:  "https://studio.test/cart",
	}}, &stripe.Backends{API: backend, Connect: backend, Uploads: backend}, slog.New(slog.DiscardHandler))
	require.NoError(t, err)

	return gateway
}

func TestStripeGateway_CreatePaymentIntent(t *testing.T) {
	stub, server := newStripeStub(t)
	gateway := newTestGateway(t, server.URL)

	intent, err := gateway.CreatePaymentIntent(context.Background(), &service.PaymentIntentParams{
		Amount:   decimal.RequireFromString("80.50"),
		Metadata: map[string]string{"cart_id": "c1"},
	})
	require.NoError(t, err)
	assert.Equal(t, "pi_123", intent.ID)
	assert.Equal(t, "pi_123_secret", intent.ClientSecret)

	form := stub.forms["POST /v1/payment_intents"]
	assert.Equal(t, "8050", form.Get("amount"))
	assert.Equal(t, "usd", form.Get("currency"))
	assert.Equal(t, "c1", form.Get("metadata[cart_id]"))
}

func TestStripeGateway_CreateCheckoutSession_WithDiscount(t *testing.T) {
	stub, server := newStripeStub(t)
	gateway := newTestGateway(t, server.URL)

	session, err := gateway.CreateCheckoutSession(context.Background(), &service.CheckoutSessionParams{
		LineItems: []service.CheckoutLineItem{{Name: "Drop-in class", UnitPrice: decimal.NewFromInt(25), Quantity: 2}},
		Discount:  decimal.NewFromInt(10),
	})
	require.NoError(t, err)
	assert.Equal(t, "cs_456", session.ID)
	assert.Equal(t, "https://checkout.stripe.test/cs_456", session.URL)

	assert.Equal(t, "1000", stub.forms["POST /v1/coupons"].Get("amount_off"))
	form := stub.forms["POST /v1/checkout/sessions"]
	assert.Equal(t, "co_1", form.Get("discounts[0][coupon]"))
	assert.Equal(t, "2500", form.Get("line_items[0][price_data][unit_amount]"))
	assert.Equal(t, "2", form.Get("line_items[0][quantity]"))
}

func TestStripeGateway_RetrievePayment(t *testing.T) {
	_, server := newStripeStub(t)
	gateway := newTestGateway(t, server.URL)

	intent, err := gateway.RetrievePayment(context.Background(), "pi_123")
	require.NoError(t, err)
	assert.True(t, intent.Succeeded())
	assert.True(t, decimal.NewFromInt(70).Equal(intent.Amount))
	assert.Equal(t, "SPRING20", intent.Metadata["promo_code"])

	session, err := gateway.RetrievePayment(context.Background(), "cs_456")
	require.NoError(t, err)
	assert.True(t, session.Succeeded())
	assert.Equal(t, "buyer@example.com", session.Email)

	unpaid, err := gateway.RetrievePayment(context.Background(), "cs_unpaid")
	require.NoError(t, err)
	assert.False(t, unpaid.Succeeded())

	_, err = gateway.RetrievePayment(context.Background(), "pi_missing")
	assert.Error(t, err)
}

func TestStripeGateway_RetrievePayment_FullyDiscountedSession(t *testing.T) {
	_, server := newStripeStub(t)
	gateway := newTestGateway(t, server.URL)

	payment, err := gateway.RetrievePayment(context.Background(), "cs_free")

	require.NoError(t, err)
	assert.True(t, payment.Succeeded())
	assert.True(t, payment.Amount.IsZero())
	assert.Equal(t, "TRYUS", payment.Metadata["promo_code"])
}

func TestSessionPaymentStatus(t *testing.T) {
	tests := []struct {
		name    string
		session stripe.CheckoutSession
		want    string
	}{
		{"paid", stripe.CheckoutSession{Status: stripe.CheckoutSessionStatusComplete, PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid}, service.PaymentStatusSucceeded},
		{"free and complete", stripe.CheckoutSession{Status: stripe.CheckoutSessionStatusComplete, PaymentStatus: stripe.CheckoutSessionPaymentStatusNoPaymentRequired}, service.PaymentStatusSucceeded},
		{"free but open", stripe.CheckoutSession{Status: stripe.CheckoutSessionStatusOpen, PaymentStatus: stripe.CheckoutSessionPaymentStatusNoPaymentRequired}, "no_payment_required"},
		{"unpaid", stripe.CheckoutSession{Status: stripe.CheckoutSessionStatusComplete, PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid}, "unpaid"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, sessionPaymentStatus(&tt.session))
		})
	}
}

func TestNewStripeGateway_RequiresKey(t *testing.T) {
	_, err := NewStripeGateway(&config.Config{}, slog.New(slog.DiscardHandler))
	assert.Error(t, err)
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(1999), toMinorUnits(decimal.RequireFromString("19.99")))
	assert.Equal(t, int64(1000), toMinorUnits(decimal.RequireFromString("9.995")))
	assert.True(t, decimal.RequireFromString("12.34").Equal(fromMinorUnits(1234)))
}
