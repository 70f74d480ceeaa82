// Package constants holds string constants shared across layers.
package constants

const (
	// EnvDevelop is the local development environment name.
	EnvDevelop = "develop"
	// EnvProduction is the production environment name.
	EnvProduction = "production"
)

// Pub/Sub providers
const (
	PubSubProviderLocal  = "local"
	PubSubProviderGoogle = "google"
)

// Email providers
const (
	EmailProviderSendGrid = "sendgrid"
	EmailProviderLog      = "log"
)

const (
	// HeaderCartID carries the guest cart handle on requests and responses.
	HeaderCartID = "X-Cart-Id"

	// NewsletterEventType is the attribute value used on newsletter delivery messages.
	NewsletterEventType = "newsletter.published"

	// AdminOrdersTopic is the push topic admin devices subscribe to for new orders.
	AdminOrdersTopic = "admin-orders"
)

// Payment metadata keys written at checkout and read back on confirmation.
const (
	PaymentMetadataCartID    = "cart_id"
	PaymentMetadataPromoCode = "promo_code"
	PaymentMetadataUserID    = "user_id"
)

// FreeOrderReferencePrefix marks a payment reference issued for a cart a promo
// code fully covers. Such references are never sent to the processor.
const FreeOrderReferencePrefix = "free_"

// EmailTemplateDefault is the confirmation template used when no product-specific one exists.
const EmailTemplateDefault = "default"
