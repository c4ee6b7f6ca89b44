package cmd

type Config struct {
	HTTPPort                 string
	KitchenTickSeconds       int
	PaymentDelayMs           int
	DecrementStockOnCheckout bool
	TaxRate                  float64
}
