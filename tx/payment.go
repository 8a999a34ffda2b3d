package tx

func NewPayment(options ...Option) (TxJSON, error) {
	return New(Payment, options...)
}

// NewSignIn is a pseudo-transaction.  Signing it proves control of an
// account, and nothing is submitted to the ledger.
func NewSignIn() TxJSON {
	return TxJSON{"TransactionType": SignIn}
}
