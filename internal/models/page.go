package models

// PageData is everything needed to render the purchase page.
type PageData struct {
	Coins        []Coin
	Rates        Rates
	CoinsLoaded  bool
	RatesLoaded  bool
	SelectedCoin *Coin
	Form         PurchaseForm
	Errors       FieldErrors
	Notification *Notification
}

// SelectCoin points SelectedCoin at the coin with the given symbol,
// or clears it when the symbol is not in the fetched list.
func (p *PageData) SelectCoin(symbol string) {
	coin, ok := FindCoin(p.Coins, symbol)
	if !ok {
		p.SelectedCoin = nil
		return
	}
	p.SelectedCoin = &coin
}
