package dto

// MoneyJSON is the wire form of a money value. The currency is re-resolved
// through the registry when read; an empty namespace resolves the code in
// lookup priority order.
type MoneyJSON struct {
	Amount    string `json:"amount" binding:"required,numeric"`
	Currency  string `json:"currency" binding:"required,currencycode"`
	Namespace string `json:"namespace,omitempty"`
}

// MoneyOperationRequest is the body of POST /money/:operation.
// Right is required by add, subtract and compare; Factor by multiply and divide.
type MoneyOperationRequest struct {
	Left     MoneyJSON  `json:"left" binding:"required"`
	Right    *MoneyJSON `json:"right"`
	Factor   string     `json:"factor" binding:"omitempty,numeric"`
	Rounding string     `json:"rounding" binding:"omitempty,oneof=half_even half_away_from_zero down up none"`
}

// MoneyOperationResponse carries either a money result or a comparison.
type MoneyOperationResponse struct {
	Operation  string     `json:"operation"`
	Result     *MoneyJSON `json:"result,omitempty"`
	Comparison *int       `json:"comparison,omitempty"`
}

// SplitMoneyRequest splits Money into Parts equal shares, or proportionally
// to Ratios when given.
type SplitMoneyRequest struct {
	Money  MoneyJSON `json:"money" binding:"required"`
	Parts  int       `json:"parts" binding:"omitempty,min=1,max=1000"`
	Ratios []int     `json:"ratios" binding:"omitempty,max=1000,dive,min=0"`
}

// SplitMoneyResponse lists the shares in request order.
type SplitMoneyResponse struct {
	Shares []MoneyJSON `json:"shares"`
}

// SumMoneyRequest adds values of a single currency.
type SumMoneyRequest struct {
	Values []MoneyJSON `json:"values" binding:"required,min=1,dive"`
}
