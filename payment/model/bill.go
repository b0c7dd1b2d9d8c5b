package model

type BillType string

const (
	BillTypeElectric BillType = "electric"
	BillTypeWater    BillType = "water"
	BillTypeTelecom  BillType = "telecom"
	BillTypeInternet BillType = "internet"
)

// BillProvider is a company that issues bills of one type. Default marks the
// provider used when a query names none.
type BillProvider struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Default bool   `json:"default"`
}

type BillSource string

const (
	BillSourceLive      BillSource = "live"
	BillSourceSynthetic BillSource = "synthetic"
)

type BillQuery struct {
	CustomerCode string   `json:"customerCode"`
	BillType     BillType `json:"billType"`
	Provider     string   `json:"provider"`
	PhoneNumber  string   `json:"phoneNumber,omitempty"`
}

// BillRecord is an outstanding bill. Build it with NewBillRecord so that
// AmountText always matches Amount.
type BillRecord struct {
	CustomerCode string     `json:"customerCode"`
	CustomerName string     `json:"customerName"`
	Address      string     `json:"address"`
	BillType     BillType   `json:"billType"`
	Provider     string     `json:"provider"`
	Period       string     `json:"period"`
	DueDate      string     `json:"dueDate"`
	Amount       int64      `json:"amount"`
	AmountText   string     `json:"amountText"`
	Source       BillSource `json:"source"`
}

// BillFields are the values of a bill before it is assembled.
type BillFields struct {
	CustomerName string
	Address      string
	Period       string
	DueDate      string
	Amount       int64
}

func NewBillRecord(q BillQuery, f BillFields, source BillSource) *BillRecord {
	amount := f.Amount
	if amount < 0 {
		amount = 0
	}
	return &BillRecord{
		CustomerCode: q.CustomerCode,
		CustomerName: f.CustomerName,
		Address:      f.Address,
		BillType:     q.BillType,
		Provider:     q.Provider,
		Period:       f.Period,
		DueDate:      f.DueDate,
		Amount:       amount,
		AmountText:   FormatVND(amount),
		Source:       source,
	}
}
