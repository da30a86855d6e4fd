package order

type Tender string

const (
	TenderCash Tender = "cash"
	TenderCard Tender = "card"
)

func (t Tender) Valid() bool {
	return t == TenderCash || t == TenderCard
}
