package domain

import "github.com/shopspring/decimal"

type Overview struct {
	TotalUsers       int
	TotalClubs       int
	PendingClubs     int
	ApprovedClubs    int
	TotalMemberships int
	TotalEvents      int
	TotalPayments    decimal.Decimal
}
