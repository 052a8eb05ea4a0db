package models

import (
	"strings"

	"github.com/fintrack/backend/internal/finance"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Client is a stored monthly client.
type Client struct {
	DefaultModel
	Name           string
	InitialAmount  decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	InterestAmount decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	TotalAmount    decimal.Decimal `gorm:"type:DECIMAL(20,8)"`
	StartDate      string
	EndDate        string `gorm:"index"`
	Phone          string
}

func (c Client) Record() finance.MonthlyClient {
	return finance.MonthlyClient{
		Name:           c.Name,
		InitialAmount:  c.InitialAmount,
		InterestAmount: c.InterestAmount,
		TotalAmount:    c.TotalAmount,
		StartDate:      c.StartDate,
		EndDate:        c.EndDate,
		Phone:          c.Phone,
	}
}

// Apply overwrites all fields with the recomputed record.
func (c *Client) Apply(r finance.MonthlyClient) {
	r = r.Recompute()

	c.Name = r.Name
	c.InitialAmount = r.InitialAmount
	c.InterestAmount = r.InterestAmount
	c.TotalAmount = r.TotalAmount
	c.StartDate = r.StartDate
	c.EndDate = r.EndDate
	c.Phone = r.Phone
}

func (c *Client) BeforeSave(_ *gorm.DB) error {
	c.Name = strings.TrimSpace(c.Name)
	c.Phone = strings.TrimSpace(c.Phone)
	c.StartDate = strings.TrimSpace(c.StartDate)

	if c.Name == "" {
		return ErrNameRequired
	}

	if !finance.ValidDate(c.StartDate) {
		return ErrInvalidDate
	}

	c.Apply(c.Record())
	return nil
}
