package domain

import "time"

type ReferralStatus string

const (
	ReferralPending   ReferralStatus = "pending"
	ReferralConverted ReferralStatus = "converted"
)

// Referral records one member-brings-member event. Status is set once at
// creation; no transition machinery exists in this system.
type Referral struct {
	ID             int64          `gorm:"primaryKey" json:"id"`
	OrganizationID string         `gorm:"column:organization_id;index" json:"organization_id"`
	ReferrerName   string         `gorm:"column:referrer_name" json:"referrer_name" validate:"required"`
	ReferredName   string         `gorm:"column:referred_name" json:"referred_name" validate:"required"`
	ReferralType   string         `gorm:"column:referral_type" json:"referral_type" validate:"required"`
	Status         ReferralStatus `json:"status"`
	RewardAmount   float64        `gorm:"column:reward_amount" json:"reward_amount" validate:"gte=0"`
	CreatedAt      time.Time      `json:"created_at"`
}

func (Referral) TableName() string { return "referrals" }
