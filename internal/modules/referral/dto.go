package referral

type CreateReferralRequest struct {
	ReferrerName string  `json:"referrer_name" binding:"required"`
	ReferredName string  `json:"referred_name" binding:"required"`
	ReferralType string  `json:"referral_type" binding:"required"`
	RewardAmount float64 `json:"reward_amount" binding:"gte=0"`
}

// Stats summarizes the rewards program for the dashboard widgets.
type Stats struct {
	TotalReferrals int     `json:"total_referrals"`
	Converted      int     `json:"converted"`
	Pending        int     `json:"pending"`
	TotalRewards   float64 `json:"total_rewards"`
	ConversionRate float64 `json:"conversion_rate"`
}
